// Package adapter contains the filesystem adapters used by the crosswire workflow.
package adapter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	m "crosswire.dev/pkg/crosswire/internal/model"
)

// WireCount is the number of wire lines an input must provide.
const WireCount = 2

// ErrMissingWire is returned when an input provides fewer than two wires.
var ErrMissingWire = errors.New("input must contain two wires")

// InputAdapter reads the two wire lines the solver works on.
type InputAdapter interface {
	// ReadWires returns the first two non-blank, trimmed lines of the file at path.
	ReadWires(ctx context.Context, path m.Path) ([]string, error)
}

// LocalInputAdapter reads wires from the local filesystem.
type LocalInputAdapter struct{}

// NewLocalInputAdapter constructs a LocalInputAdapter.
func NewLocalInputAdapter() *LocalInputAdapter {
	return &LocalInputAdapter{}
}

// ReadWires implements InputAdapter.
func (a *LocalInputAdapter) ReadWires(ctx context.Context, path m.Path) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(string(path))
	if err != nil {
		slog.Error("Failed to open input", "path", path, "error", err)
		return nil, fmt.Errorf("failed to open input %s: %w", path, err)
	}

	defer func() {
		_ = f.Close()
	}()

	lines := make([]string, 0, WireCount)
	extra := 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if len(lines) == WireCount {
			extra++
			continue
		}

		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		slog.Error("Failed to read input", "path", path, "error", err)
		return nil, fmt.Errorf("failed to read input %s: %w", path, err)
	}

	if extra > 0 {
		slog.Warn("Ignoring extra input lines", "path", path, "count", extra)
	}

	if len(lines) < WireCount {
		return nil, fmt.Errorf("%w: %s has %d", ErrMissingWire, path, len(lines))
	}

	return lines, nil
}
