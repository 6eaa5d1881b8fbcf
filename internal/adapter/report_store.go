package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "crosswire.dev/pkg/crosswire/internal/model"
)

// ReportFileName is the file a report is stored under inside the reports directory.
const ReportFileName = "report.yaml"

// ErrReportNotFound is returned when no report has been saved yet.
var ErrReportNotFound = errors.New("report not found")

// ReportStore persists solve reports.
type ReportStore interface {
	SaveReport(ctx context.Context, dir m.Path, report m.Report) error
	LoadReport(ctx context.Context, dir m.Path) (m.Report, error)
}

// YAMLReportStore keeps a single report as YAML inside a directory.
type YAMLReportStore struct{}

// NewReportStore constructs a YAMLReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReport implements ReportStore.
func (s *YAMLReportStore) SaveReport(ctx context.Context, dir m.Path, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(string(dir), 0o755); err != nil {
		slog.Error("Failed to create reports dir", "dir", dir, "error", err)
		return fmt.Errorf("failed to create reports dir: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	path := filepath.Join(string(dir), ReportFileName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		slog.Error("Failed to write report", "path", path, "error", err)
		return fmt.Errorf("failed to write report: %w", err)
	}

	slog.Debug("saved report", "path", path)

	return nil
}

// LoadReport implements ReportStore.
func (s *YAMLReportStore) LoadReport(ctx context.Context, dir m.Path) (m.Report, error) {
	if err := ctx.Err(); err != nil {
		return m.Report{}, err
	}

	path := filepath.Join(string(dir), ReportFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m.Report{}, fmt.Errorf("%w in %s", ErrReportNotFound, dir)
		}

		return m.Report{}, fmt.Errorf("failed to read report: %w", err)
	}

	var report m.Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.Report{}, fmt.Errorf("failed to decode report %s: %w", path, err)
	}

	return report, nil
}
