package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "crosswire.dev/pkg/crosswire/internal/model"
)

func writeInput(t *testing.T, content string) m.Path {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return m.Path(path)
}

func TestLocalInputAdapter_ReadWires(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"two lines", "R8,U5,L5,D3\nU7,R6,D4,L4\n", []string{"R8,U5,L5,D3", "U7,R6,D4,L4"}},
		{"no trailing newline", "R8\nU7", []string{"R8", "U7"}},
		{"blank lines skipped", "\n\n  R8,U5 \n\n\tU7\n", []string{"R8,U5", "U7"}},
		{"crlf line endings", "R8\r\nU7\r\n", []string{"R8", "U7"}},
		{"extra lines ignored", "R8\nU7\nL3\nD4\n", []string{"R8", "U7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := NewLocalInputAdapter().ReadWires(context.Background(), writeInput(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, lines)
		})
	}
}

func TestLocalInputAdapter_ReadWires_MissingWire(t *testing.T) {
	tests := []string{"", "\n\n", "R8,U5\n"}

	for _, content := range tests {
		_, err := NewLocalInputAdapter().ReadWires(context.Background(), writeInput(t, content))
		require.ErrorIs(t, err, ErrMissingWire, "content %q", content)
	}
}

func TestLocalInputAdapter_ReadWires_MissingFile(t *testing.T) {
	path := m.Path(filepath.Join(t.TempDir(), "nope.txt"))

	_, err := NewLocalInputAdapter().ReadWires(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "nope.txt")
}

func TestLocalInputAdapter_ReadWires_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLocalInputAdapter().ReadWires(ctx, writeInput(t, "R8\nU7\n"))
	require.ErrorIs(t, err, context.Canceled)
}
