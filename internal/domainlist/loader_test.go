package domainlist

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"domain-expiry-checker/internal/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []domain.Name
	}{
		{
			name:     "Plain list",
			input:    "example.com\nexample.org\n",
			expected: []domain.Name{"example.com", "example.org"},
		},
		{
			name:     "Comments and blank lines",
			input:    "# production\nexample.com\n\n   \n# staging\nstaging.example.com",
			expected: []domain.Name{"example.com", "staging.example.com"},
		},
		{
			name:     "Surrounding whitespace",
			input:    "  example.com  \r\n\texample.net\t\n",
			expected: []domain.Name{"example.com", "example.net"},
		},
		{
			name:     "Order preserved with duplicates",
			input:    "b.example\na.example\nb.example",
			expected: []domain.Name{"b.example", "a.example", "b.example"},
		},
		{
			name:     "Only comments",
			input:    "# nothing here\n",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names, err := Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, names)
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk gone")
}

func TestParseReadError(t *testing.T) {
	_, err := Parse(failingReader{})
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Run("Existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "domains.txt")
		require.NoError(t, os.WriteFile(path, []byte("example.com\n# skip\nexample.org\n"), 0644))

		names := Load(path, zap.NewNop())
		assert.Equal(t, []domain.Name{"example.com", "example.org"}, names)
	})

	t.Run("Missing file fails open", func(t *testing.T) {
		names := Load(filepath.Join(t.TempDir(), "missing.txt"), zap.NewNop())
		assert.Empty(t, names)
	})

	t.Run("Directory instead of file fails open", func(t *testing.T) {
		names := Load(t.TempDir(), zap.NewNop())
		assert.Empty(t, names)
	})
}
