package domainlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"domain-expiry-checker/internal/domain"
)

// Load reads the domain list at path. Any error is logged and yields an
// empty list so a broken file never aborts the run.
func Load(path string, logger *zap.Logger) []domain.Name {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Error("domain file not found", zap.String("path", path))
		} else {
			logger.Error("could not read domain file", zap.String("path", path), zap.Error(err))
		}
		return nil
	}
	defer f.Close()

	names, err := Parse(f)
	if err != nil {
		logger.Error("could not read domain file", zap.String("path", path), zap.Error(err))
		return nil
	}

	logger.Info("loaded domains",
		zap.String("path", path),
		zap.Int("count", len(names)))

	return names
}

// Parse returns one name per non-empty line, skipping '#' comments.
func Parse(r io.Reader) ([]domain.Name, error) {
	var names []domain.Name

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, domain.Name(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning domain list: %w", err)
	}

	return names, nil
}
