package migrate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pressly/goose/v3"
)

const sqlMigrationTemplate = `-- +goose Up

-- +goose Down
`

// CreateSQLMigration writes an empty timestamped migration file into dir.
func CreateSQLMigration(dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("ensure migrations dir: %w", err)
	}

	slug := strings.ReplaceAll(strings.TrimSpace(strings.ToLower(name)), " ", "_")
	if slug == "" {
		return "", fmt.Errorf("migration name is required")
	}

	filename := fmt.Sprintf("%s_%s.sql", time.Now().UTC().Format("20060102150405"), slug)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(sqlMigrationTemplate), 0o644); err != nil {
		return "", fmt.Errorf("write migration file: %w", err)
	}
	return path, nil
}

// ValidateDir checks that every migration in dir parses.
func ValidateDir(dir string) error {
	if _, err := goose.CollectMigrations(dir, 0, goose.MaxVersion); err != nil {
		return fmt.Errorf("collect migrations: %w", err)
	}
	return nil
}
