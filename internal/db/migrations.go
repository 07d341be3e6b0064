package db

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"

	embeddedmigrations "github.com/terraincognita07/fertilitrack/migrations"
	"gorm.io/gorm"
)

var migrationFilePattern = regexp.MustCompile(`^(\d+)_.*\.sql$`)

type migration struct {
	Version int
	Name    string
	SQL     string
}

// migrationRunner applies forward-only SQL files in version order, once each.
type migrationRunner struct {
	database *gorm.DB
	files    fs.FS
}

func newMigrationRunner(database *gorm.DB) *migrationRunner {
	return &migrationRunner{database: database, files: embeddedmigrations.Files}
}

func (runner *migrationRunner) Apply() error {
	const createTableSQL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`
	if err := runner.database.Exec(createTableSQL).Error; err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	pending, err := runner.load()
	if err != nil {
		return err
	}

	applied, err := runner.appliedVersions()
	if err != nil {
		return err
	}

	for _, item := range pending {
		if applied[item.Version] {
			continue
		}
		if err := runner.applyOne(item); err != nil {
			return err
		}
		slog.Info("migration applied", "version", item.Version, "name", item.Name)
	}
	return nil
}

func (runner *migrationRunner) load() ([]migration, error) {
	entries, err := fs.ReadDir(runner.files, ".")
	if err != nil {
		return nil, fmt.Errorf("read embedded migrations: %w", err)
	}

	migrations := make([]migration, 0, len(entries))
	seen := make(map[int]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matches := migrationFilePattern.FindStringSubmatch(entry.Name())
		if len(matches) != 2 {
			continue
		}

		version, err := strconv.Atoi(matches[1])
		if err != nil {
			return nil, fmt.Errorf("parse migration version from %s: %w", entry.Name(), err)
		}
		if existing, ok := seen[version]; ok {
			return nil, fmt.Errorf("duplicate migration version %d in %s and %s", version, existing, entry.Name())
		}
		seen[version] = entry.Name()

		raw, err := fs.ReadFile(runner.files, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}
		migrations = append(migrations, migration{Version: version, Name: entry.Name(), SQL: string(raw)})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	return migrations, nil
}

func (runner *migrationRunner) appliedVersions() (map[int]bool, error) {
	var versions []int
	if err := runner.database.Raw(`SELECT version FROM schema_migrations`).Scan(&versions).Error; err != nil {
		return nil, fmt.Errorf("load applied migration versions: %w", err)
	}

	applied := make(map[int]bool, len(versions))
	for _, version := range versions {
		applied[version] = true
	}
	return applied, nil
}

func (runner *migrationRunner) applyOne(item migration) error {
	return runner.database.Transaction(func(tx *gorm.DB) error {
		statements := splitSQLStatements(item.SQL)
		if len(statements) == 0 {
			return errors.New("migration has no SQL statements")
		}

		for _, statement := range statements {
			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("execute migration %s statement %q: %w", item.Name, statement, err)
			}
		}

		if err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES (?, ?)`, item.Version, item.Name).Error; err != nil {
			return fmt.Errorf("record migration %s: %w", item.Name, err)
		}
		return nil
	})
}

func splitSQLStatements(sqlText string) []string {
	parts := strings.Split(sqlText, ";")
	statements := make([]string, 0, len(parts))
	for _, part := range parts {
		statement := strings.TrimSpace(stripSQLComments(part))
		if statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}

func stripSQLComments(sqlText string) string {
	lines := strings.Split(sqlText, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
