package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/terraincognita07/fertilitrack/internal/models"
	"gopkg.in/yaml.v3"
)

type CatalogImporter interface {
	ImportCatalog(ctx context.Context, items []models.ContentItem) ([]models.ContentItem, error)
}

type catalogFile struct {
	Items []catalogEntry `yaml:"items"`
}

type catalogEntry struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Summary     string   `yaml:"summary"`
	Category    string   `yaml:"category"`
	Tags        []string `yaml:"tags"`
	PublishedAt string   `yaml:"published_at"`
}

// ParseCatalog decodes a YAML catalog. published_at uses the YYYY-MM-DD form.
func ParseCatalog(reader io.Reader) ([]models.ContentItem, error) {
	var file catalogFile
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	items := make([]models.ContentItem, 0, len(file.Items))
	for index, entry := range file.Items {
		publishedAt, err := time.Parse(time.DateOnly, entry.PublishedAt)
		if err != nil {
			return nil, fmt.Errorf("item %d (%q): invalid published_at %q", index, entry.Title, entry.PublishedAt)
		}
		items = append(items, models.ContentItem{
			ID:          entry.ID,
			Title:       entry.Title,
			Summary:     entry.Summary,
			Category:    models.ContentCategory(entry.Category),
			Tags:        entry.Tags,
			PublishedAt: publishedAt,
		})
	}
	return items, nil
}

func RunImportContent(ctx context.Context, importer CatalogImporter, path string, out io.Writer) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer file.Close()

	items, err := ParseCatalog(file)
	if err != nil {
		return err
	}
	imported, err := importer.ImportCatalog(ctx, items)
	if err != nil {
		return fmt.Errorf("import catalog: %w", err)
	}

	fmt.Fprintf(out, "Imported %d content items from %s\n", len(imported), path)
	return nil
}
