package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bunchhieng/lv/internal/model"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Export writes all links to w as JSON (the storage layout) or YAML.
func (c *Commands) Export(w io.Writer, format string) error {
	links := c.links.Links()

	switch strings.ToLower(format) {
	case "", FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(links); err != nil {
			return fmt.Errorf("encode JSON: %w", err)
		}
	case FormatYAML, "yml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(links); err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
	return nil
}

// Import merges links from a JSON or YAML file (chosen by extension).
func (c *Commands) Import(ctx context.Context, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	var links []model.Link
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(file).Decode(&links); err != nil && err != io.EOF {
			return fmt.Errorf("decode YAML: %w", err)
		}
	default:
		if err := json.NewDecoder(file).Decode(&links); err != nil {
			return fmt.Errorf("decode JSON: %w", err)
		}
	}

	res := c.links.Import(ctx, links)
	fmt.Fprintf(c.out, "%s %d link(s), updated %d, skipped %d invalid.\n",
		c.styles.added.Render("Imported"), res.Added, res.Updated, res.Skipped)
	return nil
}
