package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"inventory-optimizer/internal/allocator"
	"inventory-optimizer/internal/data"
	"inventory-optimizer/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk scenario shape (YAML).
type Config struct {
	MaxSpace any    `yaml:"max_space"`
	Policy   string `yaml:"policy"`

	// Optional: load items from a separate file (.json, .yaml, .csv, .xlsx).
	// Inline Items overlay file items with the same Region_Name; others are appended.
	ItemsFile string `yaml:"items_file"`
	Items     []any  `yaml:"items"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.ItemsFile != "" {
		itemsPath := c.ItemsFile
		if !filepath.IsAbs(itemsPath) {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), itemsPath)
			if _, err := os.Stat(cand); err == nil {
				itemsPath = cand
			}
		}
		loaded, err := data.LoadItems(itemsPath)
		if err != nil {
			return nil, err
		}
		c.Items = MergeItems(loaded, c.Items)
	}
	return &c, nil
}

// Allocator builds an allocator with the configured validation policy.
func (c *Config) Allocator() (*allocator.Allocator, error) {
	p, err := allocator.ParsePolicy(c.Policy)
	if err != nil {
		return nil, err
	}
	return allocator.New(allocator.WithPolicy(p)), nil
}

// Candidates validates the config and returns the typed candidates.
func (c *Config) Candidates() (float64, []model.ItemCandidate, error) {
	a, err := c.Allocator()
	if err != nil {
		return 0, nil, err
	}
	return a.ParseRecords(c.MaxSpace, c.Items)
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if _, _, err := c.Candidates(); err != nil {
		return fmt.Errorf("config invalid: %w", err)
	}
	return nil
}

// MergeItems overlays override records onto base by Region_Name.
// Keys present in an override replace the base record's keys; override
// records with a new (or no) name are appended in order. Entries that are not
// records are kept as-is so validation can report them.
func MergeItems(base, override []any) []any {
	out := make([]any, 0, len(base)+len(override))
	index := map[string]map[string]any{}
	for _, b := range base {
		rec, ok := b.(map[string]any)
		if !ok {
			out = append(out, b)
			continue
		}
		cp := copyRecord(rec)
		if name, ok := cp[model.KeyRegionName].(string); ok {
			if _, seen := index[name]; !seen {
				index[name] = cp
			}
		}
		out = append(out, cp)
	}
	for _, o := range override {
		rec, ok := o.(map[string]any)
		if !ok {
			out = append(out, o)
			continue
		}
		if name, ok := rec[model.KeyRegionName].(string); ok {
			if target, seen := index[name]; seen {
				for k, v := range rec {
					target[k] = v
				}
				continue
			}
		}
		out = append(out, copyRecord(rec))
	}
	return out
}

func copyRecord(rec map[string]any) map[string]any {
	cp := make(map[string]any, len(rec))
	for k, v := range rec {
		cp[k] = v
	}
	return cp
}
