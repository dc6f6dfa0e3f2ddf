package config

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/commentary/pkg/analysis"
	"github.com/pseudomuto/commentary/pkg/ast"
	"github.com/pseudomuto/commentary/pkg/consts"
	"github.com/pseudomuto/commentary/pkg/format"
	"gopkg.in/yaml.v3"
)

type (
	// Format holds output settings.
	Format struct {
		// Indent is the number of spaces per tree level
		Indent int `yaml:"indent,omitempty"`

		// HidePositions omits node spans from tree output
		HidePositions bool `yaml:"hide_positions,omitempty"`
	}

	// Config represents the commentary configuration.
	Config struct {
		// SuppressMarker is the line comment prefix marking a suppression.
		// When absent it defaults to NOPMD; an explicit empty string disables
		// suppression scanning.
		SuppressMarker *string `yaml:"suppress_marker"`

		// VisitOrder is the traversal order: preorder, postorder or reverse
		VisitOrder string `yaml:"visit_order"`

		// Extensions lists the file extensions analysed when walking directories
		Extensions []string `yaml:"extensions"`

		// Format contains output settings
		Format Format `yaml:"format"`
	}
)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig parses a configuration from the provided io.Reader.
//
// Missing fields are set to their defaults and the result is validated.
//
// Example:
//
//	yamlData := `
//	suppress_marker: NOSONAR
//	visit_order: postorder
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("Marker: %s\n", cfg.Marker())
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// Validate reports configuration values that cannot be used.
func (c *Config) Validate() error {
	if _, err := ast.ParseOrder(c.VisitOrder); err != nil {
		return errors.Wrap(err, "invalid visit_order")
	}

	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return errors.Errorf("invalid extension %q: must start with '.'", ext)
		}
	}

	return nil
}

// Marker returns the configured suppression marker. Empty means disabled.
func (c *Config) Marker() string {
	if c.SuppressMarker == nil {
		return consts.DefaultSuppressMarker
	}

	return *c.SuppressMarker
}

// Matches reports whether path has one of the configured extensions.
func (c *Config) Matches(path string) bool {
	return slices.Contains(c.Extensions, strings.ToLower(filepath.Ext(path)))
}

// AnalysisOptions returns the options for analysing a single file.
func (c *Config) AnalysisOptions() (analysis.Options, error) {
	order, err := ast.ParseOrder(c.VisitOrder)
	if err != nil {
		return analysis.Options{}, err
	}

	return analysis.Options{SuppressMarker: c.Marker(), Order: order}, nil
}

// GetFormatter returns a formatter honoring the format settings.
func (c *Config) GetFormatter() *format.Formatter {
	return format.New(&format.Options{
		IndentSize:    c.Format.Indent,
		HidePositions: c.Format.HidePositions,
	})
}

func (c *Config) applyDefaults() {
	if c.SuppressMarker == nil {
		marker := consts.DefaultSuppressMarker
		c.SuppressMarker = &marker
	}

	if c.VisitOrder == "" {
		c.VisitOrder = consts.DefaultVisitOrder
	}

	if len(c.Extensions) == 0 {
		c.Extensions = []string{consts.DefaultExtension}
	}

	for i, ext := range c.Extensions {
		c.Extensions[i] = strings.ToLower(strings.TrimSpace(ext))
	}

	if c.Format.Indent <= 0 {
		c.Format.Indent = format.Defaults.IndentSize
	}
}
