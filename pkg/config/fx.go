package config

import (
	"os"

	"github.com/pseudomuto/commentary/pkg/consts"
	"github.com/pseudomuto/commentary/pkg/format"
	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(
	// Loads commentary.yaml from the working directory when present, otherwise
	// every setting takes its default.
	func() (*Config, error) {
		if _, err := os.Stat(consts.DefaultConfigFile); os.IsNotExist(err) {
			return Default(), nil
		}

		return LoadConfigFile(consts.DefaultConfigFile)
	},
	func(c *Config) *format.Formatter {
		return c.GetFormatter()
	},
))
