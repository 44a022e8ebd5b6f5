package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Output formats of the dataset command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DatasetConfig holds configuration for the dataset command.
type DatasetConfig struct {
	Format   string
	Pools    []string
	Out      string
	LogLevel string
}

// LoadDataset merges config file, environment variables, and flags into DatasetConfig.
func LoadDataset(cfgFile string, flags *pflag.FlagSet) (DatasetConfig, error) {
	v, err := newViper(cfgFile, flags, map[string]interface{}{
		"format":    FormatText,
		"log-level": "info",
	})
	if err != nil {
		return DatasetConfig{}, err
	}

	cfg := DatasetConfig{
		Format:   v.GetString("format"),
		Pools:    getStringSlice(v, "pool"),
		Out:      v.GetString("out"),
		LogLevel: v.GetString("log-level"),
	}
	switch cfg.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return DatasetConfig{}, fmt.Errorf("unsupported format %q", cfg.Format)
	}
	return cfg, nil
}
