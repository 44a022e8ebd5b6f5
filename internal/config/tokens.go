package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// TokensConfig holds configuration for the tokens preflight command.
type TokensConfig struct {
	RPCURL   string
	Format   string
	LogLevel string
}

// LoadTokens merges config file, environment variables, and flags into TokensConfig.
func LoadTokens(cfgFile string, flags *pflag.FlagSet) (TokensConfig, error) {
	v, err := newViper(cfgFile, flags, map[string]interface{}{
		"format":    FormatText,
		"log-level": "info",
	})
	if err != nil {
		return TokensConfig{}, err
	}

	cfg := TokensConfig{
		RPCURL:   v.GetString("rpc"),
		Format:   v.GetString("format"),
		LogLevel: v.GetString("log-level"),
	}
	if cfg.RPCURL == "" {
		return TokensConfig{}, fmt.Errorf("rpc is required")
	}
	if cfg.Format != FormatText && cfg.Format != FormatJSON {
		return TokensConfig{}, fmt.Errorf("unsupported format %q", cfg.Format)
	}
	return cfg, nil
}
