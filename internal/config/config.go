package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "REGISTRY"

// SyncConfig holds configuration for the deposit-pools and swap-pools commands.
type SyncConfig struct {
	RPCURL         string
	Registry       string
	PrivateKey     string
	Pools          []string
	VerifyOnly     bool
	SkipUnchanged  bool
	FailOnMismatch bool
	MaxRetries     int
	RetryBackoff   time.Duration
	Report         string
	PGDSN          string
	MetricsFile    string
	LogLevel       string
}

// Load merges config file, environment variables, and flags into SyncConfig.
func Load(cfgFile string, flags *pflag.FlagSet) (SyncConfig, error) {
	v, err := newViper(cfgFile, flags, map[string]interface{}{
		"fail-on-mismatch": true,
		"max-retries":      0,
		"retry-backoff":    500 * time.Millisecond,
		"log-level":        "info",
	})
	if err != nil {
		return SyncConfig{}, err
	}

	cfg := SyncConfig{
		RPCURL:         v.GetString("rpc"),
		Registry:       v.GetString("registry"),
		PrivateKey:     v.GetString("private-key"),
		Pools:          getStringSlice(v, "pool"),
		VerifyOnly:     v.GetBool("verify-only"),
		SkipUnchanged:  v.GetBool("skip-unchanged"),
		FailOnMismatch: v.GetBool("fail-on-mismatch"),
		MaxRetries:     v.GetInt("max-retries"),
		RetryBackoff:   v.GetDuration("retry-backoff"),
		Report:         v.GetString("report"),
		PGDSN:          v.GetString("pg-dsn"),
		MetricsFile:    v.GetString("metrics-file"),
		LogLevel:       v.GetString("log-level"),
	}

	return cfg, nil
}

// Validate reports every missing or contradictory setting at once.
func (c SyncConfig) Validate() error {
	var problems []string
	if c.RPCURL == "" {
		problems = append(problems, "rpc is required")
	}
	if c.Registry == "" {
		problems = append(problems, "registry is required")
	}
	if c.PrivateKey == "" && !c.VerifyOnly {
		problems = append(problems, "private-key is required unless verify-only is set")
	}
	if c.VerifyOnly && c.SkipUnchanged {
		problems = append(problems, "verify-only and skip-unchanged are mutually exclusive")
	}
	if c.MaxRetries < 0 {
		problems = append(problems, "max-retries must not be negative")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func newViper(cfgFile string, flags *pflag.FlagSet, defaults map[string]interface{}) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}
	return v, nil
}

func getStringSlice(v *viper.Viper, key string) []string {
	if !v.IsSet(key) {
		return nil
	}

	val := v.Get(key)
	switch typed := val.(type) {
	case []string:
		return cleanStrings(typed)
	case string:
		return splitAndClean(typed)
	case []interface{}:
		items := make([]string, 0, len(typed))
		for _, item := range typed {
			items = append(items, fmt.Sprintf("%v", item))
		}
		return cleanStrings(items)
	default:
		return nil
	}
}

func splitAndClean(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	return cleanStrings(parts)
}

func cleanStrings(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
