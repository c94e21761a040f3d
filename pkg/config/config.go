package config

import (
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/arthur-debert/clipfix/pkg/clipboard"
	"github.com/arthur-debert/clipfix/pkg/errors"
	"github.com/arthur-debert/clipfix/pkg/ui"
)

// EnvPrefix marks environment variables read as configuration
const EnvPrefix = "CLIPFIX_"

// MinPollInterval keeps the poller from spinning on the clipboard
const MinPollInterval = 10 * time.Millisecond

// Config is the runtime configuration of the clipboard monitor
type Config struct {
	Backend       string        `koanf:"backend"`
	File          string        `koanf:"file"`
	PollInterval  time.Duration `koanf:"poll_interval"`
	StatsInterval time.Duration `koanf:"stats_interval"`
	DryRun        bool          `koanf:"dry_run"`
	Output        string        `koanf:"output"`
	LogFile       bool          `koanf:"log_file"`
}

// Load merges defaults, environment and flags. flags may be nil; only flags
// the user explicitly set are applied.
func Load(flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// CLIPFIX_POLL_INTERVAL -> poll_interval
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, flagKey(flags)), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load flags")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// flagKey maps kebab-case flag names to config keys and drops flags the user
// did not set.
func flagKey(flags *pflag.FlagSet) func(f *pflag.Flag) (string, interface{}) {
	return func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		key := strings.ReplaceAll(f.Name, "-", "_")

		if key == "no_log_file" {
			off, _ := flags.GetBool(f.Name)
			return "log_file", !off
		}
		return key, posflag.FlagVal(flags, f)
	}
}

// Validate checks the merged values
func (c *Config) Validate() error {
	switch c.Backend {
	case clipboard.BackendSystem:
	case clipboard.BackendFile:
		if c.File == "" {
			return errors.New(errors.ErrConfigValid, "the file backend needs a file path").
				WithDetail("key", "file")
		}
	default:
		return errors.Newf(errors.ErrConfigValid, "unknown backend %q (want %s or %s)",
			c.Backend, clipboard.BackendSystem, clipboard.BackendFile).
			WithDetail("key", "backend")
	}

	if c.PollInterval < MinPollInterval {
		return errors.Newf(errors.ErrConfigValid, "poll interval %s is below the %s minimum",
			c.PollInterval, MinPollInterval).
			WithDetail("key", "poll_interval")
	}
	if c.StatsInterval < 0 {
		return errors.New(errors.ErrConfigValid, "stats interval cannot be negative").
			WithDetail("key", "stats_interval")
	}
	if _, err := ui.ParseFormat(c.Output); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid output format")
	}
	return nil
}
