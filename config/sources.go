package config

import (
	"fmt"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of environment variables read by NewEnvSource.
const EnvPrefix = "HEALTHOPS_"

// Source is one configuration layer.
type Source struct {
	Provider func(k *koanf.Koanf) koanf.Provider
	Parser   koanf.Parser
	Options  []koanf.Option
}

// NewFileSource reads a YAML file (.yaml or .yml) or a JSON file (anything
// else).
func NewFileSource(path string) *Source {
	var parser koanf.Parser = kjson.Parser()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = YAMLParser()
	}

	return &Source{
		Provider: func(_ *koanf.Koanf) koanf.Provider {
			return file.Provider(path)
		},
		Parser: parser,
	}
}

// NewEnvSource reads HEALTHOPS_ variables. HEALTHOPS_HEALTH__CHECK_TIMEOUT
// maps to health.check_timeout; values containing commas become lists.
func NewEnvSource() *Source {
	return &Source{
		Provider: func(_ *koanf.Koanf) koanf.Provider {
			return env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, any) {
				key = strings.TrimPrefix(key, EnvPrefix)
				key = strings.ToLower(key)
				key = strings.ReplaceAll(key, "__", ".")

				if strings.Contains(value, ",") {
					return key, splitList(value)
				}
				return key, value
			})
		},
	}
}

// NewFlagSource reads flags registered by BindFlags. Flags left at their
// default only apply when no earlier layer set the key.
func NewFlagSource(fs *pflag.FlagSet) *Source {
	return &Source{
		Provider: func(k *koanf.Koanf) koanf.Provider {
			return posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, any) {
				key := strings.ReplaceAll(f.Name, "-", "_")
				return key, posflag.FlagVal(fs, f)
			})
		},
	}
}

func newDefaultSource() *Source {
	return &Source{
		Provider: func(_ *koanf.Koanf) koanf.Provider {
			return structs.Provider(Default(), "koanf")
		},
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Load merges the defaults with sources in order, then unmarshals and
// validates the result.
func Load(sources ...*Source) (Config, error) {
	k := koanf.New(".")
	for _, source := range append([]*Source{newDefaultSource()}, sources...) {
		if err := k.Load(source.Provider(k), source.Parser, source.Options...); err != nil {
			return Config{}, fmt.Errorf("failed to load config: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
