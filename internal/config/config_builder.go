package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

// configBuilder collects partial configs, one layer per source, and merges
// them in the order they were added. Source errors are accumulated and
// reported together by build.
type configBuilder struct {
	layers   []*StructuredConfig
	fallback *StructuredConfig
	errs     []error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{layers: make([]*StructuredConfig, 0, 3)}
}

func (b *configBuilder) fail(source string, err error) *configBuilder {
	b.errs = append(b.errs, fmt.Errorf("%s: %w", source, err))
	return b
}

// build merges the layers so that non-zero fields of later layers win, fills
// the remaining zero fields from the fallback and validates the result.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if err := errors.Join(b.errs...); err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	merged := &StructuredConfig{}
	for _, layer := range b.layers {
		if err := mergo.Merge(merged, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if b.fallback != nil {
		if err := mergo.Merge(merged, b.fallback); err != nil {
			return nil, fmt.Errorf("error applying default configs: %w", err)
		}
	}

	if err := merged.validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// withDotEnv loads the file named by DOTENV (or ./.env) into the process
// environment without overriding variables that are already set. Only an
// explicitly named file has to exist.
func (b *configBuilder) withDotEnv() *configBuilder {
	path, explicit := os.LookupEnv("DOTENV")
	if path == "" {
		path, explicit = DefaultDotEnvPath, false
	}

	if _, err := os.Stat(path); err != nil {
		if explicit {
			return b.fail("dotenv", err)
		}
		return b
	}

	if err := godotenv.Load(path); err != nil {
		return b.fail("dotenv", err)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg := &StructuredConfig{}
	if err := parseEnv(cfg); err != nil {
		return b.fail("env", err)
	}
	b.layers = append(b.layers, cfg)
	return b
}

func (b *configBuilder) withFlags(fs *flag.FlagSet, args []string) *configBuilder {
	cfg, err := parseFlagSet(fs, args)
	if err != nil {
		return b.fail("flags", err)
	}
	b.layers = append(b.layers, cfg)
	return b
}

// withJSON reads the JSON file named by the last layer that sets
// JSONFilePath and stacks it on top of the existing layers.
func (b *configBuilder) withJSON() *configBuilder {
	path := ""
	for _, layer := range b.layers {
		if layer.JSONFilePath != "" {
			path = layer.JSONFilePath
		}
	}
	if path == "" {
		return b
	}

	cfg, err := parseJSON(path)
	if err != nil {
		return b.fail("json", err)
	}
	b.layers = append(b.layers, cfg)
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.fallback = defaultConfig()
	return b
}
