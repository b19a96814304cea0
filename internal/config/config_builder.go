package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects config layers in priority order. build merges
// them with mergo, which keeps a field's first non-zero value, so an
// earlier layer wins over later ones.
type configBuilder struct {
	layers []*StructuredConfig
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{layers: make([]*StructuredConfig, 0, 3)}
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.add(envCfg)
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.add(ParseFlags())
}

// withJSON loads the optional JSON file when an earlier layer (env or
// flags) named one. A missing path is not an error.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, layer := range b.layers {
		if layer.JSONFilePath != "" {
			jsonPath = layer.JSONFilePath
		}
	}
	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.add(jsonCfg)
}

func (b *configBuilder) add(cfg *StructuredConfig) *configBuilder {
	b.layers = append(b.layers, cfg)
	return b
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, layer := range b.layers {
		if err := mergo.Merge(config, layer); err != nil {
			return nil, fmt.Errorf("merging config layers: %w", err)
		}
	}

	config.applyDefaults()

	return config, config.validate()
}
