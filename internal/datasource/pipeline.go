package datasource

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// PipelineConfig describes a layer stack declaratively, outermost first.
//
//	store: notes
//	layers:
//	  - kind: reverse
//	  - kind: base64
//	  - kind: cipher
//	    passphrase: hunter2
type PipelineConfig struct {
	Store  string        `yaml:"store"`
	Layers []LayerConfig `yaml:"layers"`
}

// LayerConfig selects one layer kind plus its options.
type LayerConfig struct {
	Kind       string `yaml:"kind"`
	Passphrase string `yaml:"passphrase,omitempty"`
}

// ParsePipeline decodes a YAML pipeline description.
func ParsePipeline(data []byte) (PipelineConfig, error) {
	var cfg PipelineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PipelineConfig{}, fmt.Errorf("parse pipeline: %w", err)
	}
	if cfg.Store == "" {
		cfg.Store = "store"
	}
	return cfg, nil
}

// BuildPipeline wraps inner with the configured layers, outermost first.
func BuildPipeline(cfg PipelineConfig, inner DataSource) (DataSource, error) {
	layers := make([]Layer, 0, len(cfg.Layers))
	for _, lc := range cfg.Layers {
		switch lc.Kind {
		case "reverse":
			layers = append(layers, NewReverseLayer)
		case "base64":
			layers = append(layers, NewBase64Layer)
		case "cipher":
			if lc.Passphrase == "" {
				return nil, fmt.Errorf("cipher layer requires a passphrase")
			}
			layers = append(layers, NewCipherLayer(lc.Passphrase))
		default:
			return nil, fmt.Errorf("unknown layer kind %q", lc.Kind)
		}
	}
	return Chain(inner, layers...), nil
}
