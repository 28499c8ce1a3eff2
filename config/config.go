// Package config loads codec definitions from a YAML file and builds the
// codec registry injected into the surrounding system at startup
package config

import (
	"fmt"
	"os"

	"github.com/mvane/go-kpcodec"
	"github.com/mvane/go-kpcodec/codec"
	"gopkg.in/yaml.v3"
)

// CodecTypeHeatmapOffset is the type name for the heatmap plus offset codec
const CodecTypeHeatmapOffset = "heatmap-offset"

// CodecConfig defines the configuration of a single codec instance
type CodecConfig struct {
	// Name the codec is registered under
	Name string `yaml:"name"`
	// Type of codec to construct
	Type string `yaml:"type"`
	// InputSize is the input image size as [w, h]
	InputSize [2]int `yaml:"inputSize"`
	// HeatmapSize is the heatmap grid size as [W, H]
	HeatmapSize [2]int `yaml:"heatmapSize"`
	// Sigma of the Gaussian response in heatmap cells
	Sigma float32 `yaml:"sigma"`
}

// Config is the top level configuration file structure
type Config struct {
	Codecs []CodecConfig `yaml:"codecs"`
}

// Load reads and parses the YAML configuration file at the given path
func Load(path string) (*Config, error) {

	data, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	if len(cfg.Codecs) == 0 {
		return nil, fmt.Errorf("config file %s defines no codecs", path)
	}

	return &cfg, nil
}

// BuildRegistry constructs a codec registry containing every codec the
// configuration defines
func (c *Config) BuildRegistry() (*codec.Registry, error) {

	reg := codec.NewRegistry()

	for _, cc := range c.Codecs {

		inst, err := build(cc)

		if err != nil {
			return nil, fmt.Errorf("codec %q: %v", cc.Name, err)
		}

		if err := reg.Register(cc.Name, inst); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

// build constructs a single codec instance from its configuration
func build(cc CodecConfig) (codec.Codec, error) {

	switch cc.Type {
	case CodecTypeHeatmapOffset:
		return codec.NewHeatmapOffset(codec.HeatmapOffsetParams{
			InputSize:   kpcodec.Size{W: cc.InputSize[0], H: cc.InputSize[1]},
			HeatmapSize: kpcodec.Size{W: cc.HeatmapSize[0], H: cc.HeatmapSize[1]},
			Sigma:       cc.Sigma,
		})

	default:
		return nil, fmt.Errorf("unknown codec type %q", cc.Type)
	}
}
