// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"os"

	"gopkg.in/yaml.v3"

	cntun "github.com/ShiotaTakumi/CountingNonoverlappingUnfoldings"
)

// CLIConfig is the optional --config YAML file's shape: default tuning
// knobs for the ZDD engine's node arena, and a default split depth. It is
// read once at startup and converted to cntun.Option values at the call
// sites that build a ZDD; the core engine never parses YAML itself.
type CLIConfig struct {
	Nodesize        int `yaml:"nodesize"`
	MaxNodeIncrease int `yaml:"max_node_increase"`
	MinFreeNodes    int `yaml:"min_free_nodes"`
	SplitDepth      int `yaml:"split_depth"`
}

// LoadCLIConfig reads path if non-empty; a missing --config flag yields
// the zero CLIConfig (engine defaults, split depth 0).
func LoadCLIConfig(path string) (CLIConfig, error) {
	var cfg CLIConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Options converts the non-zero fields of cfg to cntun.Option values.
func (cfg CLIConfig) Options() []cntun.Option {
	var opts []cntun.Option
	if cfg.Nodesize > 0 {
		opts = append(opts, cntun.Nodesize(cfg.Nodesize))
	}
	if cfg.MaxNodeIncrease > 0 {
		opts = append(opts, cntun.MaxNodeIncrease(cfg.MaxNodeIncrease))
	}
	if cfg.MinFreeNodes > 0 {
		opts = append(opts, cntun.MinFreeNodes(cfg.MinFreeNodes))
	}
	return opts
}
