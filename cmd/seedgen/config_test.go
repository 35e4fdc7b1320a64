package main

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

type testCfgOpt func(config *seedgenConfig)

func makeTestConfig(opt testCfgOpt) seedgenConfig {
	cfg := getDefaultSeedgenConfigCopy()
	if opt != nil {
		opt(&cfg)
	}
	return cfg
}

func TestPersistConfig(t *testing.T) {
	testDir := t.TempDir()

	tests := []struct {
		config seedgenConfig
	}{
		{
			config: makeTestConfig(nil),
		},
		{
			config: makeTestConfig(func(cfg *seedgenConfig) {
				cfg.Seed = seedConfig{Source: seedSrcString, Value: "test"}
				cfg.Derive = deriveConfig{Amount: 3, Min: "10", Max: "0x20"}
				cfg.Output.Format = formatJSON
			}),
		},
		{
			config: makeTestConfig(func(cfg *seedgenConfig) {
				cfg.Log.ToFile = true
				cfg.Log.Verbosity = 5
				cfg.Log.RotateCount = 3
			}),
		},
	}
	for i, test := range tests {
		file := filepath.Join(testDir, fmt.Sprintf("%d.conf", i))

		if err := writeSeedgenConfigToFile(test.config, file); err != nil {
			t.Fatal(err)
		}
		config, err := loadSeedgenConfig(file)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(config, test.config) {
			t.Errorf("Test %v: unexpected config \n\t%+v \n\t%+v", i, config, test.config)
		}
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := loadSeedgenConfig(filepath.Join(t.TempDir(), "missing.conf"))
	if !os.IsNotExist(err) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		config seedgenConfig
		expErr string
	}{
		{
			config: makeTestConfig(nil),
		},
		{
			config: makeTestConfig(func(cfg *seedgenConfig) {
				cfg.Seed = seedConfig{Source: seedSrcHex, Value: "0x7465"}
				cfg.Derive = deriveConfig{Amount: 0, Min: "1", Max: "2"}
			}),
		},
		{
			config: makeTestConfig(func(cfg *seedgenConfig) {
				cfg.Version = "0.9.0"
			}),
			expErr: "unsupported config version",
		},
		{
			config: makeTestConfig(func(cfg *seedgenConfig) {
				cfg.Seed.Source = "file"
			}),
			expErr: "unknown arg for --seed.src",
		},
		{
			config: makeTestConfig(func(cfg *seedgenConfig) {
				cfg.Seed = seedConfig{Source: seedSrcHex, Value: "0x123"}
			}),
			expErr: "invalid hex seed",
		},
		{
			config: makeTestConfig(func(cfg *seedgenConfig) {
				cfg.Seed = seedConfig{Source: seedSrcInt, Value: "-5"}
			}),
			expErr: "invalid int seed",
		},
		{
			config: makeTestConfig(func(cfg *seedgenConfig) {
				cfg.Derive.Amount = -1
			}),
			expErr: "negative derive amount",
		},
		{
			config: makeTestConfig(func(cfg *seedgenConfig) {
				cfg.Derive.Min = "abc"
			}),
			expErr: "invalid derive min",
		},
		{
			config: makeTestConfig(func(cfg *seedgenConfig) {
				cfg.Derive.Min, cfg.Derive.Max = "20", "20"
			}),
			expErr: "is not below max",
		},
		{
			config: makeTestConfig(func(cfg *seedgenConfig) {
				cfg.Output.Format = "yaml"
			}),
			expErr: "unknown arg for --output.format",
		},
	}
	for i, test := range tests {
		err := validateSeedgenConfig(test.config)
		if test.expErr == "" {
			if err != nil {
				t.Errorf("Test %v: unexpected error: %v", i, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), test.expErr) {
			t.Errorf("Test %v: unexpected error [%v] / [%v]", i, err, test.expErr)
		}
	}
}
