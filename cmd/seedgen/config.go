package main

import (
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	"github.com/harmony-one/seedgen/internal/utils"
)

const tomlConfigVersion = "1.0.0"

type seedgenConfig struct {
	Version string
	Seed    seedConfig
	Derive  deriveConfig
	Output  outputConfig
	Log     logConfig
}

type seedConfig struct {
	// Source is one of random, string, hex or int
	Source string
	Value  string
}

type deriveConfig struct {
	Amount int
	// Min and Max are decimal or 0x-hex integers. Empty means unbounded.
	Min string
	Max string
}

type outputConfig struct {
	Format string
}

type logConfig struct {
	ToFile       bool
	Folder       string
	FileName     string
	RotateSize   int
	RotateCount  int
	RotateMaxAge int
	Verbosity    int
}

const (
	seedSrcRandom = "random"
	seedSrcString = "string"
	seedSrcHex    = "hex"
	seedSrcInt    = "int"
)

const (
	formatHex   = "hex"
	formatDec   = "dec"
	formatJSON  = "json"
	formatTable = "table"
)

var defaultConfig = seedgenConfig{
	Version: tomlConfigVersion,
	Seed: seedConfig{
		Source: seedSrcRandom,
		Value:  "",
	},
	Derive: deriveConfig{
		Amount: 10,
		Min:    "",
		Max:    "",
	},
	Output: outputConfig{
		Format: formatHex,
	},
	Log: logConfig{
		ToFile:       false,
		Folder:       "./latest",
		FileName:     "seedgen.log",
		RotateSize:   100,
		RotateCount:  0,
		RotateMaxAge: 0,
		Verbosity:    3,
	},
}

func getDefaultSeedgenConfigCopy() seedgenConfig {
	config := defaultConfig
	return config
}

func validateSeedgenConfig(config seedgenConfig) error {
	if config.Version != tomlConfigVersion {
		return fmt.Errorf("unsupported config version %q, expect %q", config.Version, tomlConfigVersion)
	}

	accepts := []string{seedSrcRandom, seedSrcString, seedSrcHex, seedSrcInt}
	if err := checkStringAccepted("--seed.src", config.Seed.Source, accepts); err != nil {
		return err
	}
	switch config.Seed.Source {
	case seedSrcHex:
		if !utils.IsHex(config.Seed.Value) {
			return fmt.Errorf("invalid hex seed: %q", config.Seed.Value)
		}
	case seedSrcInt:
		if _, err := utils.ParseUint256(config.Seed.Value); err != nil {
			return errors.Wrap(err, "invalid int seed")
		}
	}

	if config.Derive.Amount < 0 {
		return fmt.Errorf("negative derive amount: %d", config.Derive.Amount)
	}
	min, max, err := parseBounds(config.Derive)
	if err != nil {
		return err
	}
	if min != nil && max != nil && !min.Lt(max) {
		return fmt.Errorf("derive min %v is not below max %v", config.Derive.Min, config.Derive.Max)
	}

	accepts = []string{formatHex, formatDec, formatJSON, formatTable}
	if err := checkStringAccepted("--output.format", config.Output.Format, accepts); err != nil {
		return err
	}
	return nil
}

func checkStringAccepted(flag string, val string, accepts []string) error {
	for _, accept := range accepts {
		if val == accept {
			return nil
		}
	}
	acceptsStr := strings.Join(accepts, ", ")
	return fmt.Errorf("unknown arg for %s: %s (%v)", flag, val, acceptsStr)
}

func loadSeedgenConfig(file string) (seedgenConfig, error) {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return seedgenConfig{}, err
	}

	var config seedgenConfig
	if err := toml.Unmarshal(b, &config); err != nil {
		return seedgenConfig{}, err
	}
	return config, nil
}

func writeSeedgenConfigToFile(config seedgenConfig, file string) error {
	b, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(file, b, 0644)
}
