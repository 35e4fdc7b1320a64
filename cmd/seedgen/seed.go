package main

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/harmony-one/seedgen/internal/seeder"
	"github.com/harmony-one/seedgen/internal/utils"
)

func buildSeed(config seedConfig) (seeder.RandSeed, error) {
	switch config.Source {
	case seedSrcRandom:
		seed := seeder.NewRandSeed()
		utils.Logger().Info().
			Str("seed", seed.String()).
			Msg("using random seed, rerun with --seed.hex to reproduce")
		return seed, nil

	case seedSrcString:
		return seeder.FromString(config.Value), nil

	case seedSrcHex:
		return seeder.FromHex(config.Value)

	case seedSrcInt:
		x, err := utils.ParseUint256(config.Value)
		if err != nil {
			return seeder.RandSeed{}, errors.Wrap(err, "invalid int seed")
		}
		return seeder.FromUint256(x), nil
	}
	return seeder.RandSeed{}, fmt.Errorf("unknown seed source: %v", config.Source)
}

// parseBounds returns nil for an empty bound.
func parseBounds(config deriveConfig) (min, max *uint256.Int, err error) {
	if config.Min != "" {
		if min, err = utils.ParseUint256(config.Min); err != nil {
			return nil, nil, errors.Wrap(err, "invalid derive min")
		}
	}
	if config.Max != "" {
		if max, err = utils.ParseUint256(config.Max); err != nil {
			return nil, nil, errors.Wrap(err, "invalid derive max")
		}
	}
	return min, max, nil
}

func deriveValues(seed seeder.Seeder, config deriveConfig) (seeder.ValueIterator, error) {
	min, max, err := parseBounds(config)
	if err != nil {
		return nil, err
	}
	it, err := seed.SeedValues(config.Amount, min, max)
	if err != nil {
		return nil, err
	}
	utils.Logger().Debug().
		Int("amount", config.Amount).
		Str("min", config.Min).
		Str("max", config.Max).
		Msg("deriving seed values")
	return it, nil
}
