package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/harmony-one/seedgen/internal/utils"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "print the integer views of the seed",
	Long:  "print the seed as raw bytes and as little-endian 64, 128 and 256-bit integers",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := prepareSeedgen(cmd)

		seed, err := buildSeed(cfg.Seed)
		if err != nil {
			utils.Logger().Error().Err(err).Msg("failed to build seed")
			os.Exit(1)
		}
		if err := writeView(cmd.OutOrStdout(), cfg.Output.Format, seed); err != nil {
			utils.Logger().Error().Err(err).Msg("failed to write seed view")
			os.Exit(1)
		}
	},
}
