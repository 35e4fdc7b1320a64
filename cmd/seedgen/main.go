package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harmony-one/seedgen/internal/cli"
	"github.com/harmony-one/seedgen/internal/utils"
)

var rootCmd = &cobra.Command{
	Use:   "seedgen",
	Short: "derive reproducible 256-bit values from a seed",
	Long: `seedgen expands a 32-byte seed into a reproducible stream of 256-bit values,
optionally bounded to [min, max). The same seed and arguments always produce
the same values.`,
	Args: cobra.NoArgs,
	Run:  runSeedgen,
}

func init() {
	cli.SetParseErrorHandle(func(err error) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(128) // 128 - invalid command line arguments
	})

	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(dumpConfigCmd)
	rootCmd.AddCommand(versionCmd)

	if err := registerRootCmdFlags(); err != nil {
		os.Exit(2)
	}
}

func registerRootCmdFlags() error {
	var flags []cli.Flag
	flags = append(flags, configFlag)
	flags = append(flags, seedFlags...)
	flags = append(flags, deriveFlags...)
	flags = append(flags, outputFlags...)
	flags = append(flags, logFlags...)

	return cli.RegisterPFlags(rootCmd, flags)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSeedgen(cmd *cobra.Command, args []string) {
	cfg := prepareSeedgen(cmd)

	seed, err := buildSeed(cfg.Seed)
	if err != nil {
		utils.Logger().Error().Err(err).Msg("failed to build seed")
		os.Exit(1)
	}
	it, err := deriveValues(seed, cfg.Derive)
	if err != nil {
		utils.Logger().Error().Err(err).Msg("failed to derive seed values")
		os.Exit(1)
	}
	if err := writeValues(cmd.OutOrStdout(), cfg.Output.Format, it); err != nil {
		utils.Logger().Error().Err(err).Msg("failed to write seed values")
		os.Exit(1)
	}
}

// prepareSeedgen loads the config and sets up logging. Invalid config prints
// the usage and exits.
func prepareSeedgen(cmd *cobra.Command) seedgenConfig {
	cfg, err := getSeedgenConfig(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Help()
		os.Exit(128)
	}
	setupLog(cfg)
	return cfg
}

func getSeedgenConfig(cmd *cobra.Command) (seedgenConfig, error) {
	var (
		config seedgenConfig
		err    error
	)
	if cli.IsFlagChanged(cmd, configFlag) {
		configFile := cli.GetStringFlagValue(cmd, configFlag)
		config, err = loadSeedgenConfig(configFile)
	} else {
		config = getDefaultSeedgenConfigCopy()
	}
	if err != nil {
		return seedgenConfig{}, err
	}

	applySeedFlags(cmd, &config)
	applyDeriveFlags(cmd, &config)
	applyOutputFlags(cmd, &config)
	applyLogFlags(cmd, &config)

	if err := validateSeedgenConfig(config); err != nil {
		return seedgenConfig{}, err
	}
	return config, nil
}

func setupLog(config seedgenConfig) {
	utils.SetLogVerbosity(config.Log.Verbosity)
	if config.Log.ToFile {
		logPath := filepath.Join(config.Log.Folder, config.Log.FileName)
		utils.AddLogFile(logPath, config.Log.RotateSize, config.Log.RotateCount, config.Log.RotateMaxAge)
	}
	utils.Logger().Debug().
		Str("source", config.Seed.Source).
		Str("format", config.Output.Format).
		Msg("seedgen config loaded")
}
