package main

import (
	"github.com/spf13/cobra"

	"github.com/harmony-one/seedgen/internal/cli"
)

var (
	seedFlags = []cli.Flag{
		seedSrcFlag,
		seedValueFlag,
		seedStringFlag,
		seedHexFlag,
		seedIntFlag,
	}

	deriveFlags = []cli.Flag{
		deriveAmountFlag,
		deriveMinFlag,
		deriveMaxFlag,
	}

	outputFlags = []cli.Flag{
		outputFormatFlag,
	}

	logFlags = []cli.Flag{
		logToFileFlag,
		logFolderFlag,
		logFileNameFlag,
		logRotateSizeFlag,
		logRotateCountFlag,
		logRotateMaxAgeFlag,
		logVerbosityFlag,
	}
)

var (
	configFlag = cli.StringFlag{
		Name:      "config",
		Usage:     "load seedgen config from the config toml file.",
		Shorthand: "c",
		DefValue:  "",
	}
)

// seed flags
var (
	seedSrcFlag = cli.StringFlag{
		Name:     "seed.src",
		Usage:    "seed source (random, string, hex, int)",
		DefValue: defaultConfig.Seed.Source,
	}
	seedValueFlag = cli.StringFlag{
		Name:      "seed",
		Shorthand: "s",
		Usage:     "seed value, interpreted according to --seed.src",
		DefValue:  defaultConfig.Seed.Value,
	}
	seedStringFlag = cli.StringFlag{
		Name:     "seed.string",
		Usage:    "use the bytes of the given string as seed",
		DefValue: "",
	}
	seedHexFlag = cli.StringFlag{
		Name:     "seed.hex",
		Usage:    "use the given hex bytes as seed",
		DefValue: "",
	}
	seedIntFlag = cli.StringFlag{
		Name:     "seed.int",
		Usage:    "use the given 256-bit integer (decimal or 0x-hex) as seed",
		DefValue: "",
	}
)

func applySeedFlags(cmd *cobra.Command, config *seedgenConfig) {
	if cli.IsFlagChanged(cmd, seedSrcFlag) {
		config.Seed.Source = cli.GetStringFlagValue(cmd, seedSrcFlag)
	}
	if cli.IsFlagChanged(cmd, seedValueFlag) {
		config.Seed.Value = cli.GetStringFlagValue(cmd, seedValueFlag)
	}

	// The shorthand seed flags set source and value at once, and take
	// precedence over --seed.src.
	if cli.IsFlagChanged(cmd, seedStringFlag) {
		config.Seed.Source = seedSrcString
		config.Seed.Value = cli.GetStringFlagValue(cmd, seedStringFlag)
	} else if cli.IsFlagChanged(cmd, seedHexFlag) {
		config.Seed.Source = seedSrcHex
		config.Seed.Value = cli.GetStringFlagValue(cmd, seedHexFlag)
	} else if cli.IsFlagChanged(cmd, seedIntFlag) {
		config.Seed.Source = seedSrcInt
		config.Seed.Value = cli.GetStringFlagValue(cmd, seedIntFlag)
	}
}

// derive flags
var (
	deriveAmountFlag = cli.IntFlag{
		Name:      "derive.amount",
		Shorthand: "n",
		Usage:     "number of values to derive from the seed",
		DefValue:  defaultConfig.Derive.Amount,
	}
	deriveMinFlag = cli.StringFlag{
		Name:     "derive.min",
		Usage:    "inclusive lower bound of derived values (empty for 0)",
		DefValue: defaultConfig.Derive.Min,
	}
	deriveMaxFlag = cli.StringFlag{
		Name:     "derive.max",
		Usage:    "exclusive upper bound of derived values (empty for 2^256)",
		DefValue: defaultConfig.Derive.Max,
	}
)

func applyDeriveFlags(cmd *cobra.Command, config *seedgenConfig) {
	if cli.IsFlagChanged(cmd, deriveAmountFlag) {
		config.Derive.Amount = cli.GetIntFlagValue(cmd, deriveAmountFlag)
	}
	if cli.IsFlagChanged(cmd, deriveMinFlag) {
		config.Derive.Min = cli.GetStringFlagValue(cmd, deriveMinFlag)
	}
	if cli.IsFlagChanged(cmd, deriveMaxFlag) {
		config.Derive.Max = cli.GetStringFlagValue(cmd, deriveMaxFlag)
	}
}

// output flags
var (
	outputFormatFlag = cli.StringFlag{
		Name:      "output.format",
		Shorthand: "o",
		Usage:     "output format (hex, dec, json, table)",
		DefValue:  defaultConfig.Output.Format,
	}
)

func applyOutputFlags(cmd *cobra.Command, config *seedgenConfig) {
	if cli.IsFlagChanged(cmd, outputFormatFlag) {
		config.Output.Format = cli.GetStringFlagValue(cmd, outputFormatFlag)
	}
}

// log flags
var (
	logToFileFlag = cli.BoolFlag{
		Name:     "log.file",
		Usage:    "also write the log into a rotating file",
		DefValue: defaultConfig.Log.ToFile,
	}
	logFolderFlag = cli.StringFlag{
		Name:     "log.dir",
		Usage:    "directory path to put rotation logs",
		DefValue: defaultConfig.Log.Folder,
	}
	logFileNameFlag = cli.StringFlag{
		Name:     "log.name",
		Usage:    "log file name (e.g. seedgen.log)",
		DefValue: defaultConfig.Log.FileName,
	}
	logRotateSizeFlag = cli.IntFlag{
		Name:     "log.max-size",
		Usage:    "rotation log size in megabytes",
		DefValue: defaultConfig.Log.RotateSize,
	}
	logRotateCountFlag = cli.IntFlag{
		Name:     "log.rotate-count",
		Usage:    "maximum number of old log files to retain (0 keeps all)",
		DefValue: defaultConfig.Log.RotateCount,
	}
	logRotateMaxAgeFlag = cli.IntFlag{
		Name:     "log.rotate-max-age",
		Usage:    "maximum number of days to retain old log files (0 keeps all)",
		DefValue: defaultConfig.Log.RotateMaxAge,
	}
	logVerbosityFlag = cli.IntFlag{
		Name:      "log.verb",
		Shorthand: "v",
		Usage:     "logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=trace",
		DefValue:  defaultConfig.Log.Verbosity,
	}
)

func applyLogFlags(cmd *cobra.Command, config *seedgenConfig) {
	if cli.IsFlagChanged(cmd, logToFileFlag) {
		config.Log.ToFile = cli.GetBoolFlagValue(cmd, logToFileFlag)
	}
	if cli.IsFlagChanged(cmd, logFolderFlag) {
		config.Log.Folder = cli.GetStringFlagValue(cmd, logFolderFlag)
	}
	if cli.IsFlagChanged(cmd, logFileNameFlag) {
		config.Log.FileName = cli.GetStringFlagValue(cmd, logFileNameFlag)
	}
	if cli.IsFlagChanged(cmd, logRotateSizeFlag) {
		config.Log.RotateSize = cli.GetIntFlagValue(cmd, logRotateSizeFlag)
	}
	if cli.IsFlagChanged(cmd, logRotateCountFlag) {
		config.Log.RotateCount = cli.GetIntFlagValue(cmd, logRotateCountFlag)
	}
	if cli.IsFlagChanged(cmd, logRotateMaxAgeFlag) {
		config.Log.RotateMaxAge = cli.GetIntFlagValue(cmd, logRotateMaxAgeFlag)
	}
	if cli.IsFlagChanged(cmd, logVerbosityFlag) {
		config.Log.Verbosity = cli.GetIntFlagValue(cmd, logVerbosityFlag)
	}
}
