package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	versionFormat = "Harmony (C) 2023. %v, version %v-%v (%v %v)"
)

// Version string variables
var (
	version string
	builtBy string
	builtAt string
	commit  string
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print version of the seedgen binary",
	Long:  "print version of the seedgen binary",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), getSeedgenVersion())
	},
}

func getSeedgenVersion() string {
	return fmt.Sprintf(versionFormat, "seedgen", version, commit, builtBy, builtAt)
}
