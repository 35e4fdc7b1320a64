package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dumpConfigCmd = &cobra.Command{
	Use:   "dumpconfig [config_file]",
	Short: "dump the config file for seedgen binary configurations",
	Long:  "dump the config file for seedgen binary configurations, with command line flags applied",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := getSeedgenConfig(cmd)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(128)
		}
		if err := writeSeedgenConfigToFile(cfg, args[0]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(128)
		}
	},
}
