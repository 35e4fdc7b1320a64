package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// RegisterFlags register the flags to command's local flag
func RegisterFlags(cmd *cobra.Command, flags []Flag) error {
	return registerFlagsTo(cmd.Flags(), flags)
}

// RegisterPFlags register the flags to command's persistent flag
func RegisterPFlags(cmd *cobra.Command, flags []Flag) error {
	return registerFlagsTo(cmd.PersistentFlags(), flags)
}

func registerFlagsTo(fs *pflag.FlagSet, flags []Flag) error {
	for _, flag := range flags {
		if err := flag.RegisterTo(fs); err != nil {
			return errors.Wrapf(err, "register flag %q", getFlagName(flag))
		}
	}
	return nil
}
