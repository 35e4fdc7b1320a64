package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testStringFlag = StringFlag{
		Name:      "seed.string",
		Shorthand: "s",
		Usage:     "test string flag",
		DefValue:  "default",
	}
	testBoolFlag = BoolFlag{
		Name:     "quiet",
		Usage:    "test bool flag",
		DefValue: false,
	}
	testIntFlag = IntFlag{
		Name:     "amount",
		Usage:    "test int flag",
		DefValue: 10,
	}
	testHiddenFlag = IntFlag{
		Name:     "hidden",
		Usage:    "test hidden flag",
		Hidden:   true,
		DefValue: 1,
	}
	testFlags = []Flag{testStringFlag, testBoolFlag, testIntFlag, testHiddenFlag}
)

func runTestCommand(t *testing.T, args []string, run func(cmd *cobra.Command)) {
	cmd := &cobra.Command{
		Use: "test",
		Run: func(cmd *cobra.Command, _ []string) { run(cmd) },
	}
	require.NoError(t, RegisterFlags(cmd, testFlags))
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
}

func TestFlagValues(t *testing.T) {
	runTestCommand(t, []string{"-s", "abc", "--quiet", "--amount=3"}, func(cmd *cobra.Command) {
		assert.Equal(t, "abc", GetStringFlagValue(cmd, testStringFlag))
		assert.True(t, GetBoolFlagValue(cmd, testBoolFlag))
		assert.Equal(t, 3, GetIntFlagValue(cmd, testIntFlag))
		assert.True(t, IsFlagChanged(cmd, testIntFlag))
		assert.False(t, IsFlagChanged(cmd, testHiddenFlag))
	})
}

func TestFlagDefaults(t *testing.T) {
	runTestCommand(t, []string{}, func(cmd *cobra.Command) {
		assert.Equal(t, "default", GetStringFlagValue(cmd, testStringFlag))
		assert.False(t, GetBoolFlagValue(cmd, testBoolFlag))
		assert.Equal(t, 10, GetIntFlagValue(cmd, testIntFlag))
		assert.False(t, HasFlagsChanged(cmd, testFlags))
	})
}

func TestHiddenFlag(t *testing.T) {
	runTestCommand(t, []string{"--hidden", "5"}, func(cmd *cobra.Command) {
		assert.True(t, cmd.Flags().Lookup("hidden").Hidden)
		assert.Equal(t, 5, GetIntFlagValue(cmd, testHiddenFlag))
		assert.True(t, HasFlagsChanged(cmd, []Flag{testBoolFlag, testHiddenFlag}))
	})
}

func TestParseErrorHandle(t *testing.T) {
	var got error
	SetParseErrorHandle(func(err error) { got = err })
	defer SetParseErrorHandle(nil)

	runTestCommand(t, []string{}, func(cmd *cobra.Command) {
		// reading an int flag as string is a type mismatch
		GetStringFlagValue(cmd, StringFlag{Name: testIntFlag.Name})
	})
	require.Error(t, got)
}

func TestRegisterPFlags(t *testing.T) {
	root := &cobra.Command{Use: "root"}
	child := &cobra.Command{Use: "child", Run: func(cmd *cobra.Command, _ []string) {
		assert.Equal(t, "xyz", GetStringPersistentFlagValue(cmd.Root(), testStringFlag))
	}}
	root.AddCommand(child)
	require.NoError(t, RegisterPFlags(root, []Flag{testStringFlag}))

	root.SetArgs([]string{"child", "--seed.string", "xyz"})
	require.NoError(t, root.Execute())
}
