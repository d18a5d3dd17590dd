package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cosmos/cosmos-sdk/version"

	"github.com/initia-labs/ibc-storage/x/ibc/storage/client/cli"
)

const (
	// AppName is the name of the binary.
	AppName = "ibckeys"
	// EnvPrefix is the prefix of environment variables overriding flags,
	// e.g. IBCKEYS_OUTPUT=json.
	EnvPrefix = "IBCKEYS"
)

// NewRootCmd creates a new root command for ibckeys.
func NewRootCmd() *cobra.Command {
	version.AppName = AppName

	rootCmd := &cobra.Command{
		Use:           AppName,
		Short:         "Encode and decode IBC storage keys",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindEnv(cmd, EnvPrefix)
		},
	}

	rootCmd.AddCommand(cli.GetCommands()...)
	rootCmd.AddCommand(version.NewVersionCommand())

	return rootCmd
}

// bindEnv sets every flag not given on the command line from its
// environment variable, if present.
func bindEnv(cmd *cobra.Command, prefix string) error {
	v := viper.New()
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed || !v.IsSet(f.Name) {
			return
		}
		err = cmd.Flags().Set(f.Name, v.GetString(f.Name))
	})

	return err
}
