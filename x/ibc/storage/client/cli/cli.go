package cli

import (
	"github.com/spf13/cobra"

	"github.com/initia-labs/ibc-storage/x/ibc/storage/types"
)

// GetCommands returns the ibc storage key tooling commands.
func GetCommands() []*cobra.Command {
	return []*cobra.Command{
		GetCmdHash(),
		GetCmdTokenAddress(),
		GetCmdNftTokenAddress(),
		GetCmdKey(),
		GetCmdDecode(),
	}
}

// GetRootCmd returns a command group holding all the ibc storage commands.
func GetRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "IBC storage key tooling",
		SuggestionsMinimumDistance: 2,
		RunE:                       validateCmd,
	}

	cmd.AddCommand(GetCommands()...)
	return cmd
}
