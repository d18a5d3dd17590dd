package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/version"

	"github.com/initia-labs/ibc-storage/x/ibc/storage/types"
)

// TokenOutput describes the IBC token derived from a denom trace.
type TokenOutput struct {
	Trace   string `json:"trace" yaml:"trace"`
	Hash    string `json:"hash" yaml:"hash"`
	Address string `json:"address,omitempty" yaml:"address,omitempty"`
}

// GetCmdHash defines the command to hash a denom trace.
func GetCmdHash() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "hash [trace]",
		Short:   "Hash a denom trace",
		Long:    "Hash a denom trace into the lowercase hex token hash used in storage keys",
		Example: fmt.Sprintf("%s hash transfer/channel-0/uatom", version.AppName),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printOutput(cmd, TokenOutput{
				Trace: args[0],
				Hash:  types.CalcHash(args[0]),
			})
		},
	}

	AddOutputFlag(cmd)
	return cmd
}

// GetCmdTokenAddress defines the command to derive the IBC token address of a denom trace.
func GetCmdTokenAddress() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "token-address [trace]",
		Short:   "Derive the IBC token address of a denom trace",
		Example: fmt.Sprintf("%s token-address transfer/channel-0/uatom", version.AppName),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printOutput(cmd, tokenOutput(args[0]))
		},
	}

	AddOutputFlag(cmd)
	return cmd
}

// GetCmdNftTokenAddress defines the command to derive the IBC token address of an NFT.
func GetCmdNftTokenAddress() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "nft-token-address [class-id] [token-id]",
		Short:   "Derive the IBC token address of an NFT",
		Example: fmt.Sprintf("%s nft-token-address nft-transfer/channel-1/class token-1", version.AppName),
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printOutput(cmd, tokenOutput(types.NftTrace(args[0], args[1])))
		},
	}

	AddOutputFlag(cmd)
	return cmd
}

func tokenOutput(trace string) TokenOutput {
	hash := types.CalcIbcTokenHash(trace)
	return TokenOutput{
		Trace:   trace,
		Hash:    hash.String(),
		Address: types.NewIbcTokenAddress(hash).String(),
	}
}
