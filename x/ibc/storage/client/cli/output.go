package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cosmos/cosmos-sdk/client/flags"
)

const outputFormatYAML = "yaml"

// AddOutputFlag registers the --output flag on the command.
func AddOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP(flags.FlagOutput, "o", flags.OutputFormatText, "Output format (text|yaml|json)")
}

// printOutput writes the value to the command output in the requested format.
// Text output is YAML.
func printOutput(cmd *cobra.Command, v any) error {
	format, err := cmd.Flags().GetString(flags.FlagOutput)
	if err != nil {
		return err
	}

	var out []byte
	switch format {
	case flags.OutputFormatJSON:
		out, err = json.Marshal(v)
	case flags.OutputFormatText, outputFormatYAML:
		out, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return err
	}

	if len(out) > 0 && out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
