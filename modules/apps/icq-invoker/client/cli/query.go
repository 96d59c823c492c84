package cli

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/version"
	"github.com/spf13/cobra"

	"github.com/cosmos/icq-invoker/modules/apps/icq-invoker/types"
)

// GetCmdResults returns the command handler for querying the stored balances.
func GetCmdResults() *cobra.Command {
	return newQueryCmd(
		types.QueryResults,
		"Query the balances stored for every answered interchain query, ordered by packet sequence",
	)
}

// GetCmdErrors returns the command handler for querying the stored error acknowledgements.
func GetCmdErrors() *cobra.Command {
	return newQueryCmd(
		types.QueryErrors,
		"Query the error acknowledgements stored for failed interchain queries, ordered by packet sequence",
	)
}

// GetCmdChannel returns the command handler for querying the established channel.
func GetCmdChannel() *cobra.Command {
	return newQueryCmd(
		types.QueryChannel,
		"Query the channel used to send interchain queries",
	)
}

// GetCmdParams returns the command handler for the module parameter querying.
func GetCmdParams() *cobra.Command {
	return newQueryCmd(
		types.QueryParams,
		"Query the current interchain query invoker parameters",
	)
}

func newQueryCmd(route, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     route,
		Short:   short,
		Long:    short,
		Args:    cobra.NoArgs,
		Example: fmt.Sprintf("%s query %s %s", version.AppName, types.ModuleName, route),
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(types.QueryPath(route), nil)
			if err != nil {
				return err
			}

			return clientCtx.PrintBytes(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}
