package cli

import (
	"github.com/spf13/cobra"

	"github.com/cosmos/icq-invoker/modules/apps/icq-invoker/types"
)

// GetQueryCmd returns the query commands for the interchain query invoker module
func GetQueryCmd() *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "IBC interchain query invoker query subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
	}

	queryCmd.AddCommand(
		GetCmdResults(),
		GetCmdErrors(),
		GetCmdChannel(),
		GetCmdParams(),
	)

	return queryCmd
}
