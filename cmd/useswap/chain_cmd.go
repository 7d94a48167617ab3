package main

import (
	"github.com/spf13/cobra"
)

func chainCommand(pHostURL *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chain",
		Short: "shows chain informations",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "height",
		Short: "returns the height of the chain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return requestAndPrint(*pHostURL, "chain.height")
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "balance [address]",
		Short: "returns the native balance of the address in base units",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return requestAndPrint(*pHostURL, "chain.balance", args[0])
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "token [token] [owner]",
		Short: "returns the token balance of the owner in base units",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return requestAndPrint(*pHostURL, "token.balanceOf", args[0], args[1])
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "swapcount [useswap]",
		Short: "returns the number of completed operations of the wrapper",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return requestAndPrint(*pHostURL, "useswap.swapCount", args[0])
		},
	})
	return cmd
}
