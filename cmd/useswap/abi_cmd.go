package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/meverselabs/useswap/contract/useswap"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func abiCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "abi",
		Short: "prints the ethereum abi of the wrapper",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(useswap.ABIJSON)
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "decode [calldata]",
		Short: "decodes wrapper calldata into the method and its arguments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
			if err != nil {
				return errors.WithStack(err)
			}
			method, values, err := useswap.DecodeCall(data)
			if err != nil {
				return err
			}
			return printJSON(map[string]interface{}{
				"method": method,
				"args":   values,
			})
		},
	})
	return cmd
}
