package main

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/common/key"
	"github.com/meverselabs/useswap/core/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func fetchUint64(hostURL string, Method string, Params ...interface{}) (uint64, error) {
	if Params == nil {
		Params = []interface{}{}
	}
	res, err := DoRequest(hostURL, Method, Params)
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(fmt.Sprintf("%v", res), 10, 64)
}

func txCommand(pHostURL *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "sends transactions and reads their receipts",
	}
	var value string
	send := &cobra.Command{
		Use:   "send [keyhex] [to] [method] (args...)",
		Short: "signs and sends a contract call, numbers are base units",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := key.NewMemoryKeyFromString(args[0])
			if err != nil {
				return err
			}
			to, err := common.ParseAddress(args[1])
			if err != nil {
				return err
			}
			chainID, err := fetchUint64(*pHostURL, "chain.chainID")
			if err != nil {
				return err
			}
			seq, err := fetchUint64(*pHostURL, "chain.seq", k.Address().String())
			if err != nil {
				return err
			}
			callArgs := make([]interface{}, 0, len(args)-3)
			for _, v := range args[3:] {
				callArgs = append(callArgs, v)
			}
			tx := &types.Transaction{
				ChainID: new(big.Int).SetUint64(chainID),
				Seq:     seq,
				To:      to,
				Method:  args[2],
				Args:    callArgs,
			}
			m := map[string]interface{}{
				"chainId": chainID,
				"seq":     seq,
				"to":      to.String(),
				"method":  args[2],
				"args":    callArgs,
			}
			if value != "" {
				bi, ok := new(big.Int).SetString(value, 10)
				if !ok {
					return errors.Errorf("invalid value %v", value)
				}
				tx.Value = amount.NewAmountFromBig(bi)
				m["value"] = value
			}
			sig, err := tx.Sign(k)
			if err != nil {
				return err
			}
			return requestAndPrint(*pHostURL, "chain.sendTransaction", m, sig.String())
		},
	}
	send.Flags().StringVar(&value, "value", "", "native coin to attach in base units")
	cmd.AddCommand(send)
	cmd.AddCommand(&cobra.Command{
		Use:   "receipt [txhash]",
		Short: "returns the receipt of a recent transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return requestAndPrint(*pHostURL, "chain.receipt", args[0])
		},
	})
	return cmd
}
