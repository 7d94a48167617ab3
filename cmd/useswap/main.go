package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var hostURL string
	var configPath string
	var rootCmd = &cobra.Command{
		Use:          "useswap",
		Short:        "runs and talks to a local chain with the swap wrapper",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&hostURL, "host", "http://localhost:8541", "url of the node to access")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "toml or yaml config file")
	rootCmd.AddCommand(serveCommand(&configPath))
	rootCmd.AddCommand(demoCommand(&configPath))
	rootCmd.AddCommand(abiCommand())
	rootCmd.AddCommand(keyCommand())
	rootCmd.AddCommand(chainCommand(&hostURL))
	rootCmd.AddCommand(txCommand(&hostURL))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error :", err)
		os.Exit(1)
	}
}
