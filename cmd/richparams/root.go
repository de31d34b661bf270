package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-richparams/internal/config"
	"github.com/goliatone/go-richparams/internal/logx"
)

// cfg is resolved before every command runs.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "richparams",
	Short: "Render, prompt for and submit rich parameters",
	Long: `richparams turns a list of rich parameter or template variable schemas into
an input form (HTML or terminal prompts) and encodes the collected values into
the payload expected by the template version API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		resolved, err := config.Resolve(cmd.Flags())
		if err != nil {
			return err
		}
		cfg = resolved
		logx.Configure(cfg.LogLevel)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	config.BindFlags(rootCmd.PersistentFlags())
}
