package main

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-richparams/internal/logx"
	"github.com/goliatone/go-richparams/pkg/submission"
)

var errTemplateIDRequired = errors.New("richparams: --template-id is required")

var variablesCmd = &cobra.Command{
	Use:   "variables",
	Short: "Print the template version request for a set of variables",
	Long: `Loads the template variables from --source, pre-fills them from --values-file,
checks required variables and prints the CreateTemplateVersionRequest JSON.`,
	RunE: runVariables,
}

func init() {
	rootCmd.AddCommand(variablesCmd)
}

func runVariables(cmd *cobra.Command, args []string) error {
	templateID, err := cfg.ParsedTemplateID()
	if err != nil {
		return err
	}
	if templateID == uuid.Nil {
		return errTemplateIDRequired
	}

	variables, err := loadParameters(cmd.Context())
	if err != nil {
		return err
	}
	session, err := submission.NewSession(templateID, variables, submission.WithReadOnly(cfg.ReadOnly))
	if err != nil {
		return err
	}

	if cfg.ValuesFile != "" {
		values, err := submission.LoadValuesFile(cfg.ValuesFile)
		if err != nil {
			return err
		}
		for _, name := range session.Apply(values) {
			logx.Log.Warn().Str("variable", name).Msg("values file names an unknown variable")
		}
	}

	if err := session.Validate(); err != nil {
		return err
	}
	req := session.Request()
	if err := submission.ValidateContract(req); err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(req)
}
