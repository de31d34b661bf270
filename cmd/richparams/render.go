package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-richparams/internal/metrics"
	"github.com/goliatone/go-richparams/pkg/orchestrator"
	"github.com/goliatone/go-richparams/pkg/render"
	"github.com/goliatone/go-richparams/pkg/renderers/tui"
	"github.com/goliatone/go-richparams/pkg/renderers/vanilla"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the parameters form",
	Long:  `Loads the parameter schemas from --source and renders them with the selected renderer (vanilla HTML or tui prompts).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd, cfg.Renderer)
	},
}

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Prompt for every parameter in the terminal",
	Long:  `Walks the parameters interactively and prints the collected values in the --output format (json, form or pretty).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd, tui.Name)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(promptCmd)
}

func newRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()

	html, err := vanilla.New()
	if err != nil {
		return nil, err
	}
	if err := registry.Register(html); err != nil {
		return nil, err
	}

	terminal, err := tui.New(tui.WithOutputFormat(tui.OutputFormat(cfg.Output)))
	if err != nil {
		return nil, err
	}
	if err := registry.Register(terminal); err != nil {
		return nil, err
	}
	return registry, nil
}

func runRender(cmd *cobra.Command, rendererName string) error {
	ctx := cmd.Context()
	src, err := parseSource()
	if err != nil {
		return err
	}
	values, err := loadValues()
	if err != nil {
		return err
	}
	registry, err := newRegistry()
	if err != nil {
		return err
	}

	gen := orchestrator.New(
		orchestrator.WithLoader(newLoader()),
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(vanilla.Name),
	)
	out, err := gen.Generate(ctx, orchestrator.Request{
		Source:   src,
		Form:     render.Form{ID: "parameters", Title: "Parameters", Method: "post"},
		Renderer: rendererName,
		RenderOptions: render.RenderOptions{
			Values:      values,
			ReadOnly:    cfg.ReadOnly,
			ShowOptions: cfg.ShowOptions,
		},
	})
	metrics.RecordRender(rendererName, err == nil)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
