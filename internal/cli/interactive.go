package cli

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/orchestrator"
	"github.com/goliatone/go-contactform/pkg/render"
	"github.com/goliatone/go-contactform/pkg/renderers/tui"
)

type interactiveOptions struct {
	format      string
	output      string
	repeat      bool
	maxAttempts int
	inline      bool

	// driver replaces the survey prompts in tests.
	driver tui.PromptDriver
}

// NewInteractiveCommand creates the interactive command.
func NewInteractiveCommand(rootOpts *RootOptions) *cobra.Command {
	return newInteractiveCommand(rootOpts, &interactiveOptions{})
}

func newInteractiveCommand(rootOpts *RootOptions, opts *interactiveOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Fill in the contact form from the terminal",
		Long: `Prompt for every field, show validation errors as you go and re-prompt
only the fields that failed until the form is accepted. The accepted
submission is printed in the chosen format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format (json|form|pretty)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.repeat, "repeat", false, "offer another submission after each accepted one")
	cmd.Flags().BoolVar(&opts.inline, "inline-validation", false, "keep a prompt open until its answer passes the field rules")
	cmd.Flags().IntVar(&opts.maxAttempts, "max-attempts", 0, "give up after this many rejected submits (0 = unlimited)")

	return cmd
}

func runInteractive(rootOpts *RootOptions, opts *interactiveOptions, cmd *cobra.Command) error {
	format, err := contact.ParseFormat(firstNonEmpty(opts.format, rootOpts.config.Format))
	if err != nil {
		return err
	}

	driver := opts.driver
	if driver == nil {
		driver = tui.NewSurveyDriver(cmd.ErrOrStderr())
	}
	renderer, err := tui.New(
		tui.WithPromptDriver(driver),
		tui.WithOutputFormat(format),
		tui.WithRepeat(opts.repeat),
		tui.WithMaxAttempts(opts.maxAttempts),
		tui.WithInlineValidation(opts.inline),
		tui.WithControllerOptions(rootOpts.controllerOptions(cmd)...),
	)
	if err != nil {
		return err
	}

	registry := render.NewRegistry(renderer)

	options, err := rootOpts.orchestratorOptions(cmd)
	if err != nil {
		return err
	}
	options = append(options, orchestrator.WithRegistry(registry), orchestrator.WithDefaultRenderer(tui.Name))

	payload, err := orchestrator.New(options...).Render(cmd.Context(), orchestrator.Request{})
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), firstNonEmpty(opts.output, rootOpts.config.Output), payload)
}
