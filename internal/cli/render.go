package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/orchestrator"
)

type renderOptions struct {
	values       map[contact.Field]*string
	submit       bool
	renderer     string
	output       string
	theme        string
	variant      string
	serverErrors string
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &renderOptions{values: make(map[contact.Field]*string)}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the contact form as HTML",
		Long: `Render the contact form after applying the given field values.

Each field flag runs the same per-field validation as typing into the form.
With --submit the form is submitted, so a valid set of values renders the
captured submission and an invalid one renders every failing field.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(rootOpts, opts, cmd)
		},
	}

	for _, field := range contact.Fields() {
		value := new(string)
		opts.values[field] = value
		cmd.Flags().StringVar(value, flagName(field), "", fmt.Sprintf("value for the %s field", field))
	}
	cmd.Flags().BoolVar(&opts.submit, "submit", false, "submit the form after applying values")
	cmd.Flags().StringVar(&opts.renderer, "renderer", "", "renderer name (default from config, then vanilla)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "theme name")
	cmd.Flags().StringVar(&opts.variant, "variant", "", "theme variant")
	cmd.Flags().StringVar(&opts.serverErrors, "server-errors", "", "YAML or JSON file mapping field paths to error messages")

	return cmd
}

func runRender(rootOpts *RootOptions, opts *renderOptions, cmd *cobra.Command) error {
	options, err := rootOpts.orchestratorOptions(cmd)
	if err != nil {
		return err
	}

	controller := contact.New(rootOpts.controllerOptions(cmd)...)
	for _, field := range contact.Fields() {
		if !cmd.Flags().Changed(flagName(field)) {
			continue
		}
		if err := controller.SetField(field, *opts.values[field]); err != nil {
			return err
		}
	}
	if opts.submit {
		controller.Submit()
	}

	serverErrors, err := loadServerErrors(opts.serverErrors)
	if err != nil {
		return err
	}

	orch := orchestrator.New(options...)
	payload, err := orch.Render(cmd.Context(), orchestrator.Request{
		Renderer:     firstNonEmpty(opts.renderer, rootOpts.config.Renderer),
		State:        controller.State(),
		ServerErrors: serverErrors,
		ThemeName:    opts.theme,
		ThemeVariant: opts.variant,
	})
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), firstNonEmpty(opts.output, rootOpts.config.Output), payload)
}

func loadServerErrors(path string) (map[string][]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read server errors: %w", err)
	}
	var payload map[string][]string
	if err := yaml.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse server errors: %w", err)
	}
	return payload, nil
}

// flagName turns a field name into its kebab-case flag ("firstName" →
// "first-name").
func flagName(field contact.Field) string {
	name := field.String()
	out := make([]byte, 0, len(name)+2)
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' {
			out = append(out, '-', c+('a'-'A'))
			continue
		}
		out = append(out, c)
	}
	return string(out)
}
