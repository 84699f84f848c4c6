package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-contactform/pkg/orchestrator"
)

// NewSchemaCommand creates the schema command, which prints the form model as
// JSON.
func NewSchemaCommand(rootOpts *RootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the form model derived from the OpenAPI description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := rootOpts.orchestratorOptions(cmd)
			if err != nil {
				return err
			}
			form, err := orchestrator.New(options...).Form(cmd.Context())
			if err != nil {
				return err
			}
			payload, err := json.MarshalIndent(form, "", "  ")
			if err != nil {
				return fmt.Errorf("encode form model: %w", err)
			}
			return writeOutput(cmd.OutOrStdout(), output, payload)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}
