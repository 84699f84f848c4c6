package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-contactform/pkg/contact"
	pkgopenapi "github.com/goliatone/go-contactform/pkg/openapi"
	"github.com/goliatone/go-contactform/pkg/orchestrator"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool

	config Config
	log    *log.Logger
}

// NewRootCommand creates the root command for the contactform CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "contactform",
		Short: "Render and drive the contact form",
		Long: `Render the contact form as HTML, fill it in from the terminal, or print
the form model derived from its OpenAPI description.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(opts.ConfigPath)
			if err != nil {
				return err
			}
			opts.config = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "YAML config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log pipeline diagnostics to stderr")

	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewInteractiveCommand(opts))
	cmd.AddCommand(NewSchemaCommand(opts))

	return cmd
}

// orchestratorOptions translates config and global flags into orchestrator
// options shared by every command.
func (o *RootOptions) orchestratorOptions(cmd *cobra.Command) ([]orchestrator.Option, error) {
	var options []orchestrator.Option

	if logger := o.logger(cmd); logger != nil {
		options = append(options, orchestrator.WithLogger(logger))
	}
	if source := strings.TrimSpace(o.config.Source); source != "" {
		options = append(options, orchestrator.WithSource(pkgopenapi.SourceFromFile(source)))
	}
	if preset := strings.TrimSpace(o.config.Preset); preset != "" {
		data, err := os.ReadFile(preset)
		if err != nil {
			return nil, fmt.Errorf("read preset %s: %w", preset, err)
		}
		transformer, err := orchestrator.NewPresetTransformer(data)
		if err != nil {
			return nil, err
		}
		options = append(options, orchestrator.WithSchemaTransformer(transformer))
	}
	if manifest := o.config.Theme.Manifest(); manifest != nil {
		options = append(options, orchestrator.WithThemeManifests(manifest.Name, o.config.Theme.Variant, manifest))
	}
	return options, nil
}

// controllerOptions configures every controller the CLI builds: captured
// values are reduced to plain text and, with --verbose, submit outcomes are
// logged next to the pipeline diagnostics.
func (o *RootOptions) controllerOptions(cmd *cobra.Command) []contact.Option {
	options := []contact.Option{contact.WithSanitizer(contact.StrictSanitizer())}
	if logger := o.logger(cmd); logger != nil {
		options = append(options, contact.WithLogger(logger))
	}
	return options
}

func (o *RootOptions) logger(cmd *cobra.Command) *log.Logger {
	if !o.Verbose {
		return nil
	}
	if o.log == nil {
		o.log = log.New(cmd.ErrOrStderr(), "contactform: ", 0)
	}
	return o.log
}

// writeOutput writes payload to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, payload []byte) error {
	if strings.TrimSpace(path) == "" {
		if _, err := w.Write(payload); err != nil {
			return err
		}
		if len(payload) > 0 && payload[len(payload)-1] != '\n' {
			_, err := io.WriteString(w, "\n")
			return err
		}
		return nil
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
