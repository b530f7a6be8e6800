package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/webpen/webpen-cli/internal/cli"
)

var (
	modelsEndpoint string
	modelsOutput   string
)

// NewModelsCommand creates the models command
func NewModelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "List models available at the text-generation endpoint",
		Long: `Enumerate the models the configured endpoint offers.

The endpoint defaults to the one in .webpen/settings.yaml
(http://localhost:11434 when no project exists).

Examples:
  # List models from the configured endpoint
  webpen models

  # Query a different endpoint, machine-readable output
  webpen models --endpoint http://192.168.1.10:11434 --output json`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if modelsEndpoint != "" {
				if err := cli.ValidateEndpointURL(modelsEndpoint); err != nil {
					return err
				}
			}
			return cli.ValidateOutputFormat(modelsOutput)
		},
		RunE: runModels,
	}

	cmd.Flags().StringVar(&modelsEndpoint, "endpoint", "", "Text-generation endpoint base URL")
	cmd.Flags().StringVarP(&modelsOutput, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func runModels(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}

	client := ctx.NewChatClient(modelsEndpoint)
	names, err := client.Connect(context.Background())
	if err != nil {
		return err
	}

	if cli.OutputFormat(modelsOutput) != cli.FormatText {
		return cli.OutputResults(os.Stdout, modelsOutput, names)
	}

	if len(names) == 0 {
		fmt.Println("No models available at", ctx.Endpoint(modelsEndpoint))
		return nil
	}

	table := cli.NewTableFormatter(os.Stdout)
	table.Header("MODEL")
	for _, name := range names {
		table.Row(name)
	}
	table.Flush()

	return nil
}
