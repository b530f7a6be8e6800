package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/webpen/webpen-cli/internal/cli"
	"github.com/webpen/webpen-cli/pkg/chat"
)

var (
	askEndpoint string
	askModel    string
	askCodeOnly bool
)

// NewAskCommand creates the ask command
func NewAskCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <prompt>",
		Short: "Send a one-shot prompt to the text-generation endpoint",
		Long: `Send a single non-streaming prompt and print the reply.

With --code-only, only the body of the first fenced code block in the
reply is printed; the command fails when the reply contains none.

Examples:
  # Ask with the configured default model
  webpen ask "write a css spinner"

  # Pick a model and keep just the code
  webpen ask "a debounce helper in js" --model codellama --code-only`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if askEndpoint != "" {
				return cli.ValidateEndpointURL(askEndpoint)
			}
			return nil
		},
		RunE: runAsk,
	}

	cmd.Flags().StringVar(&askEndpoint, "endpoint", "", "Text-generation endpoint base URL")
	cmd.Flags().StringVarP(&askModel, "model", "m", "", "Model to generate with")
	cmd.Flags().BoolVar(&askCodeOnly, "code-only", false, "Print only the first fenced code block")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	cmdCtx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}

	client := cmdCtx.NewChatClient(askEndpoint)
	ctx := context.Background()

	model := cmdCtx.Model(askModel)
	if model == "" {
		// No configured model: take the first one the endpoint offers.
		names, err := client.Connect(ctx)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			return fmt.Errorf("no models available at %s", cmdCtx.Endpoint(askEndpoint))
		}
		model = names[0]
	}

	reply, err := client.Generate(ctx, model, strings.Join(args, " "))
	if err != nil {
		return err
	}

	if askCodeOnly {
		code, _, ok := chat.ExtractCodeBlock(reply)
		if !ok {
			return fmt.Errorf("reply contains no fenced code block")
		}
		fmt.Println(code)
		return nil
	}

	fmt.Println(strings.TrimSpace(reply))
	return nil
}
