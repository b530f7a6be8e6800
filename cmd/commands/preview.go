package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webpen/webpen-cli/internal/cli"
	"github.com/webpen/webpen-cli/pkg/files"
	"github.com/webpen/webpen-cli/pkg/preview"
)

var previewOutput string

// NewPreviewCommand creates the preview command
func NewPreviewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <html-file> <css-file> <js-file>",
		Short: "Assemble three source fragments into one HTML document",
		Long: `Build a single self-contained HTML document from an HTML body,
a stylesheet, and a script, the same way the TUI preview pane does.

Each fragment is capped at 1 MiB. Without --out the document is printed
to stdout.

Examples:
  # Print the assembled document
  webpen preview body.html style.css app.js

  # Write it next to the sources
  webpen preview body.html style.css app.js --out demo.html`,
		Args: cobra.ExactArgs(3),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if err := cli.ValidateFilePath(path); err != nil {
					return err
				}
			}
			return nil
		},
		RunE: runPreview,
	}

	cmd.Flags().StringVarP(&previewOutput, "out", "o", "", "Write the document to a file instead of stdout")

	return cmd
}

func runPreview(cmd *cobra.Command, args []string) error {
	html, err := files.ReadFragment(args[0])
	if err != nil {
		return err
	}
	css, err := files.ReadFragment(args[1])
	if err != nil {
		return err
	}
	js, err := files.ReadFragment(args[2])
	if err != nil {
		return err
	}

	doc := preview.Assemble(html, css, js)

	if previewOutput == "" {
		fmt.Print(doc)
		return nil
	}

	if err := files.WritePreviewFile(doc, previewOutput); err != nil {
		return err
	}
	fmt.Printf("✓ Wrote %s\n", previewOutput)
	return nil
}
