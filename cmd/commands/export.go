package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webpen/webpen-cli/pkg/files"
	"github.com/webpen/webpen-cli/pkg/preview"
	"github.com/webpen/webpen-cli/pkg/workspace"
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <output>",
		Short: "Write the starter workspace's assembled preview to a file",
		Long: `Assemble the starter workspace (the same one every TUI session
begins with) into a single HTML document and write it to the given path.

Useful as a quick scaffold: open the result in a browser, then bring the
pieces into a session with the TUI import action.

Examples:
  webpen export demo.html`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	doc := preview.AssembleWorkspace(workspace.Seed())

	if err := files.WritePreviewFile(doc, args[0]); err != nil {
		return err
	}
	fmt.Printf("✓ Wrote %s\n", args[0])
	return nil
}
