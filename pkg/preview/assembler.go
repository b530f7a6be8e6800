// Package preview builds a single self-contained HTML document out of the
// workspace's HTML, CSS and JS fragments for sandboxed rendering.
package preview

import (
	"regexp"
	"strings"

	"github.com/webpen/webpen-cli/pkg/models"
	"github.com/webpen/webpen-cli/pkg/workspace"
)

var (
	closingScript = regexp.MustCompile(`(?i)</script`)
	closingStyle  = regexp.MustCompile(`(?i)</style`)
)

// Assemble embeds css inside a style block and js inside a script block
// around the given html body, producing one complete document. Closing-tag
// sequences inside the css and js fragments are neutralized so user content
// cannot terminate its enclosing block.
func Assemble(html, css, js string) string {
	var doc strings.Builder
	doc.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	doc.WriteString("<style>\n")
	doc.WriteString(closingStyle.ReplaceAllString(css, `<\/style`))
	doc.WriteString("\n</style>\n</head>\n<body>\n")
	doc.WriteString(html)
	doc.WriteString("\n<script>\n")
	doc.WriteString(closingScript.ReplaceAllString(js, `<\/script`))
	doc.WriteString("\n</script>\n</body>\n</html>\n")
	return doc.String()
}

// AssembleWorkspace collects the fragments from a workspace tree and
// assembles them: the first .html file in display order supplies the body,
// and all .css and .js files are concatenated in display order. Missing
// fragments are simply empty.
func AssembleWorkspace(t *workspace.Tree) string {
	var html string
	var htmlFound bool
	var css, js []string

	t.Walk(func(n *models.FileNode, depth int) bool {
		if n.IsFolder() {
			return true
		}
		switch {
		case strings.HasSuffix(strings.ToLower(n.Name), ".html"):
			if !htmlFound {
				html = n.Content
				htmlFound = true
			}
		case strings.HasSuffix(strings.ToLower(n.Name), ".css"):
			css = append(css, n.Content)
		case strings.HasSuffix(strings.ToLower(n.Name), ".js"):
			js = append(js, n.Content)
		}
		return true
	})

	return Assemble(html, strings.Join(css, "\n\n"), strings.Join(js, "\n\n"))
}
