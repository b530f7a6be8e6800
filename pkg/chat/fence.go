package chat

import (
	"regexp"
	"strings"
)

var fencePattern = regexp.MustCompile("(?s)```([a-zA-Z0-9+#_.-]*)[ \t]*\n?(.*?)```")

// ExtractCodeBlock scans text for the first fenced code block (triple
// backticks, optional language tag) and returns its body and language.
// It reports false when no complete fence is found.
func ExtractCodeBlock(text string) (code, lang string, ok bool) {
	m := fencePattern.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	return strings.TrimRight(m[2], "\n"), m[1], true
}
