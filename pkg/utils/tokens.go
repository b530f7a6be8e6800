package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	wordPattern  = regexp.MustCompile(`\S+`)
	fencePattern = regexp.MustCompile("```[\\s\\S]*?```")
)

// EstimateTokens gives a rough token count for a prompt or reply, averaging
// a character-based estimate (~4 chars per token) with a word-based one
// (~1.3 tokens per word). Fenced code blocks pack more tokens per character
// and get a small correction.
func EstimateTokens(text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}

	charEstimate := len(text) / 4
	wordEstimate := int(float64(len(wordPattern.FindAllString(text, -1))) * 1.3)
	estimate := (charEstimate + wordEstimate) / 2

	for _, block := range fencePattern.FindAllString(text, -1) {
		estimate += (len(block) / 3) - (len(block) / 4)
	}

	if estimate < 1 {
		estimate = 1
	}
	return estimate
}

// FormatTokenCount renders a token estimate for the status line.
func FormatTokenCount(tokens int) string {
	if tokens < 1000 {
		return fmt.Sprintf("~%d tokens", tokens)
	}
	return fmt.Sprintf("~%.1fK tokens", float64(tokens)/1000)
}
