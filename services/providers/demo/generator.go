// Package demo provides the local fallback generator: a non-AI, always
// successful producer of a placeholder analysis. It needs no credentials and
// is the terminal step of the provider chain, so it must never fail and its
// output must never look like a quota condition.
package demo

import (
	"fmt"
	"strings"
)

// wordsPerMinute is the reading speed used for the estimated reading time.
const wordsPerMinute = 200.0

// BlankTranscriptWarning is returned for blank or whitespace-only input.
const BlankTranscriptWarning = "Please provide a transcript to summarize."

// Generator produces the placeholder analysis report.
type Generator struct{}

// NewGenerator creates a new local fallback generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Name returns the provider name
func (g *Generator) Name() string {
	return "demo"
}

// Generate emits a fixed-template report with the transcript's word count and
// estimated reading time. It is total: defined for every input.
func (g *Generator) Generate(transcript string) string {
	if strings.TrimSpace(transcript) == "" {
		return BlankTranscriptWarning
	}

	wordCount := len(strings.Fields(transcript))
	readingTime := float64(wordCount) / wordsPerMinute

	return fmt.Sprintf(`## Meeting Summary (Demo Mode)

**Transcript Length:** %d words

**Summary:**
This is a demo summary of your meeting transcript. The actual AI-powered summarization requires a valid API key and available quota.

**Key Points:**
- Meeting transcript contains %d words
- To get real AI summarization, ensure your API key is valid and has available quota
- Current mode: Demo/Testing due to quota limits

**Action Items:**
- Check your API key status
- Consider using multiple API keys or alternative providers
- The AI will then provide detailed meeting analysis

**Estimated Reading Time:** %.1f minutes
`, wordCount, wordCount, readingTime)
}
