package analysis

import (
	"fmt"
	"regexp"
	"strings"
)

// Keyword lists driving the rule-based heuristics. All matching is
// case-insensitive substring counting over the full text.
var (
	fillerWords    = []string{"um", "uh", "like", "actually", "basically", "literally", "you know", "so", "okay", "right"}
	weakPhrases    = []string{"i think", "maybe", "kind of", "sort of", "just", "sorry", "i guess", "probably"}
	apologyPhrases = []string{"sorry", "apologize", "pardon"}
)

var (
	wordPattern     = regexp.MustCompile(`\b\w+\b`)
	sentencePattern = regexp.MustCompile(`[.!?]+`)
)

const longSentenceWords = 25

// RuleResult is the outcome of the rule-based pass over a script.
type RuleResult struct {
	NervousnessScore float64
	ConfidenceScore  float64
	ClarityScore     float64
	DetectedIssues   []string

	FillerCount     int
	WeakCount       int
	ApologyCount    int
	RepetitionCount int
	LongSentences   int
}

// Evaluate scores a script with the filler/weak-phrase/apology heuristics.
// Scores are on a 0-100 scale: nervousness grows with filler and apology
// density, confidence shrinks with hedging, clarity shrinks with long
// sentences and immediate word repetition.
func Evaluate(text string) RuleResult {
	lower := strings.ToLower(text)
	words := wordPattern.FindAllString(lower, -1)
	sentences := sentencePattern.Split(text, -1)

	var r RuleResult
	for _, f := range fillerWords {
		r.FillerCount += strings.Count(lower, f)
	}
	for _, w := range weakPhrases {
		r.WeakCount += strings.Count(lower, w)
	}
	for _, a := range apologyPhrases {
		r.ApologyCount += strings.Count(lower, a)
	}

	// Same word three times in a row counts as one repetition.
	for i := 0; i+2 < len(words); i++ {
		if words[i] == words[i+1] && words[i] == words[i+2] {
			r.RepetitionCount++
		}
	}

	for _, s := range sentences {
		if len(strings.Fields(s)) > longSentenceWords {
			r.LongSentences++
		}
	}

	if r.FillerCount > 0 {
		r.DetectedIssues = append(r.DetectedIssues, fmt.Sprintf("Contains %d filler words (try reducing 'um', 'uh', 'like')", r.FillerCount))
	}
	if r.WeakCount > 0 {
		r.DetectedIssues = append(r.DetectedIssues, fmt.Sprintf("Contains %d weak phrases (avoid hedging language)", r.WeakCount))
	}
	if r.ApologyCount > 0 {
		r.DetectedIssues = append(r.DetectedIssues, fmt.Sprintf("Contains %d apology phrases (unnecessary apologies reduce confidence)", r.ApologyCount))
	}
	if r.RepetitionCount > 0 {
		r.DetectedIssues = append(r.DetectedIssues, fmt.Sprintf("Word repetition detected (%d instances)", r.RepetitionCount))
	}
	if r.LongSentences > 0 {
		r.DetectedIssues = append(r.DetectedIssues, fmt.Sprintf("%d long sentences detected (consider breaking them up)", r.LongSentences))
	}

	total := len(words)
	if total == 0 {
		r.NervousnessScore = 0
		r.ConfidenceScore = 100
		r.ClarityScore = 100
		r.DetectedIssues = []string{"No text provided for analysis"}
		return r
	}

	fillerDensity := float64(r.FillerCount) / float64(total) * 100
	weakDensity := float64(r.WeakCount) / float64(total) * 100
	apologyDensity := float64(r.ApologyCount) / float64(total) * 100

	r.NervousnessScore = round1(clampScore(fillerDensity*3 + apologyDensity*5 + float64(r.RepetitionCount)*2))
	r.ConfidenceScore = round1(clampScore(100 - weakDensity*4 - apologyDensity*3))
	r.ClarityScore = round1(clampScore(100 - float64(r.LongSentences)*5 - float64(r.RepetitionCount)*10))

	if len(r.DetectedIssues) == 0 {
		r.DetectedIssues = []string{"No major issues detected"}
	}
	return r
}
