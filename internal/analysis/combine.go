package analysis

import (
	"math"

	"speechcoach/models"
)

// ImprovedScriptSentinel marks an analysis with no rewritten script. Clients
// examine it to show their own prompt instead of the literal string.
const ImprovedScriptSentinel = "No improved version available"

// Weights for merging rule-based and model-based scores, and for folding
// voice-derived scores into text scores. Each pair sums to 1.0 so combined
// scores stay inside [0,100].
const (
	ruleWeight  = 0.4
	modelWeight = 0.6
	textWeight  = 0.7
	voiceWeight = 0.3
)

const maxIssues = 8

// DefaultSpeakingTips pads model output to exactly five tips and serves as
// the renderer fallback when a result carries none.
var DefaultSpeakingTips = []string{
	"Practice your script out loud",
	"Record yourself and listen back",
	"Use natural pauses and breathing",
	"Maintain eye contact with your audience",
	"Speak slowly and clearly",
}

// Combine merges the rule-based pass with the optional model verdict and the
// optional voice metrics into the final result. With no model verdict the
// rule scores stand alone; otherwise each score is 0.4 rule + 0.6 model.
// Voice scores, when present, are folded in at 0.7 text / 0.3 voice; clarity
// has no voice counterpart and is never blended.
func Combine(rule RuleResult, model *models.ScriptAnalysis, voice *models.VoiceMetrics) models.AnalysisResult {
	var result models.AnalysisResult

	if model == nil {
		result = models.AnalysisResult{
			NervousnessScore: rule.NervousnessScore,
			ConfidenceScore:  rule.ConfidenceScore,
			ClarityScore:     rule.ClarityScore,
			DetectedIssues:   rule.DetectedIssues,
			ImprovedScript:   ImprovedScriptSentinel,
		}
	} else {
		result = models.AnalysisResult{
			NervousnessScore:     mix(rule.NervousnessScore, model.NervousnessScore),
			ConfidenceScore:      mix(rule.ConfidenceScore, model.ConfidenceScore),
			ClarityScore:         mix(rule.ClarityScore, model.ClarityScore),
			DetectedIssues:       mergeIssues(rule.DetectedIssues, model.DetectedIssues),
			ImprovedScript:       model.ImprovedScript,
			SpeakingTips:         model.SpeakingTips,
			PersonalizedFeedback: model.PersonalizedFeedback,
		}
		if result.ImprovedScript == "" {
			result.ImprovedScript = ImprovedScriptSentinel
		}
	}
	result.SpeakingTips = padTips(result.SpeakingTips)

	if voice != nil {
		result.NervousnessScore = round1(clampScore(textWeight*result.NervousnessScore + voiceWeight*voice.VoiceNervousnessScore))
		if voice.VoiceConfidenceScore != nil {
			result.ConfidenceScore = round1(clampScore(textWeight*result.ConfidenceScore + voiceWeight*(*voice.VoiceConfidenceScore)))
		}
		result.DetectedIssues = append(result.DetectedIssues, voice.VoiceInsights...)
		result.VoiceMetrics = &voice.Metrics
		result.HasVoiceAnalysis = true
	}

	return result
}

func mix(rule, model float64) float64 {
	return round1(clampScore(ruleWeight*rule + modelWeight*model))
}

// mergeIssues deduplicates while preserving order, rule findings first, and
// caps the list at maxIssues.
func mergeIssues(rule, model []string) []string {
	seen := make(map[string]struct{}, len(rule)+len(model))
	var merged []string
	for _, issue := range append(append([]string{}, rule...), model...) {
		if _, ok := seen[issue]; ok {
			continue
		}
		seen[issue] = struct{}{}
		merged = append(merged, issue)
		if len(merged) == maxIssues {
			break
		}
	}
	return merged
}

// padTips returns exactly five tips, topping up from the defaults or
// truncating as needed.
func padTips(tips []string) []string {
	out := append([]string{}, tips...)
	for _, tip := range DefaultSpeakingTips {
		if len(out) >= len(DefaultSpeakingTips) {
			break
		}
		out = append(out, tip)
	}
	if len(out) > len(DefaultSpeakingTips) {
		out = out[:len(DefaultSpeakingTips)]
	}
	return out
}

func clampScore(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
