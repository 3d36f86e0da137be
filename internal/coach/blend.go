package coach

import (
	"math"

	"speechcoach/models"
)

// Weights for folding voice-derived scores into the text scores returned by
// the analysis endpoint. They sum to 1.0, so over pre-clamped inputs the
// blend stays inside [0,100].
const (
	textWeight  = 0.7
	voiceWeight = 0.3
)

// BlendVoice folds voice metrics from the current session into an analysis
// result: nervousness and confidence at 0.7 text / 0.3 voice, rounded to the
// nearest integer. Clarity has no voice-derived counterpart and is left
// untouched. Voice insights are appended to, not substituted for, the
// text-derived issues.
func BlendVoice(result *models.AnalysisResult, vm *models.VoiceMetrics) {
	result.NervousnessScore = blendScore(result.NervousnessScore, vm.VoiceNervousnessScore)
	if vm.VoiceConfidenceScore != nil {
		result.ConfidenceScore = blendScore(result.ConfidenceScore, *vm.VoiceConfidenceScore)
	}
	result.DetectedIssues = append(result.DetectedIssues, vm.VoiceInsights...)
	result.VoiceMetrics = &vm.Metrics
	result.HasVoiceAnalysis = true
}

func blendScore(text, voice float64) float64 {
	return math.Round(textWeight*clamp(text) + voiceWeight*clamp(voice))
}

func clamp(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}
