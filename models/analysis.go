package models

// ScriptAnalysis is the structured verdict returned by the language model
// for a presentation script. The gateway merges it with the rule-based
// analyzer before responding.
type ScriptAnalysis struct {
	NervousnessScore     float64  `json:"nervousness_score"`
	ConfidenceScore      float64  `json:"confidence_score"`
	ClarityScore         float64  `json:"clarity_score"`
	DetectedIssues       []string `json:"detected_issues"`
	ImprovedScript       string   `json:"improved_script"`
	SpeakingTips         []string `json:"speaking_tips"`
	PersonalizedFeedback string   `json:"personalized_feedback,omitempty"`
}

// AnalysisResult is the response body of POST /analyze. All scores are on a
// 0-100 scale.
type AnalysisResult struct {
	NervousnessScore     float64             `json:"nervousness_score"`
	ConfidenceScore      float64             `json:"confidence_score"`
	ClarityScore         float64             `json:"clarity_score"`
	DetectedIssues       []string            `json:"detected_issues"`
	ImprovedScript       string              `json:"improved_script,omitempty"`
	SpeakingTips         []string            `json:"speaking_tips"`
	PersonalizedFeedback string              `json:"personalized_feedback,omitempty"`
	AnalysisID           string              `json:"analysis_id,omitempty"`
	APIKeyWarning        bool                `json:"api_key_warning"`
	WarningMessage       string              `json:"warning_message,omitempty"`
	HasVoiceAnalysis     bool                `json:"has_voice_analysis,omitempty"`
	VoiceMetrics         *VoiceSignalMetrics `json:"voice_metrics,omitempty"`
}
