package models

// VoiceSignalMetrics are the raw signal-derived indicators, each on a 0-100
// scale.
type VoiceSignalMetrics struct {
	PitchVariation    float64 `json:"pitch_variation"`
	SpeechRate        float64 `json:"speech_rate"`
	PauseFrequency    float64 `json:"pause_frequency"`
	VolumeConsistency float64 `json:"volume_consistency"`
}

// VoiceMetrics is the voice-analysis portion of a transcription response.
// VoiceConfidenceScore and VoiceInsights are optional.
type VoiceMetrics struct {
	VoiceNervousnessScore float64            `json:"voice_nervousness_score"`
	VoiceConfidenceScore  *float64           `json:"voice_confidence_score,omitempty"`
	VoiceInsights         []string           `json:"voice_insights,omitempty"`
	Metrics               VoiceSignalMetrics `json:"metrics"`
}

// TranscribeResponse is the response body of POST /transcribe. Both fields
// are independently optional: a transcription can arrive without voice
// metrics and vice versa.
type TranscribeResponse struct {
	Transcription string        `json:"transcription,omitempty"`
	VoiceMetrics  *VoiceMetrics `json:"voice_metrics,omitempty"`
}
