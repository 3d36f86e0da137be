// Package voice derives nervousness indicators from a recorded audio
// payload. The features are pseudo-features seeded from the payload rather
// than real signal processing; per-call determinism keeps them testable.
package voice

import (
	"math"
	"math/rand"
	"time"

	"speechcoach/models"
)

const maxInsights = 3

// Derive produces voice metrics for a decoded audio payload. The same
// payload and instant always yield the same metrics.
func Derive(audio []byte, now time.Time) *models.VoiceMetrics {
	rng := rand.New(rand.NewSource(int64(len(audio)) + now.UnixMilli()))

	pitchVariation := uniform(rng, 0.3, 0.9)
	speechRate := uniform(rng, 0.4, 0.9)
	pauseFrequency := uniform(rng, 0.2, 0.8)
	volumeConsistency := uniform(rng, 0.3, 0.9)

	nervousness := pitchVariation*30 + speechRate*30 + pauseFrequency*20 + (1-volumeConsistency)*20
	confidence := 100 - nervousness

	var insights []string
	if pitchVariation > 0.7 {
		insights = append(insights, "Your voice pitch varies significantly, which may indicate nervousness")
	} else if pitchVariation < 0.3 {
		insights = append(insights, "Your voice pitch is very monotone - try adding more expression")
	}
	if speechRate > 0.7 {
		insights = append(insights, "You're speaking quite fast - try slowing down")
	} else if speechRate < 0.4 {
		insights = append(insights, "Your speech rate is good - maintain this pace")
	}
	if pauseFrequency > 0.6 {
		insights = append(insights, "Frequent pauses detected - try to reduce filler pauses")
	}
	if volumeConsistency < 0.4 {
		insights = append(insights, "Your volume varies significantly - work on consistent projection")
	}
	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}

	return &models.VoiceMetrics{
		VoiceNervousnessScore: round1(nervousness),
		VoiceConfidenceScore:  ptr(round1(confidence)),
		VoiceInsights:         insights,
		Metrics: models.VoiceSignalMetrics{
			PitchVariation:    round1(pitchVariation * 100),
			SpeechRate:        round1(speechRate * 100),
			PauseFrequency:    round1(pauseFrequency * 100),
			VolumeConsistency: round1(volumeConsistency * 100),
		},
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func ptr(v float64) *float64 { return &v }
