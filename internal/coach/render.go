package coach

import (
	"fmt"
	"io"
	"strings"

	"speechcoach/internal/analysis"
	"speechcoach/models"
)

// Fallback copy used when a result arrives with gaps.
const (
	noIssuesPlaceholder = "No major issues detected - great job!"
	apiKeyPrompt        = "Configure a GROQ_API_KEY to receive an AI-improved version of your script."
)

// ReportView is the renderable projection of an AnalysisResult: gauge
// values plus the lists and panels, with every fallback already applied.
type ReportView struct {
	Nervousness    float64
	Confidence     float64
	Clarity        float64
	Issues         []string
	ImprovedScript string
	Tips           []string
	Warning        string
}

// BuildReport projects an AnalysisResult into a ReportView. It is a pure
// function: the same result always yields the same view.
//   - empty issues become a single placeholder entry
//   - an absent or sentinel improved script becomes the API-key prompt
//   - empty tips become the five default tips
func BuildReport(result *models.AnalysisResult) ReportView {
	view := ReportView{
		Nervousness: result.NervousnessScore,
		Confidence:  result.ConfidenceScore,
		Clarity:     result.ClarityScore,
	}

	if len(result.DetectedIssues) == 0 {
		view.Issues = []string{noIssuesPlaceholder}
	} else {
		view.Issues = append([]string{}, result.DetectedIssues...)
	}

	if result.ImprovedScript == "" || result.ImprovedScript == analysis.ImprovedScriptSentinel {
		view.ImprovedScript = apiKeyPrompt
	} else {
		view.ImprovedScript = result.ImprovedScript
	}

	if len(result.SpeakingTips) == 0 {
		view.Tips = append([]string{}, analysis.DefaultSpeakingTips...)
	} else {
		view.Tips = append([]string{}, result.SpeakingTips...)
	}

	if result.APIKeyWarning {
		view.Warning = result.WarningMessage
		if view.Warning == "" {
			view.Warning = defaultWarningBanner
		}
	}

	return view
}

// WriteReport prints a ReportView to a terminal, animating each gauge.
func WriteReport(w io.Writer, view ReportView) {
	if view.Warning != "" {
		fmt.Fprintf(w, "! %s\n\n", view.Warning)
	}

	writeGauge(w, "Nervousness", view.Nervousness)
	writeGauge(w, "Confidence", view.Confidence)
	writeGauge(w, "Clarity", view.Clarity)

	fmt.Fprintln(w, "\nDetected issues:")
	for _, issue := range view.Issues {
		fmt.Fprintf(w, "  - %s\n", issue)
	}

	fmt.Fprintln(w, "\nImproved script:")
	fmt.Fprintf(w, "  %s\n", view.ImprovedScript)

	fmt.Fprintln(w, "\nSpeaking tips:")
	for _, tip := range view.Tips {
		fmt.Fprintf(w, "  - %s\n", tip)
	}
}

const gaugeWidth = 40

func writeGauge(w io.Writer, label string, value float64) {
	frames := GaugeFrames(0, value)
	final := frames[len(frames)-1]
	filled := int(final / 100 * gaugeWidth)
	if filled > gaugeWidth {
		filled = gaugeWidth
	}
	bar := strings.Repeat("#", filled) + strings.Repeat("-", gaugeWidth-filled)
	fmt.Fprintf(w, "%-12s [%s] %3.0f\n", label, bar, final)
}
