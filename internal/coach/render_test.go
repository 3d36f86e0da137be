package coach

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"speechcoach/internal/analysis"
	"speechcoach/models"
)

func TestBuildReportAppliesFallbacks(t *testing.T) {
	view := BuildReport(&models.AnalysisResult{
		NervousnessScore: 10,
		ConfidenceScore:  95,
		ClarityScore:     90,
	})

	if !reflect.DeepEqual(view.Issues, []string{noIssuesPlaceholder}) {
		t.Errorf("Issues = %v, want placeholder", view.Issues)
	}
	if view.ImprovedScript != apiKeyPrompt {
		t.Errorf("ImprovedScript = %q, want API-key prompt", view.ImprovedScript)
	}
	if !reflect.DeepEqual(view.Tips, analysis.DefaultSpeakingTips) {
		t.Errorf("Tips = %v, want defaults", view.Tips)
	}
	if view.Warning != "" {
		t.Errorf("Warning = %q, want none", view.Warning)
	}
}

func TestBuildReportSentinelImprovedScript(t *testing.T) {
	view := BuildReport(&models.AnalysisResult{
		ImprovedScript: analysis.ImprovedScriptSentinel,
	})
	if view.ImprovedScript != apiKeyPrompt {
		t.Errorf("ImprovedScript = %q, want API-key prompt for sentinel", view.ImprovedScript)
	}
}

func TestBuildReportPassesContentThrough(t *testing.T) {
	result := &models.AnalysisResult{
		NervousnessScore: 40,
		ConfidenceScore:  70,
		ClarityScore:     80,
		DetectedIssues:   []string{"Filler words: 3 instances"},
		ImprovedScript:   "A better script.",
		SpeakingTips:     []string{"Pause more"},
		APIKeyWarning:    true,
		WarningMessage:   "Running in basic mode",
	}

	view := BuildReport(result)
	if view.Nervousness != 40 || view.Confidence != 70 || view.Clarity != 80 {
		t.Errorf("scores = %v/%v/%v", view.Nervousness, view.Confidence, view.Clarity)
	}
	if !reflect.DeepEqual(view.Issues, result.DetectedIssues) {
		t.Errorf("Issues = %v", view.Issues)
	}
	if view.ImprovedScript != "A better script." {
		t.Errorf("ImprovedScript = %q", view.ImprovedScript)
	}
	if view.Warning != "Running in basic mode" {
		t.Errorf("Warning = %q", view.Warning)
	}
}

func TestBuildReportIsPure(t *testing.T) {
	result := &models.AnalysisResult{
		DetectedIssues: []string{"Weak phrase"},
		SpeakingTips:   []string{"Tip"},
		ImprovedScript: "Same in, same out.",
	}
	first := BuildReport(result)
	second := BuildReport(result)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("views differ:\n%+v\n%+v", first, second)
	}
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	WriteReport(&buf, ReportView{
		Nervousness:    40,
		Confidence:     70,
		Clarity:        80,
		Issues:         []string{"Filler words: 3 instances"},
		ImprovedScript: "A better script.",
		Tips:           []string{"Pause more"},
		Warning:        "Running in basic mode",
	})

	out := buf.String()
	for _, want := range []string{
		"! Running in basic mode",
		"Nervousness",
		"Confidence",
		"Clarity",
		"Filler words: 3 instances",
		"A better script.",
		"Pause more",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
