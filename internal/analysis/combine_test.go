package analysis

import (
	"fmt"
	"reflect"
	"testing"

	"speechcoach/models"
)

func TestCombineRuleOnly(t *testing.T) {
	rule := RuleResult{
		NervousnessScore: 40,
		ConfidenceScore:  70,
		ClarityScore:     80,
		DetectedIssues:   []string{"Contains 2 filler words"},
	}

	result := Combine(rule, nil, nil)

	if result.NervousnessScore != 40 || result.ConfidenceScore != 70 || result.ClarityScore != 80 {
		t.Errorf("scores = %v/%v/%v, want rule scores unchanged",
			result.NervousnessScore, result.ConfidenceScore, result.ClarityScore)
	}
	if result.ImprovedScript != ImprovedScriptSentinel {
		t.Errorf("ImprovedScript = %q, want sentinel", result.ImprovedScript)
	}
	if !reflect.DeepEqual(result.SpeakingTips, DefaultSpeakingTips) {
		t.Errorf("SpeakingTips = %v, want the five defaults", result.SpeakingTips)
	}
	if !reflect.DeepEqual(result.DetectedIssues, rule.DetectedIssues) {
		t.Errorf("DetectedIssues = %v, want rule issues", result.DetectedIssues)
	}
}

func TestCombineWithModel(t *testing.T) {
	rule := RuleResult{NervousnessScore: 50, ConfidenceScore: 80, ClarityScore: 100}
	model := &models.ScriptAnalysis{
		NervousnessScore: 30,
		ConfidenceScore:  90,
		ClarityScore:     50,
		ImprovedScript:   "Better version.",
		SpeakingTips:     []string{"Tip one", "Tip two"},
	}

	result := Combine(rule, model, nil)

	// 0.4 rule + 0.6 model.
	if result.NervousnessScore != 38 {
		t.Errorf("NervousnessScore = %v, want 38", result.NervousnessScore)
	}
	if result.ConfidenceScore != 86 {
		t.Errorf("ConfidenceScore = %v, want 86", result.ConfidenceScore)
	}
	if result.ClarityScore != 70 {
		t.Errorf("ClarityScore = %v, want 70", result.ClarityScore)
	}
	if result.ImprovedScript != "Better version." {
		t.Errorf("ImprovedScript = %q", result.ImprovedScript)
	}
	want := []string{"Tip one", "Tip two", DefaultSpeakingTips[0], DefaultSpeakingTips[1], DefaultSpeakingTips[2]}
	if !reflect.DeepEqual(result.SpeakingTips, want) {
		t.Errorf("SpeakingTips = %v, want %v", result.SpeakingTips, want)
	}
}

func TestCombineIssueMergeDedupesAndCaps(t *testing.T) {
	var ruleIssues, modelIssues []string
	for i := 0; i < 5; i++ {
		ruleIssues = append(ruleIssues, fmt.Sprintf("rule issue %d", i))
	}
	modelIssues = append(modelIssues, "rule issue 0") // duplicate
	for i := 0; i < 5; i++ {
		modelIssues = append(modelIssues, fmt.Sprintf("model issue %d", i))
	}

	result := Combine(
		RuleResult{DetectedIssues: ruleIssues},
		&models.ScriptAnalysis{DetectedIssues: modelIssues},
		nil,
	)

	if len(result.DetectedIssues) != maxIssues {
		t.Fatalf("len(DetectedIssues) = %d, want %d", len(result.DetectedIssues), maxIssues)
	}
	if result.DetectedIssues[0] != "rule issue 0" {
		t.Errorf("DetectedIssues[0] = %q, want rule issues first", result.DetectedIssues[0])
	}
	seen := map[string]int{}
	for _, issue := range result.DetectedIssues {
		seen[issue]++
	}
	if seen["rule issue 0"] != 1 {
		t.Errorf("duplicate issue appears %d times, want 1", seen["rule issue 0"])
	}
}

func TestCombineBlendsVoiceScores(t *testing.T) {
	confidence := 50.0
	voice := &models.VoiceMetrics{
		VoiceNervousnessScore: 60,
		VoiceConfidenceScore:  &confidence,
		VoiceInsights:         []string{"You're speaking quite fast - try slowing down"},
	}

	result := Combine(RuleResult{NervousnessScore: 20, ConfidenceScore: 80, ClarityScore: 90}, nil, voice)

	// 0.7 text + 0.3 voice.
	if result.NervousnessScore != 32 {
		t.Errorf("NervousnessScore = %v, want 32", result.NervousnessScore)
	}
	if result.ConfidenceScore != 71 {
		t.Errorf("ConfidenceScore = %v, want 71", result.ConfidenceScore)
	}
	if result.ClarityScore != 90 {
		t.Errorf("ClarityScore = %v, want 90 (clarity never blends)", result.ClarityScore)
	}
	if !result.HasVoiceAnalysis {
		t.Error("HasVoiceAnalysis = false, want true")
	}
	last := result.DetectedIssues[len(result.DetectedIssues)-1]
	if last != voice.VoiceInsights[0] {
		t.Errorf("voice insight not appended, issues = %v", result.DetectedIssues)
	}
}

func TestCombineBlendStaysInRange(t *testing.T) {
	for a := 0.0; a <= 100; a += 10 {
		for b := 0.0; b <= 100; b += 10 {
			voice := &models.VoiceMetrics{VoiceNervousnessScore: b}
			result := Combine(RuleResult{NervousnessScore: a, ConfidenceScore: 50, ClarityScore: 50}, nil, voice)
			if result.NervousnessScore < 0 || result.NervousnessScore > 100 {
				t.Fatalf("blend(%v, %v) = %v, out of [0,100]", a, b, result.NervousnessScore)
			}
		}
	}
}

func TestPadTipsTruncates(t *testing.T) {
	tips := []string{"1", "2", "3", "4", "5", "6", "7"}
	result := Combine(RuleResult{}, &models.ScriptAnalysis{SpeakingTips: tips}, nil)
	if len(result.SpeakingTips) != 5 {
		t.Errorf("len(SpeakingTips) = %d, want 5", len(result.SpeakingTips))
	}
}
