package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"speechcoach/internal/analysis"
	"speechcoach/models"
	"speechcoach/utils"
)

// AnalyzeRequest is the body of POST /analyze.
type AnalyzeRequest struct {
	Script string `json:"script" validate:"required"`
}

// Tips returned alongside the degraded-mode warning when no model is
// configured.
var fallbackSpeakingTips = []string{
	"Practice your script out loud at least 3 times",
	"Record yourself and identify filler words",
	"Use natural pauses instead of 'um' and 'uh'",
	"Maintain eye contact with your audience",
	"Speak slowly - nervousness makes us speed up",
}

const apiKeyWarningMessage = "Using rule-based analysis only. Check your GROQ_API_KEY configuration."

// AnalyzeScript handles POST /analyze: rule-based analysis always, model
// analysis when configured, combined 0.4/0.6 and persisted to history.
func (h *ApplicationHandler) AnalyzeScript(c *fiber.Ctx) error {
	var req AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse request JSON")
	}
	script := strings.TrimSpace(req.Script)
	if script == "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Please enter a script to analyze")
	}
	if err := h.validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest,
			strings.Join(utils.FormatValidationErrors(err), "; "))
	}

	ruleResult := analysis.Evaluate(script)

	var modelResult *models.ScriptAnalysis
	if h.AI.Enabled() {
		var err error
		modelResult, err = h.AI.AnalyzeScript(c.Context(), script)
		if err != nil {
			h.Logger.WithError(err).Warn("Model analysis failed, falling back to rule-based result")
			modelResult = nil
		}
	}

	result := analysis.Combine(ruleResult, modelResult, nil)
	if modelResult == nil {
		result.APIKeyWarning = true
		result.WarningMessage = apiKeyWarningMessage
		result.SpeakingTips = fallbackSpeakingTips
		if result.ImprovedScript == "" || result.ImprovedScript == analysis.ImprovedScriptSentinel {
			result.ImprovedScript = script
		}
	}

	item := models.HistoryItem{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Script:    script,
		Scores: models.Scores{
			Nervousness: result.NervousnessScore,
			Confidence:  result.ConfidenceScore,
			Clarity:     result.ClarityScore,
		},
		Issues:         result.DetectedIssues,
		ImprovedScript: result.ImprovedScript,
		SpeakingTips:   result.SpeakingTips,
	}
	if err := h.Store.Append(c.Context(), item); err != nil {
		// The analysis itself succeeded; return it without an ID rather
		// than failing the whole request.
		h.Logger.WithError(err).Error("Failed to persist analysis to history")
	} else {
		result.AnalysisID = item.ID
	}

	return c.JSON(result)
}
