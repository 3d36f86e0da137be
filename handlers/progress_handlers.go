package handlers

import (
	"github.com/gofiber/fiber/v2"

	"speechcoach/models"
	"speechcoach/utils"
)

// Trend charts show at most the last twenty analyses.
const progressWindow = 20

// GetProgress handles GET /progress: the recent score history as parallel
// series for charting, or an empty flag when no analyses exist yet.
func (h *ApplicationHandler) GetProgress(c *fiber.Ctx) error {
	items, err := h.Store.Recent(c.Context(), progressWindow)
	if err != nil {
		h.Logger.WithError(err).Error("Failed to load progress history")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not load progress data")
	}

	if len(items) == 0 {
		return c.JSON(models.ProgressSeries{
			Empty:   true,
			Message: "No analysis history yet. Complete your first analysis to see progress!",
		})
	}

	series := models.ProgressSeries{
		Dates:       make([]string, 0, len(items)),
		Confidence:  make([]float64, 0, len(items)),
		Clarity:     make([]float64, 0, len(items)),
		Nervousness: make([]float64, 0, len(items)),
	}
	for _, item := range items {
		series.Dates = append(series.Dates, item.Timestamp.Format("Jan 2"))
		series.Confidence = append(series.Confidence, item.Scores.Confidence)
		series.Clarity = append(series.Clarity, item.Scores.Clarity)
		series.Nervousness = append(series.Nervousness, item.Scores.Nervousness)
	}

	return c.JSON(series)
}
