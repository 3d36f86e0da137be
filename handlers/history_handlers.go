package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"speechcoach/storage"
	"speechcoach/utils"
)

// GetAnalysis handles GET /history/:id.
func (h *ApplicationHandler) GetAnalysis(c *fiber.Ctx) error {
	id := c.Params("id")

	item, err := h.Store.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return utils.RespondWithError(c, fiber.StatusNotFound, "Analysis not found")
		}
		h.Logger.WithError(err).WithField("analysis_id", id).Error("Failed to load analysis")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not load analysis")
	}

	return c.JSON(item)
}
