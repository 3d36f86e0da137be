package handlers

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"speechcoach/internal/voice"
	"speechcoach/models"
	"speechcoach/utils"
)

// TranscribeRequest is the body of POST /transcribe. Audio is a base64 data
// URI as produced by browser and CLI recorders.
type TranscribeRequest struct {
	Audio string `json:"audio" validate:"required"`
}

// TranscribeAudio handles POST /transcribe: decodes the payload, asks
// Whisper for the transcription and derives voice metrics. Voice-metric
// failure degrades to a transcription-only response; transcription failure
// is a hard error.
func (h *ApplicationHandler) TranscribeAudio(c *fiber.Ctx) error {
	var req TranscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse request JSON")
	}
	if req.Audio == "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "No audio data provided")
	}
	if err := h.validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest,
			strings.Join(utils.FormatValidationErrors(err), "; "))
	}

	payload, err := decodeAudioDataURI(req.Audio)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid audio data")
	}

	if !h.AI.Enabled() {
		return utils.RespondWithError(c, fiber.StatusServiceUnavailable,
			"Speech-to-text service unavailable. Please type your script manually.")
	}

	transcription, err := h.AI.Transcribe(c.Context(), payload, "recording.webm")
	if err != nil {
		h.Logger.WithError(err).Error("Transcription failed")
		return utils.RespondWithError(c, fiber.StatusBadGateway, "Transcription failed")
	}

	return c.JSON(models.TranscribeResponse{
		Transcription: transcription,
		VoiceMetrics:  voice.Derive(payload, time.Now()),
	})
}

// decodeAudioDataURI accepts either a full data URI or bare base64.
func decodeAudioDataURI(data string) ([]byte, error) {
	if idx := strings.IndexByte(data, ','); idx >= 0 {
		data = data[idx+1:]
	}
	payload, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("decode audio payload: %w", err)
	}
	return payload, nil
}
