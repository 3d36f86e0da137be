package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"speechcoach/models"
	"speechcoach/storage"
)

// AIClientInterface defines the operations handlers expect from the model
// provider client. Decoupled from the concrete Groq client for testing.
type AIClientInterface interface {
	Enabled() bool
	AnalyzeScript(ctx context.Context, script string) (*models.ScriptAnalysis, error)
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}

// ApplicationHandler holds shared dependencies for handlers.
type ApplicationHandler struct {
	AI       AIClientInterface
	Logger   *logrus.Logger
	Store    storage.HistoryStore
	validate *validator.Validate
}

// NewApplicationHandler creates an ApplicationHandler with the given
// dependencies.
func NewApplicationHandler(ai AIClientInterface, logger *logrus.Logger, store storage.HistoryStore) *ApplicationHandler {
	return &ApplicationHandler{
		AI:       ai,
		Logger:   logger,
		Store:    store,
		validate: validator.New(),
	}
}
