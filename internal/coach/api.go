package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"speechcoach/models"
)

// APIError is a non-2xx gateway reply. Message carries the server-supplied
// error text when the body had one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("gateway %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("gateway %d", e.StatusCode)
}

// APIClient is the HTTP client for the SpeechCoach gateway.
type APIClient struct {
	baseURL string
	httpc   *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpc:   &http.Client{Timeout: 60 * time.Second},
	}
}

// Transcribe uploads a base64 audio data URI and returns the transcription
// and optional voice metrics.
func (a *APIClient) Transcribe(ctx context.Context, audioDataURI string) (*models.TranscribeResponse, error) {
	var out models.TranscribeResponse
	err := a.postJSON(ctx, "/transcribe", map[string]string{"audio": audioDataURI}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Analyze submits a script for analysis.
func (a *APIClient) Analyze(ctx context.Context, script string) (*models.AnalysisResult, error) {
	var out models.AnalysisResult
	err := a.postJSON(ctx, "/analyze", map[string]string{"script": script}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// History fetches one stored analysis by ID.
func (a *APIClient) History(ctx context.Context, id string) (*models.HistoryItem, error) {
	var out models.HistoryItem
	if err := a.getJSON(ctx, "/history/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Progress fetches the aggregate score history for charting.
func (a *APIClient) Progress(ctx context.Context) (*models.ProgressSeries, error) {
	var out models.ProgressSeries
	if err := a.getJSON(ctx, "/progress", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *APIClient) postJSON(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return a.do(req, out)
}

func (a *APIClient) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+path, nil)
	if err != nil {
		return err
	}
	return a.do(req, out)
}

func (a *APIClient) do(req *http.Request, out interface{}) error {
	resp, err := a.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var serverErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &serverErr) == nil {
			apiErr.Message = serverErr.Error
		}
		return apiErr
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}
	return nil
}
