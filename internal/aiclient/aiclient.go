// Package aiclient talks to the Groq OpenAI-compatible API for script
// analysis (chat completions) and speech-to-text (Whisper transcriptions).
package aiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"speechcoach/models"
)

const (
	analysisModel = "llama-3.3-70b-versatile"
	whisperModel  = "whisper-large-v3"
)

const systemPrompt = `You are an expert public speaking coach. Analyze the given presentation script and return a JSON object with the following schema exactly:

{
  "nervousness_score": 0-100,
  "confidence_score": 0-100,
  "clarity_score": 0-100,
  "detected_issues": ["issue 1", "issue 2", "issue 3"],
  "improved_script": "rewritten version that sounds confident and clear",
  "speaking_tips": ["tip 1", "tip 2", "tip 3", "tip 4", "tip 5"],
  "personalized_feedback": "specific feedback based on the user's unique speaking patterns"
}

Important: Return ONLY the JSON object, no markdown formatting, no additional text or explanation.`

// Models sometimes wrap the JSON in prose despite the prompt; this pulls out
// the outermost object.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// Client wraps the HTTP calls to the model provider. A Client with an empty
// API key is valid and reports itself as disabled.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
	log     *logrus.Logger
}

// New creates a Client. baseURL may be empty to use the public Groq endpoint.
func New(apiKey, baseURL string, log *logrus.Logger) *Client {
	if baseURL == "" {
		baseURL = "https://api.groq.com/openai/v1"
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpc:   &http.Client{Timeout: 60 * time.Second},
		log:     log,
	}
}

// Enabled reports whether an API key is configured. Callers fall back to
// rule-based analysis when it returns false.
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	TopP        float64       `json:"top_p"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// AnalyzeScript asks the model to rate a presentation script. The response
// content must contain the JSON object described by the system prompt.
func (c *Client) AnalyzeScript(ctx context.Context, script string) (*models.ScriptAnalysis, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("aiclient: no API key configured")
	}

	payload, err := json.Marshal(chatRequest{
		Model: analysisModel,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: "Please analyze this presentation script:\n\n" + script},
		},
		Temperature: 0.3,
		MaxTokens:   2000,
		TopP:        0.9,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.log.WithField("model", analysisModel).Debug("Requesting script analysis")
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("aiclient: chat completion %s: %s", resp.Status, string(body))
	}

	var chat chatResponse
	if err := json.Unmarshal(body, &chat); err != nil {
		return nil, fmt.Errorf("aiclient: decode chat response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("aiclient: chat completion returned no choices")
	}

	analysis, err := parseAnalysis(chat.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	if analysis.ImprovedScript == "" {
		analysis.ImprovedScript = script
	}
	return analysis, nil
}

func parseAnalysis(content string) (*models.ScriptAnalysis, error) {
	var analysis models.ScriptAnalysis
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		match := jsonObjectPattern.FindString(content)
		if match == "" {
			return nil, fmt.Errorf("aiclient: no JSON object in model response")
		}
		if err := json.Unmarshal([]byte(match), &analysis); err != nil {
			return nil, fmt.Errorf("aiclient: parse model response: %w", err)
		}
	}
	return &analysis, nil
}

// Transcribe sends decoded audio bytes to Whisper and returns the plain-text
// transcription.
func (c *Client) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	if !c.Enabled() {
		return "", fmt.Errorf("aiclient: no API key configured")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := fw.Write(audio); err != nil {
		return "", err
	}
	_ = w.WriteField("model", whisperModel)
	_ = w.WriteField("response_format", "text")
	_ = w.WriteField("language", "en")
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/audio/transcriptions", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.log.WithFields(logrus.Fields{"model": whisperModel, "bytes": len(audio)}).Debug("Requesting transcription")
	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("aiclient: transcription %s: %s", resp.Status, string(body))
	}

	return strings.TrimSpace(string(body)), nil
}
