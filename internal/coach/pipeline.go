package coach

import (
	"context"
	"errors"
	"strings"
	"time"

	"speechcoach/models"
)

// ErrEmptyScript is returned when analysis is requested with nothing to
// analyze. No network request is issued in that case.
var ErrEmptyScript = errors.New("coach: script is empty")

const defaultWarningBanner = "Analysis ran in rule-based mode. Configure an API key for AI-powered feedback."

// Pipeline drives the transcribe → analyze → blend flow against the gateway,
// reporting outcomes through the Notifier.
type Pipeline struct {
	api      *APIClient
	session  *Session
	notifier Notifier
}

func NewPipeline(api *APIClient, session *Session, notifier Notifier) *Pipeline {
	return &Pipeline{api: api, session: session, notifier: notifier}
}

// Transcribe uploads a finalized recording. A returned transcription becomes
// the session script and returned voice metrics are stored for blending;
// either may be absent without blocking the other. On failure the session is
// left as-is so the user can type the script by hand.
func (p *Pipeline) Transcribe(ctx context.Context, blob []byte) (string, error) {
	resp, err := p.api.Transcribe(ctx, EncodeDataURI(blob, "audio/webm"))
	if err != nil {
		p.notifier.Error("Transcription failed. You can type your script instead.")
		return "", err
	}

	if resp.VoiceMetrics != nil {
		p.session.SetVoiceMetrics(resp.VoiceMetrics)
	}
	if resp.Transcription != "" {
		p.session.SetScript(resp.Transcription)
		p.notifier.Success("Transcription complete")
	}
	return resp.Transcription, nil
}

// Analyze submits a script and returns the final result, with session voice
// metrics blended in when the script came from a recording. Empty scripts
// are rejected before any network call.
func (p *Pipeline) Analyze(ctx context.Context, script string) (*models.AnalysisResult, error) {
	script = strings.TrimSpace(script)
	if script == "" {
		p.notifier.Warning("Please enter a script to analyze")
		return nil, ErrEmptyScript
	}

	result, err := p.api.Analyze(ctx, script)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			p.notifier.Error(apiErr.Message)
		} else {
			p.notifier.Error("Analysis failed. Please try again.")
		}
		return nil, err
	}

	if vm := p.session.VoiceMetrics(); vm != nil {
		BlendVoice(result, vm)
	}

	if result.APIKeyWarning {
		banner := result.WarningMessage
		if banner == "" {
			banner = defaultWarningBanner
		}
		p.notifier.Info(banner)
	}

	return result, nil
}

// LoadHistory fetches a stored analysis. Items recorded without an ID were
// never persisted; selecting one warns instead of fetching. Failures leave
// whatever is currently displayed untouched.
func (p *Pipeline) LoadHistory(ctx context.Context, id string) (*models.HistoryItem, error) {
	if id == "" {
		p.notifier.Warning("This result was not saved and cannot be reloaded")
		return nil, errors.New("coach: history item has no analysis id")
	}

	item, err := p.api.History(ctx, id)
	if err != nil {
		p.notifier.Error("Could not load the selected analysis")
		return nil, err
	}

	p.session.SetScript(item.Script)
	p.notifier.Success("Loaded analysis from " + item.Timestamp.Format(time.RFC1123))
	return item, nil
}

// Progress fetches the aggregate score history.
func (p *Pipeline) Progress(ctx context.Context) (*models.ProgressSeries, error) {
	series, err := p.api.Progress(ctx)
	if err != nil {
		p.notifier.Error("Could not load progress data. Check the gateway and retry.")
		return nil, err
	}
	return series, nil
}
