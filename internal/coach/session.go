package coach

import (
	"sync"

	"speechcoach/models"
)

// Session holds the mutable state of one record-and-analyze cycle: the
// working script and the voice metrics produced by the latest transcription.
// Voice metrics are written only by the transcription step and read only by
// the analysis step; Reset at the start of each recording cycle keeps stale
// metrics from bleeding into an unrelated analysis.
type Session struct {
	mu     sync.Mutex
	script string
	voice  *models.VoiceMetrics
}

func NewSession() *Session {
	return &Session{}
}

// Reset clears the per-cycle state. Called whenever a new recording starts.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.script = ""
	s.voice = nil
}

func (s *Session) SetScript(script string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.script = script
}

func (s *Session) Script() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.script
}

func (s *Session) SetVoiceMetrics(vm *models.VoiceMetrics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.voice = vm
}

func (s *Session) VoiceMetrics() *models.VoiceMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.voice
}
