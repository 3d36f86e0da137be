package coach

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"sync"
)

// RecorderState is the explicit capture state machine. Transitions are
// guarded: Start is only legal from Idle and Stop only from Recording.
type RecorderState int

const (
	StateIdle RecorderState = iota
	StateRecording
	StateFinalizing
)

func (s RecorderState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateFinalizing:
		return "finalizing"
	default:
		return "unknown"
	}
}

var (
	// ErrNotIdle is returned by Start while a capture is in progress.
	ErrNotIdle = errors.New("recorder: capture already in progress")
	// ErrNotRecording is returned by Stop when nothing is being captured.
	ErrNotRecording = errors.New("recorder: no capture in progress")
)

// CaptureSource opens an audio stream from a capture device. Closing the
// returned stream releases the device.
type CaptureSource interface {
	Start(ctx context.Context) (io.ReadCloser, error)
}

const captureChunkSize = 4096

// Recorder owns one capture session: it buffers chunks while recording and
// concatenates them into a single blob on stop. The underlying stream is
// released exactly once, regardless of what happens to the blob afterwards.
type Recorder struct {
	source   CaptureSource
	session  *Session
	notifier Notifier

	mu       sync.Mutex
	state    RecorderState
	stream   io.ReadCloser
	chunks   [][]byte
	released bool
	done     chan struct{}
}

func NewRecorder(source CaptureSource, session *Session, notifier Notifier) *Recorder {
	return &Recorder{source: source, session: session, notifier: notifier}
}

func (r *Recorder) State() RecorderState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Start begins a new capture cycle. The session is reset first so voice
// metrics from an earlier recording can never blend into this cycle's
// analysis. A source failure (no device, permission denied) surfaces as an
// error notification and leaves the recorder Idle.
func (r *Recorder) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.state != StateIdle {
		r.mu.Unlock()
		return ErrNotIdle
	}
	r.mu.Unlock()

	r.session.Reset()

	stream, err := r.source.Start(ctx)
	if err != nil {
		r.notifier.Error("Could not access the microphone: " + err.Error())
		return err
	}

	r.mu.Lock()
	r.state = StateRecording
	r.stream = stream
	r.chunks = nil
	r.released = false
	r.done = make(chan struct{})
	r.mu.Unlock()

	go r.capture(stream)
	return nil
}

func (r *Recorder) capture(stream io.Reader) {
	buf := make([]byte, captureChunkSize)
	for {
		n, err := stream.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			r.mu.Lock()
			r.chunks = append(r.chunks, chunk)
			r.mu.Unlock()
		}
		if err != nil {
			break
		}
	}
	close(r.done)
}

// Stop finalizes the capture and returns the recorded blob. The capture
// device is released before the blob is handed to anyone, so a later
// transcription failure cannot leave the microphone open.
func (r *Recorder) Stop() ([]byte, error) {
	r.mu.Lock()
	if r.state != StateRecording {
		r.mu.Unlock()
		return nil, ErrNotRecording
	}
	r.state = StateFinalizing
	done := r.done
	r.mu.Unlock()

	r.release()
	<-done

	r.mu.Lock()
	defer r.mu.Unlock()
	blob := bytes.Join(r.chunks, nil)
	r.chunks = nil
	r.state = StateIdle
	return blob, nil
}

// release closes the capture stream at most once.
func (r *Recorder) release() {
	r.mu.Lock()
	stream := r.stream
	already := r.released
	r.released = true
	r.mu.Unlock()

	if already || stream == nil {
		return
	}
	_ = stream.Close()
}

// EncodeDataURI wraps a finalized blob in the base64 data URI format the
// transcription endpoint expects.
func EncodeDataURI(blob []byte, mimeType string) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(blob)
}
