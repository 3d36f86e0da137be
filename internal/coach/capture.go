package coach

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

// FFmpegSource captures from an audio input device by running ffmpeg and
// streaming an Opus-in-WebM container from its stdout. Container handling
// stays entirely inside ffmpeg.
type FFmpegSource struct {
	// InputFormat is the ffmpeg input driver, e.g. "pulse" or "alsa".
	InputFormat string
	// Device is the capture device name, e.g. "default".
	Device string
}

func (f *FFmpegSource) Start(ctx context.Context) (io.ReadCloser, error) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return nil, fmt.Errorf("ffmpeg not found: %w", err)
	}

	cmd := exec.CommandContext(ctx,
		"ffmpeg",
		"-hide_banner", "-loglevel", "error",
		"-f", f.InputFormat,
		"-i", f.Device,
		"-c:a", "libopus",
		"-f", "webm",
		"pipe:1",
	)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start capture: %w", err)
	}

	return &captureStream{stdout: stdout, cmd: cmd}, nil
}

// captureStream ties the stream lifetime to the ffmpeg process: Close stops
// the process and reaps it.
type captureStream struct {
	stdout io.ReadCloser
	cmd    *exec.Cmd
}

func (s *captureStream) Read(p []byte) (int, error) {
	return s.stdout.Read(p)
}

func (s *captureStream) Close() error {
	_ = s.stdout.Close()
	if s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	// Wait error is expected after Kill; the point is reaping the process.
	_ = s.cmd.Wait()
	return nil
}
