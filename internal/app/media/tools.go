package media

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	apperrors "media2text/internal/app/errors"
)

const (
	ffmpegBinary  = "ffmpeg"
	ffprobeBinary = "ffprobe"

	// DefaultProbeTimeout bounds read-only ffprobe calls.
	DefaultProbeTimeout = 30 * time.Second
	// DefaultTranscodeTimeout bounds extraction and compression runs.
	DefaultTranscodeTimeout = 10 * time.Minute
)

// CheckTools verifies ffmpeg and ffprobe are reachable on PATH.
func CheckTools() error {
	for _, bin := range []string{ffmpegBinary, ffprobeBinary} {
		if _, err := exec.LookPath(bin); err != nil {
			return apperrors.Wrapf(apperrors.ErrToolNotFound, "%s", bin)
		}
	}
	return nil
}

// runTool executes an external binary under a bounded context,
// returning stdout and captured stderr. A missing binary is reported
// as ErrToolNotFound so callers can distinguish it from a failed run.
func runTool(ctx context.Context, timeout time.Duration, name string, args ...string) (stdout []byte, stderr string, err error) {
	if _, lookErr := exec.LookPath(name); lookErr != nil {
		return nil, "", apperrors.Wrapf(apperrors.ErrToolNotFound, "%s", name)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)

	var stderrBuf bytes.Buffer
	cmd.Stderr = &stderrBuf

	out, err := cmd.Output()
	return out, stderrBuf.String(), err
}
