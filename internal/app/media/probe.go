package media

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	apperrors "media2text/internal/app/errors"
	"media2text/internal/app/model"
)

// ProbeDuration asks ffprobe for the stream duration in seconds.
// The probe is read-only and never mutates the input file.
func ProbeDuration(ctx context.Context, filePath string) (float64, error) {
	out, stderr, err := runTool(ctx, DefaultProbeTimeout, ffprobeBinary,
		"-i", filePath,
		"-show_entries", "format=duration",
		"-v", "quiet",
		"-of", "json",
	)
	if err != nil {
		if errors.Is(err, apperrors.ErrToolNotFound) {
			return 0, err
		}
		return 0, apperrors.Wrapf(apperrors.ErrProbeFailed, "ffprobe %q: %v, stderr: %s", filePath, err, stderr)
	}

	return ParseDuration(out)
}

// ParseDuration extracts the duration from raw ffprobe JSON output.
// Exported so tests run without a real ffprobe binary.
func ParseDuration(data []byte) (float64, error) {
	var probe model.FFProbeOutput
	if err := json.Unmarshal(data, &probe); err != nil {
		return 0, apperrors.Wrapf(apperrors.ErrProbeFailed, "parse ffprobe JSON: %v", err)
	}

	raw := strings.TrimSpace(probe.Format.Duration)
	if raw == "" {
		return 0, apperrors.Wrapf(apperrors.ErrProbeFailed, "ffprobe output has no duration field")
	}

	duration, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, apperrors.Wrapf(apperrors.ErrProbeFailed, "parse duration %q: %v", raw, err)
	}
	return duration, nil
}
