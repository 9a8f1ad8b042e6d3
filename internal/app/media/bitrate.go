package media

import (
	apperrors "media2text/internal/app/errors"
)

// kibiRatio converts kibibyte-based target sizing into a
// kilobit-accurate rate so the encoded result lands just under the
// byte budget. The encoder parity depends on this exact constant.
const kibiRatio = 1.048576

// PlanBitrate computes the constant bitrate in kbps that fits
// targetSizeKB kilobytes of audio into durationSeconds of playback.
func PlanBitrate(targetSizeKB float64, durationSeconds float64) (int, error) {
	if durationSeconds <= 0 {
		return 0, apperrors.Wrapf(apperrors.ErrInvalidDuration, "got %f seconds", durationSeconds)
	}
	return int((targetSizeKB * 8) / (kibiRatio * durationSeconds)), nil
}
