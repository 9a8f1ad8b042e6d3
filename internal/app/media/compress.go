package media

import (
	"context"
	"errors"
	"fmt"

	apperrors "media2text/internal/app/errors"
)

// Compress re-encodes the audio file at a fixed constant bitrate,
// forcing an mp3 container. The new file is the caller's to delete.
func Compress(ctx context.Context, audioPath, outputPath string, bitrateKbps int) error {
	_, stderr, err := runTool(ctx, DefaultTranscodeTimeout, ffmpegBinary,
		"-i", audioPath,
		"-vn",
		"-codec:a", "libmp3lame",
		"-b:a", fmt.Sprintf("%dk", bitrateKbps),
		"-y", outputPath,
	)
	if err != nil {
		if errors.Is(err, apperrors.ErrToolNotFound) {
			return err
		}
		return apperrors.Wrapf(apperrors.ErrCompressionFailed, "ffmpeg: %v, stderr: %s", err, stderr)
	}
	return nil
}
