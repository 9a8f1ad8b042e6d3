package media

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "media2text/internal/app/errors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     Kind
		wantErr  bool
	}{
		{name: "mp3_is_audio", filename: "episode.mp3", want: KindAudio},
		{name: "wav_is_audio", filename: "take1.wav", want: KindAudio},
		{name: "m4a_is_audio", filename: "memo.m4a", want: KindAudio},
		{name: "mpga_is_audio", filename: "old.mpga", want: KindAudio},
		{name: "flac_is_audio", filename: "master.flac", want: KindAudio},
		{name: "ogg_is_audio", filename: "clip.ogg", want: KindAudio},
		{name: "aac_is_audio", filename: "clip.aac", want: KindAudio},
		{name: "mpeg_is_audio", filename: "radio.mpeg", want: KindAudio},
		{name: "mp4_is_video", filename: "talk.mp4", want: KindVideo},
		{name: "mov_is_video", filename: "screen.mov", want: KindVideo},
		{name: "mkv_is_video", filename: "lecture.mkv", want: KindVideo},
		{name: "avi_is_video", filename: "ancient.avi", want: KindVideo},
		{name: "flv_is_video", filename: "stream.flv", want: KindVideo},
		{name: "wmv_is_video", filename: "windows.wmv", want: KindVideo},
		{name: "webm_is_video", filename: "browser.webm", want: KindVideo},
		{name: "uppercase_extension", filename: "SHOUTY.MP3", want: KindAudio},
		{name: "full_path", filename: "/tmp/some/dir/talk.mp4", want: KindVideo},
		{name: "text_file_rejected", filename: "notes.txt", wantErr: true},
		{name: "no_extension_rejected", filename: "mystery", wantErr: true},
		{name: "empty_rejected", filename: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := Classify(tt.filename)
			if tt.wantErr {
				assert.True(t, errors.Is(err, apperrors.ErrUnsupportedFormat))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("a.mp3"))
	assert.True(t, IsSupported("a.webm"))
	assert.False(t, IsSupported("a.pdf"))
}

func TestSupportedExtensionsCoversBothKinds(t *testing.T) {
	exts := SupportedExtensions()
	assert.Contains(t, exts, ".mp3")
	assert.Contains(t, exts, ".mp4")
	assert.Len(t, exts, len(audioExtensions)+len(videoExtensions))
}
