package model

// FFProbeOutput mirrors the JSON emitted by
// `ffprobe -show_entries format=duration -of json`.
type FFProbeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}
