package provider

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transcriptionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "m2t_transcriptions_total",
		Help: "Transcription requests by provider and outcome.",
	}, []string{"provider", "status"})

	transcriptionSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "m2t_transcription_duration_seconds",
		Help:    "Wall-clock latency of provider transcription calls.",
		Buckets: prometheus.ExponentialBuckets(0.5, 2, 12),
	}, []string{"provider"})
)

type instrumentedProvider struct {
	inner Provider
}

// Instrument wraps a provider so every call is counted and timed.
func Instrument(p Provider) Provider {
	return &instrumentedProvider{inner: p}
}

func (ip *instrumentedProvider) Name() string {
	return ip.inner.Name()
}

func (ip *instrumentedProvider) Transcribe(ctx context.Context, req Request) (*Response, error) {
	resp, err := ip.inner.Transcribe(ctx, req)
	if err != nil {
		transcriptionsTotal.WithLabelValues(ip.inner.Name(), "error").Inc()
		return nil, err
	}
	transcriptionsTotal.WithLabelValues(ip.inner.Name(), "success").Inc()
	transcriptionSeconds.WithLabelValues(ip.inner.Name()).Observe(resp.Elapsed.Seconds())
	return resp, nil
}
