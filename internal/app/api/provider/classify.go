package provider

import (
	"net/http"

	apperrors "media2text/internal/app/errors"
)

// ClassifyHTTPStatus maps a provider HTTP status to one of the four
// transcription error classes so callers can show distinct
// diagnostics for auth, quota, network and format failures.
func ClassifyHTTPStatus(status int, cause error) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return apperrors.Wrap(apperrors.ErrProviderAuth, cause)
	case status == http.StatusTooManyRequests:
		return apperrors.Wrap(apperrors.ErrProviderRateLimit, cause)
	case status == http.StatusBadRequest ||
		status == http.StatusRequestEntityTooLarge ||
		status == http.StatusUnsupportedMediaType ||
		status == http.StatusUnprocessableEntity:
		return apperrors.Wrap(apperrors.ErrProviderFormat, cause)
	default:
		return apperrors.Wrap(apperrors.ErrProviderNetwork, cause)
	}
}
