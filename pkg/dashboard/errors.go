package dashboard

import (
	"errors"
	"net/http"

	"github.com/hajar-aswad/Learnzone/pkg/apiclient"
	"github.com/hajar-aswad/Learnzone/pkg/validator"
)

var (
	ErrNoStatistics = errors.New("dashboard.no_statistics")
	ErrNoSession    = errors.New("dashboard.no_session")

	// errAbsent marks a read that yielded no result; it is never cached.
	errAbsent = errors.New("dashboard.absent")
)

func retryable(err error) bool {
	return !errors.Is(err, errAbsent) && !validator.IsValidationError(err) &&
		!apiclient.IsStatus(err, http.StatusUnauthorized)
}

// reported reports whether err was already shown to the user by the
// pipeline or the api client.
func reported(err error) bool {
	switch {
	case err == nil:
		return false
	case apiclient.IsStatus(err, http.StatusUnauthorized):
		return false
	case apiclient.IsPipelineError(err), validator.IsValidationError(err):
		return true
	}
	return false
}
