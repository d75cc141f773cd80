package server

import (
	"net/http"

	"github.com/projecthub/portfolio-engine/internal/generation"
	"github.com/projecthub/portfolio-engine/internal/rendering"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
// Provider failures map to 502 because the fault lies upstream, not in the
// caller's request or this service.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *rendering.MissingInputError:
		return http.StatusBadRequest
	case *generation.ProviderUnavailableError, *generation.InvalidOutputError:
		return http.StatusBadGateway
	case *generation.UnconfiguredError, *rendering.EngineError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
