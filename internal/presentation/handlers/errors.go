package handlers

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"repo-directory/internal/domain/repo"
)

// ErrorResponse represents an error returned by the JSON API
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// errorStatus maps a service error to an HTTP status
func errorStatus(err error) int {
	var de *repo.DomainError
	if errors.As(err, &de) {
		switch de.Code {
		case repo.CodeInvalidRepositoryData:
			return http.StatusBadRequest
		case repo.CodeRepositoryNotFound:
			return http.StatusNotFound
		case repo.CodeFetchFailed, repo.CodeUpstreamUnavailable:
			return http.StatusBadGateway
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

// newErrorResponse builds the JSON error body for err
func newErrorResponse(err error) ErrorResponse {
	var de *repo.DomainError
	if errors.As(err, &de) {
		resp := ErrorResponse{Error: de.Code, Message: de.Message}
		if de.Err != nil && de.Code != repo.CodeFetchFailed {
			resp.Details = de.Err.Error()
		}
		return resp
	}
	return ErrorResponse{Error: "internal_error", Message: err.Error()}
}
