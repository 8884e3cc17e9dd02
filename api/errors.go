package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	clienterrors "github.com/sellerhq/seller-console/internal/errors"
)

// APIError is a non-2xx response from the remote API with the most useful
// message the body carried.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// Is maps well-known status codes onto the client sentinel errors so call
// sites can use errors.Is without inspecting status codes.
func (e *APIError) Is(target error) bool {
	switch target {
	case clienterrors.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case clienterrors.ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case clienterrors.ErrBadRequest:
		return e.StatusCode == http.StatusBadRequest
	}
	return false
}

// errorBody mirrors the API's error envelope. Different endpoints populate
// different fields; the extraction order matches what the server actually
// sends: message, then error, then the first validation entry.
type errorBody struct {
	Message string `json:"message"`
	Err     string `json:"error"`
	Errors  []struct {
		Msg string `json:"msg"`
	} `json:"errors"`
}

func decodeAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: "an error occurred"}

	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return apiErr
	}
	switch {
	case body.Message != "":
		apiErr.Message = body.Message
	case body.Err != "":
		apiErr.Message = body.Err
	case len(body.Errors) > 0 && body.Errors[0].Msg != "":
		apiErr.Message = body.Errors[0].Msg
	}
	return apiErr
}

func serverDownError(cause error) error {
	return fmt.Errorf("%w: %v", clienterrors.ErrServerDown, cause)
}
