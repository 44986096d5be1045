package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrUnavailable wraps transport failures: the API could not be reached or
// the request was cancelled before a response arrived.
var ErrUnavailable = errors.New("api unavailable")

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	// Message is the human readable text from the error payload, if any.
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// decodeAPIError reads the error payload. The API reports the message under
// "error" for most endpoints and under "message" for login.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return apiErr
	}

	var payload struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if json.Unmarshal(data, &payload) != nil {
		return apiErr
	}

	var text string
	if len(payload.Error) > 0 && json.Unmarshal(payload.Error, &text) == nil && text != "" {
		apiErr.Message = text
	} else {
		apiErr.Message = payload.Message
	}
	return apiErr
}

// UserMessage returns the message to show for a failed action: the API's own
// message when it sent one, otherwise fallback.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// IsNotFound reports whether err is a 404 answer.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
