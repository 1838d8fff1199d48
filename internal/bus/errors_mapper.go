package bus

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapRemoteError turns a non-2xx response into an *Error with the same
// status. The message is taken from a JSON {"message": ...} body when
// present, else from the raw body.
func mapRemoteError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	message := strings.TrimSpace(string(resp.Body()))

	var reply struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(resp.Body(), &reply) == nil && reply.Message != "" {
		message = reply.Message
	}
	if message == "" {
		message = http.StatusText(status)
	}

	if status == http.StatusNotFound {
		return &Error{Status: status, Err: fmt.Errorf("%w: %s", ErrNoMatchingAction, message)}
	}
	return &Error{Status: status, Err: fmt.Errorf("%w: %s", ErrRemoteAction, message)}
}
