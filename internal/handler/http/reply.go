package http

import (
	"net/http"

	"github.com/MKhiriev/go-action-web/internal/logger"
	"github.com/MKhiriev/go-action-web/internal/utils"
)

// errorReply is the JSON body of every error response.
type errorReply struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

// replyError writes err with the status derived from it. The message is
// err.Error() as is.
func (h *Handler) replyError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, werr := utils.WriteJSON(w, errorReply{
		StatusCode: status,
		Error:      http.StatusText(status),
		Message:    err.Error(),
	}, status); werr != nil {
		log.Err(werr).Msg("error writing error reply")
	}
}

func (h *Handler) replyResult(w http.ResponseWriter, r *http.Request, result any) {
	if _, err := utils.WriteBody(w, result, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing reply")
	}
}
