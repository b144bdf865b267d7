package response

import (
	"encoding/json"
	"net/http"
	"resto/shared/constant"
	"resto/shared/failure"
	"resto/shared/logger"
)

type Error struct {
	Error  *string              `json:"error,omitempty"`
	Fields []failure.FieldError `json:"fields,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends the payload as the response body
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, jsonPayload)
}

// WithError sends a response with an error message and, for validation failures, the offending fields
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	if code == http.StatusInternalServerError {
		errMsg = http.StatusText(http.StatusInternalServerError)
	}

	response(writer, code, Error{Error: &errMsg, Fields: failure.GetFields(err)})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
