package apimodel

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
)

type ErrorMessage struct {
	ErrStatusCode int    `json:"status_code"`
	ErrMessage    string `json:"message"`
}

func (e *ErrorMessage) StatusCode() int {
	return e.ErrStatusCode
}

func (e *ErrorMessage) Error() string {
	if e.ErrMessage != "" {
		return strconv.Itoa(e.ErrStatusCode) + ":" + e.ErrMessage
	}
	return strconv.Itoa(e.ErrStatusCode)
}

// SendError writes the message as json, with a default text for the status
func (e ErrorMessage) SendError(w http.ResponseWriter) {
	if e.ErrMessage == "" {
		switch e.ErrStatusCode {
		case http.StatusOK:
			e.ErrMessage = "Ok"
		case http.StatusNotFound:
			e.ErrMessage = "Page not found"
		case http.StatusMethodNotAllowed:
			e.ErrMessage = "Method not allowed"
		case http.StatusForbidden:
			e.ErrMessage = "Forbidden"
		case http.StatusServiceUnavailable:
			e.ErrMessage = "Service unavailable"
		case http.StatusBadRequest:
			e.ErrMessage = "Bad request"
		default:
			e.ErrMessage = "Internal error"
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.ErrStatusCode)
	if err := json.NewEncoder(w).Encode(e); err != nil {
		logrus.Warnf("Unable to encode error message: %v", err)
	}
}

var WrongParametersErrorMessage = ErrorMessage{
	ErrStatusCode: http.StatusBadRequest,
	ErrMessage:    "unable to parse parameters",
}

var SimulationOnlyErrorMessage = ErrorMessage{
	ErrStatusCode: http.StatusForbidden,
	ErrMessage:    "only available in simulation mode",
}
