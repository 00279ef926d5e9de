package util

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// errorEnvelope : тело любой ошибки API.
// Details заполняется только для 500, чтобы не терять сообщение провайдера
type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
	Details string `json:"details,omitempty"`
}

func LogError(message string, err error) error {
	log.Printf("%s: %v", message, err)
	return fmt.Errorf("%s: %w", message, err)
}

func HandleError(w http.ResponseWriter, message string, statusCode int) {
	writeErrorEnvelope(w, errorEnvelope{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    statusCode,
	})
}

// HandleServerError : 500 с исходным текстом ошибки в details для диагностики
func HandleServerError(w http.ResponseWriter, message string, err error) {
	envelope := errorEnvelope{
		Error:   http.StatusText(http.StatusInternalServerError),
		Message: message,
		Code:    http.StatusInternalServerError,
	}
	if err != nil {
		envelope.Details = err.Error()
	}
	writeErrorEnvelope(w, envelope)
}

func writeErrorEnvelope(w http.ResponseWriter, envelope errorEnvelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(envelope.Code)
	json.NewEncoder(w).Encode(envelope)
}
