package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Message is the uniform body for non-entity responses: {"message": "..."}.
type Message struct {
	Message string `json:"message"`
}

func RespondJSON(w http.ResponseWriter, logger *slog.Logger, status int, payload any) {
	// Handle nil payload
	if payload == nil {
		w.WriteHeader(status)
		return
	}

	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error encoding response to JSON", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

func RespondMessage(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	RespondJSON(w, logger, status, Message{Message: message})
}

// RespondMessages renders a list of messages, one object per violation.
func RespondMessages(w http.ResponseWriter, logger *slog.Logger, status int, messages []string) {
	body := make([]Message, len(messages))
	for i, m := range messages {
		body[i] = Message{Message: m}
	}
	RespondJSON(w, logger, status, body)
}
