package handlers

import (
	"encoding/json"
	"net/http"
)

// envelope is the uniform success body shared by every operation.
type envelope struct {
	Message string      `json:"message"`
	Status  bool        `json:"status"`
	Data    interface{} `json:"data,omitempty"`
}

func respond(w http.ResponseWriter, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(envelope{Message: message, Status: true, Data: data})
}
