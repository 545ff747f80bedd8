package utils

import (
	"encoding/json"
	"net/http"
)

// Response envelope: success payloads live under "data", client failures
// carry status "fail", server failures carry status "error".

// WriteJSON writes an arbitrary JSON body with the given status code.
func WriteJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

// WriteData writes a success envelope wrapping the given data payload.
func WriteData(w http.ResponseWriter, code int, data interface{}) {
	WriteJSON(w, code, map[string]interface{}{
		"status": "success",
		"data":   data,
	})
}

// WriteMessage writes a success envelope carrying a message.
func WriteMessage(w http.ResponseWriter, code int, message string) {
	WriteData(w, code, map[string]string{"message": message})
}

// WriteFail writes a client-failure envelope (4xx).
func WriteFail(w http.ResponseWriter, code int, message string) {
	WriteJSON(w, code, map[string]string{
		"status":  "fail",
		"message": message,
	})
}

// WriteError writes a generic server-failure envelope. The underlying error
// goes to the logs, never to the client.
func WriteError(w http.ResponseWriter) {
	WriteJSON(w, http.StatusInternalServerError, map[string]string{
		"status":  "error",
		"message": "Something went very wrong!",
	})
}
