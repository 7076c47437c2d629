package rest

import (
	"encoding/json"
	"net/http"
)

// WriteJSONError sends the failure envelope with the given status.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// RespondWithData sends the success envelope wrapping the payload.
func RespondWithData(w http.ResponseWriter, code int, data interface{}) {
	response, err := json.Marshal(map[string]interface{}{
		"success": true,
		"data":    data,
	})
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// RespondWithMessage sends a success envelope carrying only a message,
// used by deletes and the tracker where there is no entity to return.
func RespondWithMessage(w http.ResponseWriter, code int, message string) {
	response, err := json.Marshal(map[string]interface{}{
		"success": true,
		"message": message,
	})
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
