package httpx

import (
	"encoding/json"
	"log"
	"net/http"
)

// Verbose controls whether internal error detail is echoed to callers.
// Enabled for APP_ENV=development; production callers get a generic
// message while the full error goes to the server log.
var Verbose bool

type Message struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, Message{Message: message})
}

func InternalError(r *http.Request, w http.ResponseWriter, err error) {
	log.Printf("internal error: request_id=%s method=%s path=%s error=%v",
		RequestIDFrom(r), r.Method, r.URL.Path, err)

	message := "An unexpected error occurred"
	if Verbose {
		message = err.Error()
	}
	Error(w, http.StatusInternalServerError, message)
}
