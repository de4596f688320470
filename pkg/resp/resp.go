package resp

import (
	"encoding/json"
	"net/http"
)

func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

type errorBody struct {
	Error string `json:"error"`
}

// WriteError renders an error as a JSON body with the given status.
func WriteError(w http.ResponseWriter, status int, err error) {
	WriteJSONResponse(w, status, errorBody{Error: err.Error()})
}
