package api

import (
	"encoding/json"
	"net/http"

	"github.com/fadedpez/basicstrategy/internal/logging"
	"github.com/fadedpez/basicstrategy/internal/types"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    types.ErrorCode `json:"code"`
	Message string          `json:"message"`
}

var statusByCode = map[types.ErrorCode]int{
	types.ErrInvalidCard:       http.StatusBadRequest,
	types.ErrInvalidRank:       http.StatusBadRequest,
	types.ErrInvalidSuit:       http.StatusBadRequest,
	types.ErrValueOutOfRange:   http.StatusBadRequest,
	types.ErrBadTableIndex:     http.StatusBadRequest,
	types.ErrUnknownTableType:  http.StatusBadRequest,
	types.ErrBadRow:            http.StatusBadRequest,
	types.ErrBadColumn:         http.StatusBadRequest,
	types.ErrMissingDealerCard: http.StatusBadRequest,
	types.ErrInvalidAction:     http.StatusBadRequest,
	types.ErrInvalidArgument:   http.StatusBadRequest,
	types.ErrSessionNotFound:   http.StatusNotFound,
	types.ErrShoeDone:          http.StatusConflict,
	types.ErrNoHandDealt:       http.StatusConflict,
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// writeError maps a GameError code to a status. Anything else is a 500
// and is logged; its text is not sent to the client.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var gameErr *types.GameError
	if types.As(err, &gameErr) {
		status, ok := statusByCode[gameErr.Code]
		if !ok {
			status = http.StatusInternalServerError
		}
		if status == http.StatusInternalServerError {
			logging.LogError(s.logger, "Request failed", err)
		}
		writeJSON(w, status, errorBody{Error: errorDetail{Code: gameErr.Code, Message: gameErr.Message}})
		return
	}

	logging.LogError(s.logger, "Request failed", err)
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: errorDetail{
		Code:    types.ErrInternalError,
		Message: "internal error",
	}})
}
