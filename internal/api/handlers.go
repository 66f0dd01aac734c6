package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fadedpez/basicstrategy/internal/types"
	"github.com/fadedpez/basicstrategy/pkg/services/statistics"
	"github.com/fadedpez/basicstrategy/pkg/services/trainer"
	"github.com/fadedpez/basicstrategy/pkg/strategy"
)

type chartResponse struct {
	Type  strategy.TableType `json:"type"`
	Rows  []string           `json:"rows"`
	Cols  []string           `json:"cols"`
	Cells [][]string         `json:"cells"`
}

type createSessionRequest struct {
	PlayerID string `json:"player_id"`
}

type answerRequest struct {
	Action strategy.Action `json:"action"`
}

type answerResponse struct {
	Correct     bool                 `json:"correct"`
	Guess       strategy.Action      `json:"guess"`
	Expected    strategy.Action      `json:"expected"`
	ChartAction strategy.ChartAction `json:"chart_action"`
	TableIndex  *strategy.TableIndex `json:"table_index,omitempty"`
	Description string               `json:"description,omitempty"`
	Message     string               `json:"message"`
	Recorded    bool                 `json:"recorded"`
	Session     trainer.Snapshot     `json:"session"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "sessions": s.drills.Len()})
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	player, dealer := q.Get("player"), q.Get("dealer")
	if player == "" || dealer == "" {
		s.writeError(w, types.NewGameError(types.ErrInvalidArgument, "player and dealer are required"))
		return
	}

	advice, err := strategy.Advise(player, dealer, s.rules)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, advice)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	tt, err := strategy.ParseTableType(chi.URLParam(r, "type"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	table, err := strategy.Chart(tt)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, chartResponse{
		Type:  table.Type,
		Rows:  table.RowLabels,
		Cols:  table.ColLabels,
		Cells: table.Abbrevs(),
	})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, types.WrapError(types.ErrInvalidArgument, "request body must be JSON", err))
		return
	}
	if req.PlayerID == "" {
		s.writeError(w, types.NewGameError(types.ErrInvalidArgument, "player_id is required"))
		return
	}

	session := s.drills.Create("", req.PlayerID)
	writeJSON(w, http.StatusCreated, session.Snapshot())
}

func (s *Server) session(w http.ResponseWriter, r *http.Request) (*trainer.Session, bool) {
	session, err := s.drills.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return nil, false
	}
	return session, true
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, session.Snapshot())
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}
	s.drills.Remove(session.ID())
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeal(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}
	snap, err := session.Deal(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Unknown action names fail inside UnmarshalText
		if types.IsGameError(err, types.ErrInvalidAction) {
			s.writeError(w, err)
			return
		}
		s.writeError(w, types.WrapError(types.ErrInvalidArgument, "request body must be JSON with an action", err))
		return
	}

	outcome, err := session.Answer(r.Context(), req.Action)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := answerResponse{
		Correct:     outcome.Correct,
		Guess:       outcome.Guess,
		Expected:    outcome.Expected,
		ChartAction: outcome.ChartAction,
		TableIndex:  outcome.TableIndex,
		Message:     outcome.Message,
		Recorded:    outcome.Persisted,
		Session:     outcome.Snapshot,
	}
	if outcome.TableIndex != nil {
		resp.Description = outcome.TableIndex.Describe()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSessionSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.stats.GetSessionSummary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleAccuracy(w http.ResponseWriter, r *http.Request) {
	tables, err := s.stats.GetTableAccuracy(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if tables == nil {
		tables = []*statistics.TableAccuracy{}
	}
	writeJSON(w, http.StatusOK, tables)
}

func (s *Server) handleWeakest(w http.ResponseWriter, r *http.Request) {
	limit := statistics.DefaultWeakestLimit
	if text := r.URL.Query().Get("limit"); text != "" {
		n, err := strconv.Atoi(text)
		if err != nil || n < 1 {
			s.writeError(w, types.NewGameError(types.ErrInvalidArgument, "limit must be a positive number"))
			return
		}
		limit = n
	}

	cells, err := s.stats.GetWeakestCells(r.Context(), chi.URLParam(r, "id"), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if cells == nil {
		cells = []*statistics.WeakCell{}
	}
	writeJSON(w, http.StatusOK, cells)
}
