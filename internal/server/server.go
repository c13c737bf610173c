// Package server exposes the engine over HTTP for the browser UI and ops
// tooling. Transitions map to POSTs; the full state comes back on every
// mutating call so clients never track diffs.
package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tfs2006/affiliate-simulator/internal/game"
	"github.com/tfs2006/affiliate-simulator/internal/save"
	"github.com/tfs2006/affiliate-simulator/internal/sim"
	"github.com/tfs2006/affiliate-simulator/internal/telemetry"
)

// Server wires one engine and one save store to the HTTP surface.
type Server struct {
	engine  *game.Engine
	saves   save.Store
	events  telemetry.Repository
	content sim.Content
}

func New(engine *game.Engine, saves save.Store, events telemetry.Repository, content sim.Content) *Server {
	return &Server{engine: engine, saves: saves, events: events, content: content}
}

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Get("/catalog", s.handleCatalog)
		r.Post("/actions/{id}", s.handleAction)
		r.Post("/day", s.handleDay)
		r.Post("/wheel", s.handleWheel)
		r.Post("/shop/{id}", s.handleBuy)
		r.Post("/reset", s.handleReset)
		r.Put("/settings/autoday", s.handleAutoDay)

		r.Get("/slots", s.handleSlotList)
		r.Put("/slots/{slot}", s.handleSlotSave)
		r.Post("/slots/{slot}/load", s.handleSlotLoad)
		r.Delete("/slots/{slot}", s.handleSlotDelete)

		r.Get("/telemetry", s.handleTelemetry)
	})

	return r
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.State())
}

// handleCatalog returns the static content lists the UI renders: actions with
// costs and help text, shop items, wheel labels.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	type actionDoc struct {
		ID    string  `json:"id"`
		Label string  `json:"label"`
		Help  string  `json:"help"`
		Cost  float64 `json:"cost"`
	}
	type itemDoc struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Desc string `json:"desc"`
		Cost int    `json:"cost"`
	}
	actions := make([]actionDoc, 0, len(s.content.Actions))
	for _, a := range s.content.Actions {
		actions = append(actions, actionDoc{ID: a.ID, Label: a.Label, Help: a.Help, Cost: a.Cost})
	}
	items := make([]itemDoc, 0, len(s.content.Shop))
	for _, it := range s.content.Shop {
		items = append(items, itemDoc{ID: it.ID, Name: it.Name, Desc: it.Desc, Cost: it.Cost})
	}
	wheel := make([]string, 0, len(s.content.Wheel))
	for _, sl := range s.content.Wheel {
		wheel = append(wheel, sl.Label)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"actions": actions,
		"shop":    items,
		"wheel":   wheel,
	})
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	state, err := s.engine.DoAction(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	actionsApplied.WithLabelValues(id).Inc()
	observeState(state)
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleDay(w http.ResponseWriter, r *http.Request) {
	res, err := s.engine.EndDay()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	daysAdvanced.Inc()
	observeState(res.State)

	body := map[string]interface{}{
		"state":            res.State,
		"new_achievements": res.NewAchievements,
		"bill_log":         res.BillLog,
	}
	if res.Event != nil {
		body["event"] = map[string]string{
			"id":    res.Event.ID,
			"title": res.Event.Title,
			"desc":  res.Event.Desc,
		}
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleWheel(w http.ResponseWriter, r *http.Request) {
	state, label, err := s.engine.Spin()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	wheelSpins.Inc()
	observeState(state)
	writeJSON(w, http.StatusOK, map[string]interface{}{"state": state, "result": label})
}

func (s *Server) handleBuy(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	state, err := s.engine.Buy(id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	itemsPurchased.WithLabelValues(id).Inc()
	observeState(state)
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	state := s.engine.Reset()
	observeState(state)
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleAutoDay(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Enabled bool `json:"enabled"`
		MS      int  `json:"ms"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, s.engine.SetAutoDay(req.Enabled, req.MS))
}

func (s *Server) handleSlotList(w http.ResponseWriter, r *http.Request) {
	infos, err := s.saves.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, infos)
}

func (s *Server) handleSlotSave(w http.ResponseWriter, r *http.Request) {
	slot := chi.URLParam(r, "slot")
	snap, err := s.saves.Save(slot, s.engine.State())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleSlotLoad(w http.ResponseWriter, r *http.Request) {
	slot := chi.URLParam(r, "slot")
	snap, err := s.saves.Load(slot)
	if err != nil {
		if errors.Is(err, save.ErrNotFound) {
			writeError(w, http.StatusNotFound, "slot not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.engine.Replace(snap.State)
	observeState(snap.State)
	writeJSON(w, http.StatusOK, snap.State)
}

func (s *Server) handleSlotDelete(w http.ResponseWriter, r *http.Request) {
	slot := chi.URLParam(r, "slot")
	if err := s.saves.Delete(slot); err != nil {
		if errors.Is(err, save.ErrNotFound) {
			writeError(w, http.StatusNotFound, "slot not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleTelemetry(w http.ResponseWriter, r *http.Request) {
	since := time.Time{}
	if q := r.URL.Query().Get("since"); q != "" {
		t, err := time.Parse(time.RFC3339, q)
		if err != nil {
			writeError(w, http.StatusBadRequest, "since must be RFC3339")
			return
		}
		since = t
	}
	events, err := s.events.GetEvents(since, nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// writeDomainError maps engine precondition failures to HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrUnknownAction), errors.Is(err, game.ErrUnknownItem):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, game.ErrNotEnoughEnergy), errors.Is(err, game.ErrNotEnoughCash),
		errors.Is(err, game.ErrAlreadyOwned), errors.Is(err, game.ErrWheelCooldown):
		writeError(w, http.StatusConflict, err.Error())
	default:
		log.Printf("engine error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}
