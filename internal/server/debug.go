package server

import (
	"encoding/json"
	"net/http"

	"crawl-server/internal/engine"
	"crawl-server/internal/network"
)

// DebugHandler предоставляет доступ к внутреннему состоянию живых партий
type DebugHandler struct {
	Registry *network.Registry
}

func NewDebugHandler(r *network.Registry) *DebugHandler {
	return &DebugHandler{Registry: r}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/sessions", h.handleListSessions)
	mux.HandleFunc("/debug/map", h.handleDumpMap)
}

// /debug/sessions - список живых партий
func (h *DebugHandler) handleListSessions(w http.ResponseWriter, r *http.Request) {
	type SessionSummary struct {
		ID     string `json:"id"`
		Player string `json:"player"`
		State  string `json:"state"`
		Turn   int    `json:"turn"`
		Score  int    `json:"score"`
		Seed   int64  `json:"seed"`
	}

	var summary []SessionSummary
	h.Registry.Each(func(s *engine.Session) {
		summary = append(summary, SessionSummary{
			ID:     s.ID,
			Player: s.Game.Player.Name,
			State:  s.State().String(),
			Turn:   s.Game.Turn,
			Score:  s.Game.Score,
			Seed:   s.Seed,
		})
	})

	writeJSON(w, summary)
}

// /debug/map?session=ID - полный снимок партии, включая непосещенные
// комнаты и скрытых монстров
func (h *DebugHandler) handleDumpMap(w http.ResponseWriter, r *http.Request) {
	session := h.Registry.Get(r.URL.Query().Get("session"))
	if session == nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	writeJSON(w, session.Snapshot())
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug_client.html)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	// Пустой список отдаем как [], а не null
	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
