package server

import (
	"encoding/json"
	"net/http"
	_ "net/http/pprof" // Profiling

	"crawl-server/internal/engine"
	"crawl-server/internal/infrastructure/storage"
	"crawl-server/internal/network"
	"crawl-server/internal/version"
	"crawl-server/pkg/dungeon"
	"crawl-server/pkg/logger"
)

// Server - HTTP/WebSocket оболочка движка. Одно подключение — одна партия.
type Server struct {
	Config   engine.Config
	GenCfg   dungeon.Config
	Registry *network.Registry
	Replays  *storage.ReplayService
}

func New(cfg engine.Config, genCfg dungeon.Config, registry *network.Registry, replays *storage.ReplayService) *Server {
	return &Server{
		Config:   cfg,
		GenCfg:   genCfg,
		Registry: registry,
		Replays:  replays,
	}
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	mux := http.DefaultServeMux

	// Регистрируем роуты
	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))

	debugHandler := NewDebugHandler(s.Registry)
	debugHandler.RegisterRoutes(mux)

	logger.Log.Infof("⚔️  Dungeon Crawl Server running on :%s", s.Config.Port)
	return http.ListenAndServe(":"+s.Config.Port, mux)
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("Upgrade error:", err)
		return
	}

	client := NewClient(s, conn)

	// Запускаем пампы
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(version.Info())
}
