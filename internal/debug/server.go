// internal/debug/server.go
package debug

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/pprof"
	"sync/atomic"
	"time"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
)

const (
	URISession = "/debug/session"
	URIHealth  = "/debug/health"
	URIPprof   = "/debug/pprof"
)

// Snapshot — неизменяемый снимок сессии после тика.
// HTTP-горутина читает только его и не трогает живое состояние игры.
type Snapshot struct {
	Seed        int64   `json:"seed"`
	Tick        uint64  `json:"tick"`
	GameTime    float64 `json:"gameTime"`
	Score       int     `json:"score"`
	Health      int     `json:"health"`
	MazeSize    int     `json:"mazeSize"`
	SizeClass   string  `json:"sizeClass"`
	IsBoss      bool    `json:"isBoss"`
	Player      [2]int  `json:"player"` // строка, столбец
	Projectiles int     `json:"projectiles"`
	Popups      int     `json:"popups"`
	Inventory   int     `json:"divineEyesInventory"`
	DivineEyes  string  `json:"divineEyesState"`
	GameOver    bool    `json:"gameOver"`
}

// Server — отладочный HTTP: pprof и текущий снимок сессии
type Server struct {
	addr       string
	router     *way.Router
	httpServer *http.Server
	snapshot   atomic.Pointer[Snapshot]
}

func NewServer(addr string) *Server {
	s := &Server{addr: addr}
	s.routes()
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URISession, s.handleSession)
	s.router.HandleFunc("GET", URIHealth, s.handleHealth)
	s.router.HandleFunc("GET", URIPprof, pprof.Index)
	s.router.HandleFunc("GET", URIPprof+"/cmdline", pprof.Cmdline)
	s.router.HandleFunc("GET", URIPprof+"/profile", pprof.Profile)
	s.router.HandleFunc("GET", URIPprof+"/symbol", pprof.Symbol)
	s.router.HandleFunc("GET", URIPprof+"/trace", pprof.Trace)
	s.router.HandleFunc("GET", URIPprof+"/...", pprof.Index)
}

// Handler возвращает роутер (нужен тестам)
func (s *Server) Handler() http.Handler {
	return s.router
}

// Publish сохраняет снимок; вызывается из игрового цикла
func (s *Server) Publish(snap Snapshot) {
	s.snapshot.Store(&snap)
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot.Load()
	if snap == nil {
		http.Error(w, "no session yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		log.WithError(err).Warn("failed to encode session snapshot")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// ListenAndServe блокирует до остановки сервера.
// После Shutdown (даже раннего) возвращает nil.
func (s *Server) ListenAndServe() error {
	log.WithField("addr", s.addr).Info("debug server listening")
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown останавливает сервер; безопасен из другой горутины и до старта
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
