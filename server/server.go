// Package server exposes the circle figures and the interactive session
// over HTTP.
package server

import (
	"io"
	"log"
	"net/http"
	"sync"

	"circle-sectors/app"
	"circle-sectors/board"
	"circle-sectors/config"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// Server holds the one interactive session of the process. HTTP handlers
// run concurrently, so every access to the session goes through mu.
type Server struct {
	cfg    config.Config
	logger io.Writer
	router *mux.Router

	mu    sync.Mutex
	state app.State
	scene app.Scene
	board *board.Board
}

func New(cfg config.Config, logger io.Writer) (*Server, error) {
	b := board.New(int(cfg.Layout.CanvasWidth), int(cfg.Layout.CanvasHeight))
	c, err := board.ParseColor(cfg.Board.Color)
	if err != nil {
		return nil, err
	}
	b.SetColor(c)
	b.SetWidth(cfg.Board.Width)

	s := &Server{
		cfg:    cfg,
		logger: logger,
		router: mux.NewRouter(),
		board:  b,
	}
	s.state, s.scene = app.Init(cfg.InitialCount, cfg.Layout)
	s.routes()
	return s, nil
}

func (s *Server) handle(path string, fn http.HandlerFunc) *mux.Route {
	return s.router.Handle(path, handlers.CombinedLoggingHandler(s.logger, fn))
}

func (s *Server) routes() {
	s.handle("/api/config", s.getConfig).Methods("GET")
	s.handle("/api/sectors/{n}", s.getSectors).Methods("GET")
	s.handle("/api/rearranged/{n}", s.getRearranged).Methods("GET")
	s.handle("/render/{kind:sectors|rearranged}/{n}.{format:svg|png}", s.getRender).Methods("GET")
	s.handle("/share/{kind:sectors|rearranged}/{n}.{format:svg|png}", s.getShare).Methods("GET")

	s.handle("/api/state", s.getState).Methods("GET")
	s.handle("/api/state/{action:count|draw|rearrange}", s.postAction).Methods("POST")
	s.handle("/canvas.{format:svg|png}", s.getCanvas).Methods("GET")

	s.handle("/api/board", s.getBoard).Methods("GET")
	s.handle("/api/board/pointer", s.postPointer).Methods("POST")
	s.handle("/api/board/settings", s.postSettings).Methods("POST")
	s.handle("/api/board/clear", s.postClear).Methods("POST")
	s.handle("/board.png", s.getBoardImage).Methods("GET")
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) ListenAndServe() error {
	log.Println("circle-server listening on " + s.cfg.Addr)
	return http.ListenAndServe(s.cfg.Addr, s.router)
}
