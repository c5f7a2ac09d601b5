package server

import (
	"bytes"
	"encoding/json"
	"image/png"
	"io"
	"net/http"

	"circle-sectors/app"
	"circle-sectors/board"
	"circle-sectors/geometry"
	"circle-sectors/render"
	"circle-sectors/utils"

	"github.com/gorilla/mux"
	"github.com/jbeda/geom"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

// QR_SIZE is the side in pixels of share codes.
const QR_SIZE = 256

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorJSON{Error: err.Error(), Kind: geometry.Kind(err)})
}

// readJSON decodes an optional request body into v. An empty body leaves
// v untouched.
func readJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil && err != io.EOF {
		return errors.Wrap(err, "bad request body")
	}
	return nil
}

func writeImage(w http.ResponseWriter, format string, sc app.Scene, s *Server) {
	var buf bytes.Buffer
	if err := app.Encode(&buf, sc, s.cfg.Layout, format); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", app.ContentType(format))
	w.Write(buf.Bytes())
}

// ---------- stateless figures ----------

func (s *Server) getConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.cfg.Layout)
}

func (s *Server) getSectors(w http.ResponseWriter, r *http.Request) {
	sc, err := app.SceneFor("sectors", mux.Vars(r)["n"], s.cfg.Layout)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, buildSectorLayout(sc.Sectors))
}

func (s *Server) getRearranged(w http.ResponseWriter, r *http.Request) {
	sc, err := app.SceneFor("rearranged", mux.Vars(r)["n"], s.cfg.Layout)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, buildRearranged(sc.Shape))
}

func (s *Server) getRender(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sc, err := app.SceneFor(vars["kind"], vars["n"], s.cfg.Layout)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeImage(w, vars["format"], sc, s)
}

// getShare answers with a QR code pointing at the matching render route.
// The figure is computed first so broken links are never handed out.
func (s *Server) getShare(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if _, err := app.SceneFor(vars["kind"], vars["n"], s.cfg.Layout); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	link := scheme + "://" + r.Host + "/render/" + vars["kind"] + "/" + vars["n"] + "." + vars["format"]
	code, err := qrcode.Encode(link, qrcode.Medium, QR_SIZE)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(code)
}

// ---------- session ----------

func (s *Server) getState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, buildState(s.state, s.scene))
}

func (s *Server) postAction(w http.ResponseWriter, r *http.Request) {
	var req inputRequest
	if err := readJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorJSON{Error: err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	input := s.state.Input
	if req.Input != nil {
		input = *req.Input
	}
	switch mux.Vars(r)["action"] {
	case "count":
		s.state, s.scene = app.ChangeCount(s.state, input, s.cfg.Layout)
	case "draw":
		if !s.state.DrawEnabled {
			writeJSON(w, http.StatusConflict, errorJSON{Error: "draw is disabled until the slice count changes"})
			return
		}
		s.state, s.scene = app.Draw(s.state, input, s.cfg.Layout)
	case "rearrange":
		if !s.state.RearrangeEnabled {
			writeJSON(w, http.StatusConflict, errorJSON{Error: "draw the circle before rearranging"})
			return
		}
		s.state, s.scene = app.Rearrange(s.state, input, s.cfg.Layout)
	}
	writeJSON(w, http.StatusOK, buildState(s.state, s.scene))
}

func (s *Server) getCanvas(w http.ResponseWriter, r *http.Request) {
	format := mux.Vars(r)["format"]

	s.mu.Lock()
	defer s.mu.Unlock()

	if format == app.FORMAT_SVG {
		writeImage(w, format, s.scene, s)
		return
	}
	img := app.Rasterize(s.scene, s.cfg.Layout, s.board.Image())
	w.Header().Set("Content-Type", app.ContentType(format))
	utils.Warn(png.Encode(w, img), "could not encode canvas")
}

// ---------- drawing board ----------

func (s *Server) boardJSON() boardJSON {
	return boardJSON{
		Tool:    s.board.Tool().String(),
		Color:   render.Hex(s.board.Color()),
		Width:   s.board.Width(),
		Drawing: s.board.Drawing(),
	}
}

func (s *Server) getBoard(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.boardJSON())
}

func (s *Server) postPointer(w http.ResponseWriter, r *http.Request) {
	var req pointerRequest
	if err := readJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorJSON{Error: err.Error()})
		return
	}
	p := geom.Coord{X: req.X, Y: req.Y}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.board.InReach(p) {
		writeJSON(w, http.StatusBadRequest, errorJSON{Error: "pointer is outside the board"})
		return
	}

	switch req.Type {
	case "down":
		s.board.PointerDown(p)
	case "move":
		s.board.PointerMove(p)
	case "up":
		s.board.PointerUp(p)
	default:
		writeJSON(w, http.StatusBadRequest, errorJSON{Error: "unknown pointer event " + req.Type})
		return
	}
	writeJSON(w, http.StatusOK, s.boardJSON())
}

func (s *Server) postSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := readJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorJSON{Error: err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Tool != nil {
		tool, err := board.ParseTool(*req.Tool)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorJSON{Error: err.Error()})
			return
		}
		s.board.SetTool(tool)
	}
	if req.Color != nil {
		c, err := board.ParseColor(*req.Color)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorJSON{Error: err.Error()})
			return
		}
		s.board.SetColor(c)
	}
	if req.Width != nil {
		s.board.SetWidth(*req.Width)
	}
	writeJSON(w, http.StatusOK, s.boardJSON())
}

func (s *Server) postClear(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.board.Clear()
	writeJSON(w, http.StatusOK, s.boardJSON())
}

func (s *Server) getBoardImage(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w.Header().Set("Content-Type", "image/png")
	utils.Warn(png.Encode(w, s.board.Image()), "could not encode board")
}
