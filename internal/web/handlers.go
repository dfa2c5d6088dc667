package web

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jaminalder/tictactoe-time-travel/internal/app"
	"github.com/jaminalder/tictactoe-time-travel/internal/domain"
)

type handlers struct {
	log *slog.Logger
	svc *app.Service
	tpl *templates
}

// renderGame renders the game fragment; it doubles as the service's
// broadcast renderer.
func (h *handlers) renderGame(s domain.Session) []byte {
	b, err := renderTemplate(h.tpl.frag, "", newGameData(s))
	if err != nil {
		h.log.Error("failed to render game", "game_id", s.ID, "error", err)
		return nil
	}
	return b
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	b, err := renderTemplate(h.tpl.index, "base", nil)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	writeHTML(w, http.StatusOK, b)
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	gs, err := h.svc.CreateGame(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, "/game/"+gs.ID, http.StatusSeeOther)
}

func (h *handlers) view(w http.ResponseWriter, r *http.Request) {
	gs, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.gameError(w, r, err)
		return
	}
	data := newGameData(*gs)
	b, err := renderTemplate(h.tpl.game, "base", data)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	writeHTML(w, http.StatusOK, b)
}

// formInt reads an integer form field. Missing or malformed values come
// back as -1, which every game action ignores.
func formInt(r *http.Request, key string) int {
	_ = r.ParseForm()
	v, err := strconv.Atoi(r.Form.Get(key))
	if err != nil {
		return -1
	}
	return v
}

func (h *handlers) play(w http.ResponseWriter, r *http.Request) {
	gs, err := h.svc.Play(r.Context(), chi.URLParam(r, "id"), formInt(r, "cell"))
	h.respond(w, r, gs, err)
}

func (h *handlers) jump(w http.ResponseWriter, r *http.Request) {
	gs, err := h.svc.Jump(r.Context(), chi.URLParam(r, "id"), formInt(r, "move"))
	h.respond(w, r, gs, err)
}

func (h *handlers) order(w http.ResponseWriter, r *http.Request) {
	gs, err := h.svc.ToggleOrder(r.Context(), chi.URLParam(r, "id"))
	h.respond(w, r, gs, err)
}

// respond answers an action with the game fragment for htmx requests and a
// redirect back to the game page for plain form posts.
func (h *handlers) respond(w http.ResponseWriter, r *http.Request, gs *domain.Session, err error) {
	if err != nil {
		h.gameError(w, r, err)
		return
	}
	if r.Header.Get("HX-Request") != "true" {
		http.Redirect(w, r, "/game/"+gs.ID, http.StatusSeeOther)
		return
	}
	b, err := renderTemplate(h.tpl.frag, "", newGameData(*gs))
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	writeHTML(w, http.StatusOK, b)
}

func (h *handlers) gameError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, app.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	h.serverError(w, r, err)
}

func (h *handlers) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (h *handlers) ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		h.log.Error("failed to write ping response", "error", err)
	}
}

var heartbeatInterval = 15 * time.Second

func (h *handlers) events(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.svc.Get(r.Context(), id); err != nil {
		h.gameError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")
	// In tests or non-EventSource requests, just acknowledge headers and return
	if r.Header.Get("Accept") != "text/event-stream" {
		w.WriteHeader(http.StatusOK)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		w.WriteHeader(http.StatusOK)
		return
	}
	ctx := r.Context()
	ch, unsub := h.svc.Subscribe(ctx, id)
	defer unsub()
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()
	// Initial flush of headers
	flusher.Flush()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = io.WriteString(w, ": ping\n\n")
			flusher.Flush()
		case b, ok := <-ch:
			if !ok {
				return
			}
			writeEvent(w, "game", b)
			flusher.Flush()
		}
	}
}

// writeEvent frames data as one server-sent event; every line of data gets
// its own data field.
func writeEvent(w io.Writer, event string, data []byte) {
	_, _ = fmt.Fprintf(w, "event: %s\n", event)
	for _, line := range bytes.Split(bytes.TrimRight(data, "\n"), []byte("\n")) {
		_, _ = fmt.Fprintf(w, "data: %s\n", line)
	}
	_, _ = io.WriteString(w, "\n")
}
