package session

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/inamate/sketchboard/internal/typeid"
)

type Handler struct {
	hub            *Hub
	issuer         *Issuer
	originPatterns []string
}

// NewHandler serves the session routes. allowedOrigins are full origins such as
// "http://localhost:5173"; websocket upgrades accept their host parts.
func NewHandler(hub *Hub, issuer *Issuer, allowedOrigins []string) *Handler {
	return &Handler{hub: hub, issuer: issuer, originPatterns: originPatterns(allowedOrigins)}
}

type createRequest struct {
	Sample bool `json:"sample"`
}

type createResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
	}

	sess := h.hub.Create(req.Sample)
	token, err := h.issuer.Issue(sess.ID)
	if err != nil {
		slog.Error("issue token failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	writeJSON(w, http.StatusCreated, createResponse{ID: sess.ID, Token: token})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	if err := typeid.Validate(sessionID, typeid.PrefixSession); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid session id"})
		return
	}

	token, ok := bearerToken(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing authorization header"})
		return
	}
	if err := h.issuer.Validate(token, sessionID); err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
		return
	}

	sess, ok := h.hub.Get(sessionID)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}

	writeJSON(w, http.StatusOK, sess.Snapshot())
}

// ServeWS attaches a websocket client to a session. The resume token travels in
// the "token" query parameter since browsers cannot set headers on upgrades.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	if err := typeid.Validate(sessionID, typeid.PrefixSession); err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}

	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}
	if err := h.issuer.Validate(token, sessionID); err != nil {
		slog.Debug("rejected token", "session", sessionID, "error", err)
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	sess, ok := h.hub.Get(sessionID)
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.originPatterns,
	})
	if err != nil {
		slog.Error("websocket accept", "error", err)
		return
	}

	client := NewClient(h.hub, sess, conn, uuid.New().String())
	h.hub.Register(client)

	ctx := r.Context()
	go client.WritePump(ctx)
	client.ReadPump(ctx)
}

func bearerToken(r *http.Request) (string, bool) {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func originPatterns(origins []string) []string {
	patterns := make([]string, 0, len(origins))
	for _, o := range origins {
		if u, err := url.Parse(o); err == nil && u.Host != "" {
			patterns = append(patterns, u.Host)
			continue
		}
		patterns = append(patterns, o)
	}
	return patterns
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
