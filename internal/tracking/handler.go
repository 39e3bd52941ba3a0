// Package tracking serves the open-tracking beacon and relays open events
// to the external analytics webhook.
package tracking

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Vishalchandrakumar07/dummy-Mailer/internal/domain"
	"github.com/Vishalchandrakumar07/dummy-Mailer/internal/pkg/logger"
)

// 1x1 transparent GIF, byte-identical on every response.
var pixelGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00, 0x01, 0x00,
	0xf0, 0x00, 0x00, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x21,
	0xf9, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x2c, 0x00, 0x00,
	0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00, 0x00, 0x02, 0x02,
	0x44, 0x01, 0x00, 0x3b,
}

// EventForwarder relays an open event to the analytics collaborator.
type EventForwarder interface {
	Forward(evt domain.OpenEvent)
}

// Handler answers beacon fetches. Policy: on any parameter-valid request the
// pixel is always served, whether or not the analytics forward succeeds —
// beacon latency stays uniform regardless of the collaborator's health.
//
// The handler is intentionally promiscuous: any syntactically present email
// is accepted without checking it belongs to a known contact. Beacon fetches
// are unauthenticated telemetry, not an access-controlled resource.
type Handler struct {
	forwarder EventForwarder
	dedup     *Deduper // nil when Redis is not configured
}

// NewHandler creates a beacon handler. dedup may be nil.
func NewHandler(forwarder EventForwarder, dedup *Deduper) *Handler {
	return &Handler{forwarder: forwarder, dedup: dedup}
}

// HandleOpen processes GET /api/track-open?email=...
// A missing or blank email is a client error: 400, empty body, no event.
func (h *Handler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	email := domain.NormalizeEmail(r.URL.Query().Get("email"))
	if email == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	evt := domain.OpenEvent{Email: email, ReceivedAt: time.Now().UTC()}
	if h.dedup != nil {
		evt.Unique = h.dedup.FirstOpen(r.Context(), email)
	}
	h.forwarder.Forward(evt)

	logger.Info("open beacon", "email", email, "unique", evt.Unique)
	h.servePixel(w)
}

// HandleHealth reports liveness.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (h *Handler) servePixel(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "image/gif")
	w.Header().Set("Content-Length", strconv.Itoa(len(pixelGIF)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
	w.Write(pixelGIF)
}
