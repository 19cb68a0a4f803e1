package websocket

import (
	"log/slog"
	"net/http"

	ws "github.com/coder/websocket"

	"famorg/internal/auth"
)

// Handler upgrades authenticated connections to WebSocket and joins them
// to their family's room. RequireAuth must run first so the identity is
// on the context.
func Handler(hub *Hub, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		familyID := auth.FamilyID(r.Context())
		if familyID == "" {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		conn, err := ws.Accept(w, r, &ws.AcceptOptions{
			InsecureSkipVerify: true, // same-origin enforcement happens at the auth layer
		})
		if err != nil {
			logger.Warn("websocket accept", "error", err)
			return
		}

		client := NewClient(hub, conn, familyID)
		client.Run(r.Context())
	}
}
