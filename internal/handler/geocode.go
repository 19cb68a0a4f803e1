package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"famorg/internal/geocode"
)

// GeocodeHandler resolves an event's free-text location for the map
// view. "No match" and "lookup failed" are distinct outcomes with their
// own messages; the external map links are returned either way so the
// client always has a fallback.
type GeocodeHandler struct {
	resolver *geocode.Client
	logger   *slog.Logger
}

func NewGeocodeHandler(c *geocode.Client, logger *slog.Logger) *GeocodeHandler {
	return &GeocodeHandler{resolver: c, logger: logger}
}

type geocodeResponse struct {
	Lat         float64          `json:"lat,omitempty"`
	Lon         float64          `json:"lon,omitempty"`
	DisplayName string           `json:"displayName,omitempty"`
	Links       geocode.MapLinks `json:"links"`
	Error       string           `json:"error,omitempty"`
}

// Resolve handles GET /api/geocode?location=. The request context rides
// along into the lookup, so a client that disconnects cancels it.
func (h *GeocodeHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	if location == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "location is required"})
		return
	}

	links := geocode.LinksFor(location)

	result, err := h.resolver.Resolve(r.Context(), location)
	if errors.Is(err, geocode.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, geocodeResponse{
			Links: links,
			Error: "Location not found. Try a more specific address.",
		})
		return
	}
	if err != nil {
		h.logger.Warn("geocode lookup", "location", location, "error", err)
		writeJSON(w, http.StatusBadGateway, geocodeResponse{
			Links: links,
			Error: "Failed to load map. Please try again.",
		})
		return
	}

	writeJSON(w, http.StatusOK, geocodeResponse{
		Lat:         result.Lat,
		Lon:         result.Lon,
		DisplayName: result.DisplayName,
		Links:       links,
	})
}
