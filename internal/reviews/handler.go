package reviews

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/telemetry"
	"github.com/go-chi/chi/v5"
)

// CacheControl is the cache lifetime advertised on successful responses.
const CacheControl = "public, s-maxage=3600, stale-while-revalidate=86400"

// Handler serves the reviews proxy endpoint.
type Handler struct {
	client Client
	logger apt.Logger
	tlm    *telemetry.HTTP
}

// NewHandler creates a reviews Handler.
func NewHandler(client Client, logger apt.Logger) *Handler {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	if client == nil {
		client = NewNoopClient()
	}
	return &Handler{
		client: client,
		logger: logger,
		tlm:    telemetry.NewHTTP(),
	}
}

// RegisterRoutes registers the reviews routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/api/reviews", h.GetReviews)
}

// GetReviews handles GET /api/reviews?placeId=X.
func (h *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetReviews")
	defer finish()
	log := h.log(r)
	ctx := r.Context()

	placeID := r.URL.Query().Get("placeId")
	if placeID == "" {
		log.Debug("missing placeId parameter")
		apt.RespondError(w, http.StatusBadRequest, "Place ID is required")
		return
	}

	data, err := h.client.Fetch(ctx, placeID)
	if err != nil {
		var statusErr *StatusError
		switch {
		case errors.As(err, &statusErr):
			log.Debug("upstream rejected request", "status", statusErr.Status, "place_id", placeID)
			h.respondStatusError(w, statusErr)
		case errors.Is(err, ErrMissingAPIKey):
			log.Error("reviews proxy misconfigured", "error", err)
			apt.RespondError(w, http.StatusInternalServerError, "Google Places API key not configured")
		default:
			log.Error("cannot fetch reviews", "error", err, "place_id", placeID)
			apt.RespondError(w, http.StatusInternalServerError, "Failed to fetch reviews")
		}
		return
	}

	w.Header().Set("Cache-Control", CacheControl)
	apt.RespondSuccess(w, data)
}

func (h *Handler) respondStatusError(w http.ResponseWriter, statusErr *StatusError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   statusErr.Error(),
		"message": statusErr.Message(),
	})
}

func (h *Handler) log(r *http.Request) apt.Logger {
	return h.logger.With("request_id", r.Context().Value("request_id"))
}
