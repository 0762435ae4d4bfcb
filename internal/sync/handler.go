package sync

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/rizaldyc/simm-backend/pkg/response"
)

var validate = validator.New()

// UpdateEndpointRequest carries the new cloud endpoint URL
type UpdateEndpointRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// Handler handles HTTP requests for sync operations
type Handler struct {
	ctrl *Controller
}

// NewHandler creates a new sync handler
func NewHandler(ctrl *Controller) *Handler {
	return &Handler{ctrl: ctrl}
}

// Routes returns the router for sync endpoints. Status is public (the
// home page shows the sync badge); manual sync needs a login and endpoint
// changes are admin-only.
func (h *Handler) Routes(auth func(http.Handler) http.Handler, admin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/status", h.Status)

	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Post("/now", h.SyncNow)
		r.With(admin).Put("/endpoint", h.UpdateEndpoint)
	})

	return r
}

// Status handles GET /sync/status
// @Summary      Sync status
// @Description  Current synchronization state: initialized, isSyncing, lastSync, errorSync
// @Tags         sync
// @Produce      json
// @Success      200 {object} response.APIResponse{data=Status}
// @Router       /sync/status [get]
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.ctrl.Status())
}

// SyncNow handles POST /sync/now
// @Summary      Push now
// @Description  Push the current snapshot immediately, bypassing the debounce timer
// @Tags         sync
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Failure      502 {object} response.APIResponse
// @Router       /sync/now [post]
func (h *Handler) SyncNow(w http.ResponseWriter, r *http.Request) {
	if err := h.ctrl.ManualSync(r.Context()); err != nil {
		switch {
		case errors.Is(err, ErrNotInitialized):
			response.Conflict(w, "Sync is still initializing, try again shortly")
		case errors.Is(err, ErrNoEndpoint):
			response.BadRequest(w, "No cloud endpoint configured")
		default:
			response.BadGateway(w, "Gagal sinkron ke Spreadsheet.")
		}
		return
	}

	response.JSON(w, http.StatusOK, h.ctrl.Status())
}

// UpdateEndpoint handles PUT /sync/endpoint
// @Summary      Change the cloud endpoint
// @Description  Persists the URL and re-arms the controller: pushes stay blocked until a fresh fetch against the new endpoint settles
// @Tags         sync
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateEndpointRequest true "New endpoint"
// @Success      200 {object} response.APIResponse{data=Status}
// @Failure      400 {object} response.APIResponse
// @Router       /sync/endpoint [put]
func (h *Handler) UpdateEndpoint(w http.ResponseWriter, r *http.Request) {
	var req UpdateEndpointRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, "A valid url is required")
		return
	}

	h.ctrl.SetEndpoint(r.Context(), req.URL)
	response.JSON(w, http.StatusOK, h.ctrl.Status())
}
