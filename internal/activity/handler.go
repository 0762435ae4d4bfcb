package activity

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/rizaldyc/simm-backend/pkg/response"
)

var validate = validator.New()

// Handler handles HTTP requests for activity operations
type Handler struct {
	service *Service
}

// NewHandler creates a new activity handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for activity endpoints. Listing is public so
// the self-service form can offer activity choices.
func (h *Handler) Routes(auth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)

	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}

// List handles GET /activities
// @Summary      List activities
// @Tags         activities
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]model.Activity}
// @Router       /activities [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.service.List(r.Context()))
}

// Create handles POST /activities
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	a, err := h.service.Create(r.Context(), &req)
	if err != nil {
		response.InternalError(w, "Failed to create activity")
		return
	}

	response.JSON(w, http.StatusCreated, a)
}

// Update handles PUT /activities/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	a, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		if errors.Is(err, ErrActivityNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update activity")
		return
	}

	response.JSON(w, http.StatusOK, a)
}

// Delete handles DELETE /activities/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, ErrActivityNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete activity")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Activity deleted successfully"})
}
