package member

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	mw "github.com/rizaldyc/simm-backend/pkg/middleware"
	"github.com/rizaldyc/simm-backend/pkg/response"
)

var validate = validator.New()

// Handler handles HTTP requests for member operations
type Handler struct {
	service *Service
}

// NewHandler creates a new member handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for member endpoints. The participants listing
// backs the public self-service attendance form; everything else requires
// a logged-in admin or group leader.
func (h *Handler) Routes(auth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/participants", h.ListParticipants)

	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}

// List handles GET /members
// @Summary      List members
// @Description  List members visible to the acting role (group leaders see only their group)
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.APIResponse{data=[]model.Member}
// @Router       /members [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := mw.GetUser(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	response.JSON(w, http.StatusOK, h.service.List(r.Context(), actor))
}

// ListParticipants handles GET /members/participants
// @Summary      List active members
// @Description  Active members across all groups, for the self-service attendance form
// @Tags         members
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]model.Member}
// @Router       /members/participants [get]
func (h *Handler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.service.ListActive(r.Context()))
}

// Create handles POST /members
// @Summary      Register a member
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateMemberRequest true "Member data"
// @Success      201 {object} response.APIResponse{data=model.Member}
// @Failure      400 {object} response.APIResponse
// @Router       /members [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := mw.GetUser(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	m, err := h.service.Create(r.Context(), actor, &req)
	if err != nil {
		response.InternalError(w, "Failed to create member")
		return
	}

	response.JSON(w, http.StatusCreated, m)
}

// Update handles PUT /members/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := mw.GetUser(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req UpdateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	m, err := h.service.Update(r.Context(), actor, chi.URLParam(r, "id"), &req)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		if errors.Is(err, ErrWrongGroup) {
			response.Forbidden(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update member")
		return
	}

	response.JSON(w, http.StatusOK, m)
}

// Delete handles DELETE /members/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := mw.GetUser(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		if errors.Is(err, ErrWrongGroup) {
			response.Forbidden(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete member")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Member deleted successfully"})
}
