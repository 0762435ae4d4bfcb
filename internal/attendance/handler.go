package attendance

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

// Handler handles HTTP requests for attendance operations
type Handler struct {
	service *Service
}

// NewHandler creates a new attendance handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for attendance endpoints. Submission is public
// (self-service form); listing and corrections require a login.
func (h *Handler) Routes(auth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Submit)

	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Get("/", h.List)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}

// Submit handles POST /attendance
// @Summary      Submit attendance
// @Description  Self-service attendance for today; rejects a second submission for the same member, date and activity
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        request body SubmitAttendanceRequest true "Submission"
// @Success      201 {object} response.APIResponse{data=model.Attendance}
// @Failure      400 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /attendance [post]
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	record, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrDuplicateSubmission) {
			response.Conflict(w, "Sistem menolak: presensi hari ini sudah tercatat.")
			return
		}
		response.InternalError(w, "Failed to submit attendance")
		return
	}

	response.JSON(w, http.StatusCreated, record)
}

// List handles GET /attendance
// @Summary      List attendance records
// @Description  Records visible to the acting role, optionally filtered by date (YYYY-MM-DD) and activityType
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        date query string false "Calendar date filter"
// @Param        activityType query string false "Activity name filter"
// @Success      200 {object} response.APIResponse{data=[]model.Attendance}
// @Router       /attendance [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := mw.GetUser(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	date := r.URL.Query().Get("date")
	activityType := r.URL.Query().Get("activityType")
	response.JSON(w, http.StatusOK, h.service.List(r.Context(), actor, date, activityType))
}

// Update handles PUT /attendance/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	record, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		if errors.Is(err, ErrAttendanceNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update attendance")
		return
	}

	response.JSON(w, http.StatusOK, record)
}

// Delete handles DELETE /attendance/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, ErrAttendanceNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete attendance")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Attendance record deleted successfully"})
}
