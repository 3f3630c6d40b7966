package find_first_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	findFirstSlot "github.com/m04kA/SMC-AppointmentService/internal/usecase/find_first_slot"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgInvalidStaffID   = "некорректный ID мастера"
	msgServiceNotFound  = "услуга не найдена"
	msgNotConfigured    = "рабочие часы салона не настроены"
)

// Response HTTP модель ответа
type Response struct {
	Found           bool   `json:"found"`
	Date            string `json:"date,omitempty"`
	StartMinutes    int    `json:"startMinutes,omitempty"`
	StartTime       string `json:"startTime,omitempty"`
	Label           string `json:"label,omitempty"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
}

type Handler struct {
	useCase FindFirstSlotUseCase
	logger  Logger
}

func NewHandler(useCase FindFirstSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceId}/first-available
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /first-available - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var staffID *int64
	if raw := r.URL.Query().Get("staffId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /first-available - Invalid staff ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStaffID)
			return
		}
		staffID = &id
	}

	result, err := h.useCase.Execute(r.Context(), &findFirstSlot.Request{
		ServiceID: serviceID,
		StaffID:   staffID,
	})
	if err != nil {
		switch {
		case errors.Is(err, findFirstSlot.ErrServiceNotFound):
			h.logger.Warn("GET /first-available - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, findFirstSlot.ErrInvalidInput):
			h.logger.Warn("GET /first-available - Invalid input: service_id=%d, error=%v", serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidServiceID)

		case errors.Is(err, findFirstSlot.ErrNotConfigured):
			h.logger.Error("GET /first-available - Business hours are not configured")
			handlers.RespondError(w, http.StatusInternalServerError, msgNotConfigured)

		default:
			h.logger.Error("GET /first-available - Failed: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /first-available - Success: service_id=%d, found=%v", serviceID, result.Found)
	handlers.RespondJSON(w, http.StatusOK, &Response{
		Found:           result.Found,
		Date:            result.Date,
		StartMinutes:    result.StartMinutes,
		StartTime:       result.StartTime,
		Label:           result.Label,
		DurationMinutes: result.DurationMinutes,
	})
}
