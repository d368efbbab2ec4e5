package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/abghifareihand/overtime-connect-backend/internal/domain/overtime"
	"github.com/abghifareihand/overtime-connect-backend/internal/handler/http/middleware"
	"github.com/abghifareihand/overtime-connect-backend/internal/handler/http/response"
)

type OvertimeHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetDetails(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListYears(w http.ResponseWriter, r *http.Request)
	Report(w http.ResponseWriter, r *http.Request)
	WeeklyReport(w http.ResponseWriter, r *http.Request)
	MonthlyReport(w http.ResponseWriter, r *http.Request)
	YearlyReport(w http.ResponseWriter, r *http.Request)
	DateRangeReport(w http.ResponseWriter, r *http.Request)
}

type OvertimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService) OvertimeHandler {
	return &OvertimeHandlerImpl{overtimeService: overtimeService}
}

// Calculate implements OvertimeHandler. Pure calculation, nothing is stored.
func (h *OvertimeHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var req overtime.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Calculate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.overtimeService.Calculate(r.Context(), req)
	if err != nil {
		slog.Error("Calculate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	var req overtime.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create overtime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.overtimeService.Create(r.Context(), userID, req)
	if err != nil {
		slog.Error("Create overtime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime recorded", record)
}

// Get implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	record, err := h.overtimeService.GetRecord(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Get overtime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// GetDetails implements OvertimeHandler.
func (h *OvertimeHandlerImpl) GetDetails(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	record, err := h.overtimeService.GetRecordDetails(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("GetDetails service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// Delete implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	if err := h.overtimeService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete overtime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime record deleted", nil)
}

// ListYears implements OvertimeHandler.
func (h *OvertimeHandlerImpl) ListYears(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	years, err := h.overtimeService.ListYears(r.Context(), userID)
	if err != nil {
		slog.Error("ListYears service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, years)
}

// Report implements OvertimeHandler. Month and year arrive as optional
// query parameters, defaulting to the current ones.
func (h *OvertimeHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	month, err := intQueryParam(r, "month")
	if err != nil {
		response.BadRequest(w, "month must be a number", nil)
		return
	}
	year, err := intQueryParam(r, "year")
	if err != nil {
		response.BadRequest(w, "year must be a number", nil)
		return
	}

	report, err := h.overtimeService.Report(r.Context(), userID, month, year)
	if err != nil {
		slog.Error("Report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// WeeklyReport implements OvertimeHandler.
func (h *OvertimeHandlerImpl) WeeklyReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	report, err := h.overtimeService.WeeklyReport(r.Context(), userID)
	if err != nil {
		slog.Error("WeeklyReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// MonthlyReport implements OvertimeHandler.
func (h *OvertimeHandlerImpl) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	month, err := intQueryParam(r, "month")
	if err != nil {
		response.BadRequest(w, "month must be a number", nil)
		return
	}
	year, err := intQueryParam(r, "year")
	if err != nil {
		response.BadRequest(w, "year must be a number", nil)
		return
	}

	report, err := h.overtimeService.MonthlyReport(r.Context(), userID, month, year)
	if err != nil {
		slog.Error("MonthlyReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// YearlyReport implements OvertimeHandler.
func (h *OvertimeHandlerImpl) YearlyReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	year, err := intQueryParam(r, "year")
	if err != nil {
		response.BadRequest(w, "year must be a number", nil)
		return
	}

	report, err := h.overtimeService.YearlyReport(r.Context(), userID, year)
	if err != nil {
		slog.Error("YearlyReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// DateRangeReport implements OvertimeHandler. Dates arrive as dd/mm/yyyy
// query parameters; with no range the current month is reported.
func (h *OvertimeHandlerImpl) DateRangeReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	report, err := h.overtimeService.DateRangeReport(r.Context(), userID, startDate, endDate)
	if err != nil {
		slog.Error("DateRangeReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

func intQueryParam(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
