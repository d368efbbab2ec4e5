package overtime

import (
	"github.com/abghifareihand/overtime-connect-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== CALCULATE DTOs ==========

type CalculateRequest struct {
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	DayType       string          `json:"day_type"`
	WorkingDays   int             `json:"working_days,omitempty"`
	OvertimeHours float64         `json:"overtime_hours"`
}

func (r *CalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.MonthlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "must be non-negative"})
	}
	if r.OvertimeHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
	}
	switch DayType(r.DayType) {
	case DayTypeRegular:
	case DayTypeHoliday:
		if r.WorkingDays != int(FiveDayWeek) && r.WorkingDays != int(SixDayWeek) {
			errs = append(errs, validator.ValidationError{Field: "working_days", Message: "must be 5 or 6"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "day_type", Message: "must be 'regular' or 'holiday'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CalculateResponse struct {
	TotalOvertime   decimal.Decimal `json:"total_overtime"`
	OvertimeDetails []DetailItem    `json:"overtime_details"`
}

// ========== RECORD DTOs ==========

type CreateRecordRequest struct {
	Date          string          `json:"date"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	DayType       string          `json:"day_type"`
	WorkingDays   int             `json:"working_days,omitempty"`
	OvertimeHours float64         `json:"overtime_hours"`
	Attendance    *bool           `json:"attendance"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.Attendance == nil {
		errs = append(errs, validator.ValidationError{Field: "attendance", Message: "is required"})
	}

	calcReq := CalculateRequest{
		MonthlySalary: r.MonthlySalary,
		DayType:       r.DayType,
		WorkingDays:   r.WorkingDays,
		OvertimeHours: r.OvertimeHours,
	}
	var calcErrs validator.ValidationErrors
	if err := calcReq.Validate(); err != nil {
		calcErrs = err.(validator.ValidationErrors)
	}
	errs = append(errs, calcErrs...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	OvertimeHours float64         `json:"overtime_hours"`
	Attendance    bool            `json:"attendance"`
	DayType       string          `json:"day_type"`
	TotalOvertime decimal.Decimal `json:"total_overtime"`
}

type RecordDetailResponse struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	OvertimeHours float64         `json:"overtime_hours"`
	Attendance    bool            `json:"attendance"`
	DayType       string          `json:"day_type"`
	TotalOvertime decimal.Decimal `json:"total_overtime"`
	Details       []DetailItem    `json:"overtime_details"`
}

// ========== REPORT DTOs ==========

type ReportResponse struct {
	Month       string           `json:"month"`
	Year        string           `json:"year"`
	TotalHours  float64          `json:"total_hours"`
	TotalAmount decimal.Decimal  `json:"total_amount"`
	Data        []RecordResponse `json:"data"`
}

type WeeklyReportResponse struct {
	WeekStart   string           `json:"week_start"`
	WeekEnd     string           `json:"week_end"`
	TotalHours  float64          `json:"total_hours"`
	TotalAmount decimal.Decimal  `json:"total_amount"`
	Data        []RecordResponse `json:"data"`
}

type MonthlyReportResponse struct {
	MonthStart  string           `json:"month_start"`
	MonthEnd    string           `json:"month_end"`
	TotalHours  float64          `json:"total_hours"`
	TotalAmount decimal.Decimal  `json:"total_amount"`
	Data        []RecordResponse `json:"data"`
}

type MonthGroupResponse struct {
	Month       string           `json:"month"`
	TotalHours  float64          `json:"total_hours"`
	TotalAmount decimal.Decimal  `json:"total_amount"`
	Overtimes   []RecordResponse `json:"overtimes"`
}

type YearlyReportResponse struct {
	Year        string               `json:"year"`
	TotalHours  float64              `json:"total_hours"`
	TotalAmount decimal.Decimal      `json:"total_amount"`
	Months      []MonthGroupResponse `json:"data"`
}

type DateRangeReportResponse struct {
	DateRange   string           `json:"date_range"`
	TotalHours  float64          `json:"total_hours"`
	TotalAmount decimal.Decimal  `json:"total_amount"`
	Data        []RecordResponse `json:"data"`
}
