package overtime

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/abghifareihand/overtime-connect-backend/internal/domain/overtime"
	"github.com/abghifareihand/overtime-connect-backend/internal/pkg/validator"
)

const (
	dateLayout      = "2006-01-02"
	rangeDateLayout = "02/01/2006"
)

type OvertimeServiceImpl struct {
	overtime.OvertimeRepository
	now func() time.Time
}

func NewOvertimeService(overtimeRepository overtime.OvertimeRepository) overtime.OvertimeService {
	return &OvertimeServiceImpl{
		OvertimeRepository: overtimeRepository,
		now:                time.Now,
	}
}

// Calculate implements overtime.OvertimeService. It never touches storage.
func (s *OvertimeServiceImpl) Calculate(ctx context.Context, req overtime.CalculateRequest) (overtime.CalculateResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.CalculateResponse{}, err
	}

	breakdown, err := overtime.Calculate(
		req.MonthlySalary,
		overtime.DayType(req.DayType),
		overtime.WorkingDays(req.WorkingDays),
		req.OvertimeHours,
	)
	if err != nil {
		return overtime.CalculateResponse{}, err
	}

	return overtime.CalculateResponse{
		TotalOvertime:   breakdown.Total,
		OvertimeDetails: breakdown.DetailItems(req.MonthlySalary),
	}, nil
}

// Create implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) Create(ctx context.Context, userID string, req overtime.CreateRecordRequest) (overtime.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.RecordResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	breakdown, err := overtime.Calculate(
		req.MonthlySalary,
		overtime.DayType(req.DayType),
		overtime.WorkingDays(req.WorkingDays),
		req.OvertimeHours,
	)
	if err != nil {
		return overtime.RecordResponse{}, err
	}

	record := overtime.Record{
		UserID:        userID,
		Date:          date,
		OvertimeHours: req.OvertimeHours,
		Attendance:    *req.Attendance,
		DayType:       overtime.DayType(req.DayType),
		TotalOvertime: breakdown.Total,
		Details:       breakdown.DetailItems(req.MonthlySalary),
	}

	created, err := s.OvertimeRepository.Create(ctx, record)
	if err != nil {
		return overtime.RecordResponse{}, err
	}

	return toRecordResponse(created), nil
}

// GetRecord implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) GetRecord(ctx context.Context, userID, id string) (overtime.RecordResponse, error) {
	record, err := s.OvertimeRepository.GetByID(ctx, userID, id)
	if err != nil {
		return overtime.RecordResponse{}, err
	}
	return toRecordResponse(record), nil
}

// GetRecordDetails implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) GetRecordDetails(ctx context.Context, userID, id string) (overtime.RecordDetailResponse, error) {
	record, err := s.OvertimeRepository.GetByID(ctx, userID, id)
	if err != nil {
		return overtime.RecordDetailResponse{}, err
	}

	return overtime.RecordDetailResponse{
		ID:            record.ID,
		Date:          record.Date.Format(dateLayout),
		OvertimeHours: record.OvertimeHours,
		Attendance:    record.Attendance,
		DayType:       string(record.DayType),
		TotalOvertime: record.TotalOvertime,
		Details:       record.Details,
	}, nil
}

// Delete implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) Delete(ctx context.Context, userID, id string) error {
	return s.OvertimeRepository.Delete(ctx, userID, id)
}

// ListYears implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) ListYears(ctx context.Context, userID string) ([]string, error) {
	years, err := s.OvertimeRepository.ListYears(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(years))
	for _, y := range years {
		out = append(out, strconv.Itoa(y))
	}
	return out, nil
}

// Report implements overtime.OvertimeService. Both params missing means
// the current month; a year without a month covers that whole year and
// the month label becomes "-".
func (s *OvertimeServiceImpl) Report(ctx context.Context, userID string, month, year *int) (overtime.ReportResponse, error) {
	now := s.now()
	y := now.Year()
	if year != nil {
		y = *year
	}

	var start, end time.Time
	var monthLabel string
	if month == nil && year != nil {
		start, end = yearBounds(y)
		monthLabel = "-"
	} else {
		m := int(now.Month())
		if month != nil {
			m = *month
		}
		if m < 1 || m > 12 {
			return overtime.ReportResponse{}, validator.ValidationErrors{
				{Field: "month", Message: "must be between 1 and 12"},
			}
		}
		start, end = monthBounds(y, time.Month(m))
		monthLabel = time.Month(m).String()
	}

	records, err := s.OvertimeRepository.ListByUser(ctx, userID, &start, &end)
	if err != nil {
		return overtime.ReportResponse{}, err
	}

	hours, amount, data := summarize(records)
	return overtime.ReportResponse{
		Month:       monthLabel,
		Year:        strconv.Itoa(y),
		TotalHours:  hours,
		TotalAmount: amount,
		Data:        data,
	}, nil
}

// WeeklyReport implements overtime.OvertimeService. The week runs Monday
// through Sunday and always contains the current date.
func (s *OvertimeServiceImpl) WeeklyReport(ctx context.Context, userID string) (overtime.WeeklyReportResponse, error) {
	now := s.now()
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday closes the week
	}
	start := time.Date(now.Year(), now.Month(), now.Day()-(weekday-1), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 6)

	records, err := s.OvertimeRepository.ListByUser(ctx, userID, &start, &end)
	if err != nil {
		return overtime.WeeklyReportResponse{}, err
	}

	hours, amount, data := summarize(records)
	return overtime.WeeklyReportResponse{
		WeekStart:   start.Format(dateLayout),
		WeekEnd:     end.Format(dateLayout),
		TotalHours:  hours,
		TotalAmount: amount,
		Data:        data,
	}, nil
}

// MonthlyReport implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) MonthlyReport(ctx context.Context, userID string, month, year *int) (overtime.MonthlyReportResponse, error) {
	now := s.now()
	m := int(now.Month())
	y := now.Year()
	if month != nil {
		m = *month
	}
	if year != nil {
		y = *year
	}
	if m < 1 || m > 12 {
		return overtime.MonthlyReportResponse{}, validator.ValidationErrors{
			{Field: "month", Message: "must be between 1 and 12"},
		}
	}

	start, end := monthBounds(y, time.Month(m))
	records, err := s.OvertimeRepository.ListByUser(ctx, userID, &start, &end)
	if err != nil {
		return overtime.MonthlyReportResponse{}, err
	}

	hours, amount, data := summarize(records)
	return overtime.MonthlyReportResponse{
		MonthStart:  start.Format(dateLayout),
		MonthEnd:    end.Format(dateLayout),
		TotalHours:  hours,
		TotalAmount: amount,
		Data:        data,
	}, nil
}

// YearlyReport implements overtime.OvertimeService. Records are grouped
// per month, January first, months without records omitted.
func (s *OvertimeServiceImpl) YearlyReport(ctx context.Context, userID string, year *int) (overtime.YearlyReportResponse, error) {
	y := s.now().Year()
	if year != nil {
		y = *year
	}

	start, end := yearBounds(y)

	records, err := s.OvertimeRepository.ListByUser(ctx, userID, &start, &end)
	if err != nil {
		return overtime.YearlyReportResponse{}, err
	}

	byMonth := map[time.Month][]overtime.Record{}
	for _, rec := range records {
		byMonth[rec.Date.Month()] = append(byMonth[rec.Date.Month()], rec)
	}

	var totalHours float64
	totalAmount := decimal.Zero
	months := []overtime.MonthGroupResponse{}
	for m := time.January; m <= time.December; m++ {
		group, ok := byMonth[m]
		if !ok {
			continue
		}
		// records inside a month run oldest first
		sort.Slice(group, func(i, j int) bool { return group[i].Date.Before(group[j].Date) })
		hours, amount, data := summarize(group)
		totalHours += hours
		totalAmount = totalAmount.Add(amount)
		months = append(months, overtime.MonthGroupResponse{
			Month:       m.String(),
			TotalHours:  hours,
			TotalAmount: amount,
			Overtimes:   data,
		})
	}

	return overtime.YearlyReportResponse{
		Year:        strconv.Itoa(y),
		TotalHours:  totalHours,
		TotalAmount: totalAmount,
		Months:      months,
	}, nil
}

// DateRangeReport implements overtime.OvertimeService. Dates arrive in
// dd/mm/yyyy form and the range is inclusive on both ends. When no range
// is given the current month is reported.
func (s *OvertimeServiceImpl) DateRangeReport(ctx context.Context, userID string, startDate, endDate string) (overtime.DateRangeReportResponse, error) {
	if startDate == "" && endDate == "" {
		now := s.now()
		defaultStart, defaultEnd := monthBounds(now.Year(), now.Month())
		startDate = defaultStart.Format(rangeDateLayout)
		endDate = defaultEnd.Format(rangeDateLayout)
	}

	start, err := time.Parse(rangeDateLayout, startDate)
	if err != nil {
		return overtime.DateRangeReportResponse{}, validator.ValidationErrors{
			{Field: "start_date", Message: "must be a valid date (dd/mm/yyyy)"},
		}
	}
	end, err := time.Parse(rangeDateLayout, endDate)
	if err != nil {
		return overtime.DateRangeReportResponse{}, validator.ValidationErrors{
			{Field: "end_date", Message: "must be a valid date (dd/mm/yyyy)"},
		}
	}
	if end.Before(start) {
		return overtime.DateRangeReportResponse{}, validator.ValidationErrors{
			{Field: "end_date", Message: "must not be before start_date"},
		}
	}

	records, err := s.OvertimeRepository.ListByUser(ctx, userID, &start, &end)
	if err != nil {
		return overtime.DateRangeReportResponse{}, err
	}

	hours, amount, data := summarize(records)
	return overtime.DateRangeReportResponse{
		DateRange:   fmt.Sprintf("%s - %s", start.Format(rangeDateLayout), end.Format(rangeDateLayout)),
		TotalHours:  hours,
		TotalAmount: amount,
		Data:        data,
	}, nil
}

func toRecordResponse(rec overtime.Record) overtime.RecordResponse {
	return overtime.RecordResponse{
		ID:            rec.ID,
		Date:          rec.Date.Format(dateLayout),
		OvertimeHours: rec.OvertimeHours,
		Attendance:    rec.Attendance,
		DayType:       string(rec.DayType),
		TotalOvertime: rec.TotalOvertime,
	}
}

func summarize(records []overtime.Record) (float64, decimal.Decimal, []overtime.RecordResponse) {
	var hours float64
	amount := decimal.Zero
	data := make([]overtime.RecordResponse, 0, len(records))
	for _, rec := range records {
		hours += rec.OvertimeHours
		amount = amount.Add(rec.TotalOvertime)
		data = append(data, toRecordResponse(rec))
	}
	return hours, amount, data
}

// Dates are handled in UTC throughout, matching how request dates are
// parsed. The DATE column ignores the time component anyway.
func monthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

func yearBounds(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return start, end
}
