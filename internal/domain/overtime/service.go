package overtime

import "context"

// OvertimeService is the application surface for overtime calculation,
// recording and reporting. Calculation endpoints never touch storage.
type OvertimeService interface {
	Calculate(ctx context.Context, req CalculateRequest) (CalculateResponse, error)

	Create(ctx context.Context, userID string, req CreateRecordRequest) (RecordResponse, error)
	GetRecord(ctx context.Context, userID, id string) (RecordResponse, error)
	GetRecordDetails(ctx context.Context, userID, id string) (RecordDetailResponse, error)
	Delete(ctx context.Context, userID, id string) error

	ListYears(ctx context.Context, userID string) ([]string, error)
	Report(ctx context.Context, userID string, month, year *int) (ReportResponse, error)
	WeeklyReport(ctx context.Context, userID string) (WeeklyReportResponse, error)
	MonthlyReport(ctx context.Context, userID string, month, year *int) (MonthlyReportResponse, error)
	YearlyReport(ctx context.Context, userID string, year *int) (YearlyReportResponse, error)
	DateRangeReport(ctx context.Context, userID string, startDate, endDate string) (DateRangeReportResponse, error)
}
