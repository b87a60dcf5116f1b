package service

import (
	"time"

	"go-stocktrack/internal/dto"
	"go-stocktrack/internal/repository"
)

// ReportService computes read-only projections over the transaction log.
type ReportService interface {
	Summary(startDate, endDate *time.Time) (*dto.SummaryResponse, error)
	StockMovement(days int) ([]dto.StockMovementPoint, error)
	DashboardStats() (*dto.DashboardStats, error)
}

type reportService struct {
	txRepo repository.TransactionRepository
}

func NewReportService(txRepo repository.TransactionRepository) ReportService {
	return &reportService{txRepo: txRepo}
}

// Summary aggregates ledger entries by type and by (day, type) within the
// window. The window defaults to the last 30 days and the end is stretched
// to end-of-day so a date-only endDate includes that whole day.
func (s *reportService) Summary(startDate, endDate *time.Time) (*dto.SummaryResponse, error) {
	end := time.Now()
	if endDate != nil {
		end = *endDate
	}
	end = endOfDay(end)

	start := end.AddDate(0, 0, -30)
	if startDate != nil {
		start = *startDate
	}

	summary, err := s.txRepo.SummaryByType(start, end)
	if err != nil {
		return nil, err
	}
	daily, err := s.txRepo.SummaryByDay(start, end)
	if err != nil {
		return nil, err
	}

	if summary == nil {
		summary = []dto.TypeSummary{}
	}
	if daily == nil {
		daily = []dto.DailySummary{}
	}

	return &dto.SummaryResponse{
		Summary:      summary,
		DailySummary: daily,
	}, nil
}

func (s *reportService) StockMovement(days int) ([]dto.StockMovementPoint, error) {
	if days <= 0 {
		days = 7
	}
	end := time.Now()
	start := end.AddDate(0, 0, -days)
	return s.txRepo.StockMovement(start, end)
}

func (s *reportService) DashboardStats() (*dto.DashboardStats, error) {
	return s.txRepo.DashboardStats()
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
