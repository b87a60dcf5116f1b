package service

import (
	"testing"
	"time"

	"go-stocktrack/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary_DefaultWindowIsLast30Days(t *testing.T) {
	repo := &mockTransactionRepo{}
	var gotStart, gotEnd time.Time
	repo.SummaryByTypeFunc = func(startDate, endDate time.Time) ([]dto.TypeSummary, error) {
		gotStart, gotEnd = startDate, endDate
		return nil, nil
	}
	svc := NewReportService(repo)

	_, err := svc.Summary(nil, nil)

	require.NoError(t, err)
	assert.Equal(t, 23, gotEnd.Hour())
	assert.Equal(t, 59, gotEnd.Minute())
	assert.WithinDuration(t, gotEnd.AddDate(0, 0, -30), gotStart, time.Second)
}

func TestSummary_EndDateStretchedToEndOfDay(t *testing.T) {
	repo := &mockTransactionRepo{}
	var gotEnd time.Time
	repo.SummaryByDayFunc = func(startDate, endDate time.Time) ([]dto.DailySummary, error) {
		gotEnd = endDate
		return nil, nil
	}
	svc := NewReportService(repo)

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	_, err := svc.Summary(&start, &end)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 15, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC), gotEnd)
}

func TestSummary_EmptyWindowReturnsEmptySlices(t *testing.T) {
	repo := &mockTransactionRepo{}
	svc := NewReportService(repo)

	resp, err := svc.Summary(nil, nil)

	require.NoError(t, err)
	assert.NotNil(t, resp.Summary)
	assert.NotNil(t, resp.DailySummary)
	assert.Empty(t, resp.Summary)
	assert.Empty(t, resp.DailySummary)
}

func TestSummary_PassesThroughAggregates(t *testing.T) {
	repo := &mockTransactionRepo{}
	repo.SummaryByTypeFunc = func(startDate, endDate time.Time) ([]dto.TypeSummary, error) {
		return []dto.TypeSummary{
			{Type: "restock", Count: 2, TotalQuantity: 15, TotalValue: 300},
			{Type: "sale", Count: 5, TotalQuantity: -9, TotalValue: 180},
		}, nil
	}
	repo.SummaryByDayFunc = func(startDate, endDate time.Time) ([]dto.DailySummary, error) {
		return []dto.DailySummary{
			{Date: "2026-08-01", Type: "sale", Count: 3, TotalQuantity: -5, TotalValue: 100},
		}, nil
	}
	svc := NewReportService(repo)

	resp, err := svc.Summary(nil, nil)

	require.NoError(t, err)
	require.Len(t, resp.Summary, 2)
	assert.Equal(t, "restock", resp.Summary[0].Type)
	require.Len(t, resp.DailySummary, 1)
	assert.Equal(t, "2026-08-01", resp.DailySummary[0].Date)
}

func TestStockMovement_ClampsDays(t *testing.T) {
	repo := &mockTransactionRepo{}
	var gotStart, gotEnd time.Time
	repo.StockMovementFunc = func(startDate, endDate time.Time) ([]dto.StockMovementPoint, error) {
		gotStart, gotEnd = startDate, endDate
		return nil, nil
	}
	svc := NewReportService(repo)

	_, err := svc.StockMovement(-3)

	require.NoError(t, err)
	assert.WithinDuration(t, gotEnd.AddDate(0, 0, -7), gotStart, time.Second)
}
