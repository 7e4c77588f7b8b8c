package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/centavo/backend/src/config"
	"github.com/username/centavo/backend/src/logger"
	"github.com/username/centavo/backend/src/models"
	"github.com/username/centavo/backend/src/reports"
	"github.com/username/centavo/backend/src/storage"
)

// Cache keys carry a "user_<id>|" segment so invalidation can drop every
// report of one user without touching anyone else's entries.
const (
	ckSummary = "report_summary_user_%d|%s|%s"
	ckMonthly = "report_monthly_user_%d|%04d-%02d"
	ckWeekly  = "report_weekly_user_%d|%s"
	ckChart   = "report_chart_user_%d|%d|%s"
)

type reportServiceImpl struct {
	store       storage.LedgerStore
	reportCache *cache.Cache
	now         func() time.Time
}

// NewReportService builds the report pipeline. now is injected so the window
// defaults ("current month", "today") are a pure function of it; production
// passes time.Now.
func NewReportService(store storage.LedgerStore, reportCache *cache.Cache, now func() time.Time) ReportService {
	return &reportServiceImpl{
		store:       store,
		reportCache: reportCache,
		now:         now,
	}
}

func (s *reportServiceImpl) cacheTTL() time.Duration {
	if config.Cfg != nil {
		return config.Cfg.ReportCacheTTL
	}
	return cache.DefaultExpiration
}

func (s *reportServiceImpl) GetSummary(userID int64, startDate, endDate string) (models.SummaryReport, error) {
	start, end, err := reports.SummaryWindow(startDate, endDate)
	if err != nil {
		return models.SummaryReport{}, err
	}

	key := fmt.Sprintf(ckSummary, userID, startDate, endDate)
	if cached, found := s.reportCache.Get(key); found {
		return cached.(models.SummaryReport), nil
	}

	txs, err := s.store.FetchTransactions(userID, models.TransactionFilter{StartDate: start, EndDate: end})
	if err != nil {
		return models.SummaryReport{}, fmt.Errorf("fetching ledger for summary report: %w", err)
	}

	report := reports.ShapeSummary(txs, startDate, endDate)
	s.reportCache.Set(key, report, s.cacheTTL())
	return report, nil
}

func (s *reportServiceImpl) GetMonthly(userID int64, year, month string) (models.MonthlyReport, error) {
	win, y, m, err := reports.MonthWindow(s.now(), year, month)
	if err != nil {
		return models.MonthlyReport{}, err
	}

	key := fmt.Sprintf(ckMonthly, userID, y, m)
	if cached, found := s.reportCache.Get(key); found {
		return cached.(models.MonthlyReport), nil
	}

	txs, err := s.store.FetchTransactions(userID, models.TransactionFilter{StartDate: &win.Start, EndDate: &win.End})
	if err != nil {
		return models.MonthlyReport{}, fmt.Errorf("fetching ledger for monthly report: %w", err)
	}

	report := reports.ShapeMonthly(y, m, reports.GroupByTypeAndCategory(txs))
	s.reportCache.Set(key, report, s.cacheTTL())
	return report, nil
}

func (s *reportServiceImpl) GetWeekly(userID int64, date string) (models.WeeklyReport, error) {
	now := s.now()
	win, err := reports.WeekWindow(now, date)
	if err != nil {
		return models.WeeklyReport{}, err
	}

	key := fmt.Sprintf(ckWeekly, userID, win.Start.Format("2006-01-02"))
	if cached, found := s.reportCache.Get(key); found {
		return cached.(models.WeeklyReport), nil
	}

	txs, err := s.store.FetchTransactions(userID, models.TransactionFilter{StartDate: &win.Start, EndDate: &win.End})
	if err != nil {
		return models.WeeklyReport{}, fmt.Errorf("fetching ledger for weekly report: %w", err)
	}

	report := reports.ShapeWeekly(win, reports.GroupByTypeAndWeekday(txs, now.Location()))
	s.reportCache.Set(key, report, s.cacheTTL())
	return report, nil
}

func (s *reportServiceImpl) GetChartData(userID int64, months string) ([]models.ChartPoint, error) {
	now := s.now()
	win, monthCount, err := reports.ChartWindow(now, months)
	if err != nil {
		return nil, err
	}

	// The window is anchored at "now"; keying by the current day keeps a
	// cached series from outliving the day it was computed for.
	key := fmt.Sprintf(ckChart, userID, monthCount, now.Format("2006-01-02"))
	if cached, found := s.reportCache.Get(key); found {
		return cached.([]models.ChartPoint), nil
	}

	txs, err := s.store.FetchTransactions(userID, models.TransactionFilter{StartDate: &win.Start, EndDate: &win.End})
	if err != nil {
		return nil, fmt.Errorf("fetching ledger for chart data: %w", err)
	}

	points := reports.ShapeChart(reports.GroupByYearMonth(txs, now.Location()))
	s.reportCache.Set(key, points, s.cacheTTL())
	return points, nil
}

// InvalidateUserCache clears every cached report for the user, forcing a full
// recomputation on the next request.
func (s *reportServiceImpl) InvalidateUserCache(userID int64) {
	marker := fmt.Sprintf("user_%d|", userID)
	removed := 0
	for key := range s.reportCache.Items() {
		if strings.Contains(key, marker) {
			s.reportCache.Delete(key)
			removed++
		}
	}
	if removed > 0 && logger.L != nil {
		logger.L.Debug("Invalidated report cache", "userID", userID, "entries", removed)
	}
}
