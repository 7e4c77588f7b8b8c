package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/username/centavo/backend/src/logger"
	"github.com/username/centavo/backend/src/reports"
	"github.com/username/centavo/backend/src/services"
	"github.com/username/centavo/backend/src/utils"
)

type ReportHandler struct {
	reportService services.ReportService
}

func NewReportHandler(reportService services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

func (h *ReportHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		sendJSONError(w, "authentication required or user ID not found in context", http.StatusUnauthorized)
		return
	}
	logger.L.Debug("Handling GetSummary", "userID", userID)

	q := r.URL.Query()
	report, err := h.reportService.GetSummary(userID, q.Get("startDate"), q.Get("endDate"))
	if err != nil {
		h.writeReportError(w, "summary", userID, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) HandleGetMonthly(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		sendJSONError(w, "authentication required or user ID not found in context", http.StatusUnauthorized)
		return
	}
	logger.L.Debug("Handling GetMonthly", "userID", userID)

	q := r.URL.Query()
	report, err := h.reportService.GetMonthly(userID, q.Get("year"), q.Get("month"))
	if err != nil {
		h.writeReportError(w, "monthly", userID, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) HandleGetWeekly(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		sendJSONError(w, "authentication required or user ID not found in context", http.StatusUnauthorized)
		return
	}
	logger.L.Debug("Handling GetWeekly", "userID", userID)

	report, err := h.reportService.GetWeekly(userID, r.URL.Query().Get("date"))
	if err != nil {
		h.writeReportError(w, "weekly", userID, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, report)
}

// HandleGetChartData serves the multi-month trend series. The series changes
// only when the user's ledger does, so it carries an ETag and honors
// If-None-Match.
func (h *ReportHandler) HandleGetChartData(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		sendJSONError(w, "authentication required or user ID not found in context", http.StatusUnauthorized)
		return
	}
	logger.L.Debug("Handling GetChartData", "userID", userID)

	points, err := h.reportService.GetChartData(userID, r.URL.Query().Get("months"))
	if err != nil {
		h.writeReportError(w, "chart-data", userID, err)
		return
	}

	currentETag, etagErr := utils.GenerateETag(points)
	if etagErr != nil {
		logger.L.Error("Failed to generate ETag for chart data", "userID", userID, "error", etagErr)
	}
	if etagErr == nil && currentETag != "" {
		quotedETag := fmt.Sprintf("%q", currentETag)
		w.Header().Set("ETag", quotedETag)
		for _, cETag := range strings.Split(r.Header.Get("If-None-Match"), ",") {
			if strings.TrimSpace(cETag) == quotedETag {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
	}

	utils.WriteJSON(w, http.StatusOK, points)
}

// writeReportError maps report pipeline failures onto the error contract:
// malformed parameters are the client's fault (400), everything else is a
// store or programming failure surfaced as a generic 500 with details kept in
// the log.
func (h *ReportHandler) writeReportError(w http.ResponseWriter, report string, userID int64, err error) {
	if errors.Is(err, reports.ErrInvalidParameter) {
		sendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	logger.L.Error("Error computing report", "report", report, "userID", userID, "error", err)
	sendJSONError(w, "Error generating report", http.StatusInternalServerError)
}
