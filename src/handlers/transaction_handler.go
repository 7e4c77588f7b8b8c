package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/username/centavo/backend/src/logger"
	"github.com/username/centavo/backend/src/models"
	"github.com/username/centavo/backend/src/security/validation"
	"github.com/username/centavo/backend/src/services"
	"github.com/username/centavo/backend/src/storage"
	"github.com/username/centavo/backend/src/utils"
)

type TransactionHandler struct {
	store         storage.LedgerStore
	reportService services.ReportService
}

func NewTransactionHandler(store storage.LedgerStore, reportService services.ReportService) *TransactionHandler {
	return &TransactionHandler{
		store:         store,
		reportService: reportService,
	}
}

type listTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	TotalPages   int                  `json:"totalPages"`
	CurrentPage  int                  `json:"currentPage"`
	Total        int                  `json:"total"`
}

func (h *TransactionHandler) HandleListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		sendJSONError(w, "authentication required or user ID not found in context", http.StatusUnauthorized)
		return
	}

	q := r.URL.Query()
	page, err := positiveIntParam(q.Get("page"), 1)
	if err != nil {
		sendJSONError(w, "page must be a positive integer", http.StatusBadRequest)
		return
	}
	limit, err := positiveIntParam(q.Get("limit"), 10)
	if err != nil {
		sendJSONError(w, "limit must be a positive integer", http.StatusBadRequest)
		return
	}

	filter := models.TransactionFilter{
		// Invalid type values fall out of the filter instead of failing
		// the request.
		Type:     models.TransactionType(q.Get("type")),
		Category: q.Get("category"),
	}
	if s := q.Get("startDate"); s != "" {
		t, err := utils.ParseDay(s)
		if err != nil {
			sendJSONError(w, "startDate must be a valid YYYY-MM-DD date", http.StatusBadRequest)
			return
		}
		filter.StartDate = &t
	}
	if s := q.Get("endDate"); s != "" {
		t, err := utils.ParseDay(s)
		if err != nil {
			sendJSONError(w, "endDate must be a valid YYYY-MM-DD date", http.StatusBadRequest)
			return
		}
		end := t.AddDate(0, 0, 1).Add(-time.Millisecond)
		filter.EndDate = &end
	}

	txs, total, err := h.store.ListTransactions(userID, filter, page, limit)
	if err != nil {
		logger.L.Error("Error listing transactions", "userID", userID, "error", err)
		sendJSONError(w, "Error retrieving transactions", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, listTransactionsResponse{
		Transactions: txs,
		TotalPages:   int(math.Ceil(float64(total) / float64(limit))),
		CurrentPage:  page,
		Total:        total,
	})
}

type transactionRequest struct {
	Type        *models.TransactionType `json:"type"`
	Amount      *models.Money           `json:"amount"`
	Category    *string                 `json:"category"`
	Description *string                 `json:"description"`
	Date        *string                 `json:"date"`
}

func (h *TransactionHandler) HandleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		sendJSONError(w, "authentication required or user ID not found in context", http.StatusUnauthorized)
		return
	}

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, models.ErrInvalidAmount) {
			sendJSONError(w, "Amount must be a positive number", http.StatusBadRequest)
			return
		}
		sendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tx := models.Transaction{UserID: userID, Date: time.Now().UTC()}
	if req.Type != nil {
		tx.Type = *req.Type
	}
	if req.Amount != nil {
		tx.Amount = *req.Amount
	}
	if req.Category != nil {
		tx.Category = strings.TrimSpace(validation.StripUnprintable(*req.Category))
	}
	if req.Description != nil {
		tx.Description = strings.TrimSpace(validation.StripUnprintable(*req.Description))
	}
	if req.Date != nil && *req.Date != "" {
		parsed, err := utils.ParseTimestamp(*req.Date)
		if err != nil {
			sendJSONError(w, "Date must be a valid date", http.StatusBadRequest)
			return
		}
		tx.Date = parsed
	}

	if err := tx.Validate(); err != nil {
		sendJSONError(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	if err := h.store.CreateTransaction(&tx); err != nil {
		logger.L.Error("Error creating transaction", "userID", userID, "error", err)
		sendJSONError(w, "Error creating transaction", http.StatusInternalServerError)
		return
	}
	h.reportService.InvalidateUserCache(userID)

	utils.WriteJSON(w, http.StatusCreated, tx)
}

func (h *TransactionHandler) HandleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		sendJSONError(w, "authentication required or user ID not found in context", http.StatusUnauthorized)
		return
	}
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		sendJSONError(w, "Invalid transaction id", http.StatusBadRequest)
		return
	}

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, models.ErrInvalidAmount) {
			sendJSONError(w, "Amount must be a positive number", http.StatusBadRequest)
			return
		}
		sendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tx, err := h.store.GetTransactionByID(userID, id)
	if err != nil {
		if errors.Is(err, storage.ErrTransactionNotFound) {
			sendJSONError(w, "Transaction not found", http.StatusNotFound)
			return
		}
		logger.L.Error("Error loading transaction for update", "userID", userID, "id", id, "error", err)
		sendJSONError(w, "Error updating transaction", http.StatusInternalServerError)
		return
	}

	if req.Type != nil {
		tx.Type = *req.Type
	}
	if req.Amount != nil {
		tx.Amount = *req.Amount
	}
	if req.Category != nil {
		tx.Category = strings.TrimSpace(validation.StripUnprintable(*req.Category))
	}
	if req.Description != nil {
		tx.Description = strings.TrimSpace(validation.StripUnprintable(*req.Description))
	}
	if req.Date != nil && *req.Date != "" {
		parsed, perr := utils.ParseTimestamp(*req.Date)
		if perr != nil {
			sendJSONError(w, "Date must be a valid date", http.StatusBadRequest)
			return
		}
		tx.Date = parsed
	}

	if err := tx.Validate(); err != nil {
		sendJSONError(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	if err := h.store.UpdateTransaction(tx); err != nil {
		if errors.Is(err, storage.ErrTransactionNotFound) {
			sendJSONError(w, "Transaction not found", http.StatusNotFound)
			return
		}
		logger.L.Error("Error updating transaction", "userID", userID, "id", id, "error", err)
		sendJSONError(w, "Error updating transaction", http.StatusInternalServerError)
		return
	}
	h.reportService.InvalidateUserCache(userID)

	utils.WriteJSON(w, http.StatusOK, tx)
}

func (h *TransactionHandler) HandleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		sendJSONError(w, "authentication required or user ID not found in context", http.StatusUnauthorized)
		return
	}
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		sendJSONError(w, "Invalid transaction id", http.StatusBadRequest)
		return
	}

	if err := h.store.DeleteTransaction(userID, id); err != nil {
		if errors.Is(err, storage.ErrTransactionNotFound) {
			sendJSONError(w, "Transaction not found", http.StatusNotFound)
			return
		}
		logger.L.Error("Error deleting transaction", "userID", userID, "id", id, "error", err)
		sendJSONError(w, "Error deleting transaction", http.StatusInternalServerError)
		return
	}
	h.reportService.InvalidateUserCache(userID)

	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Transaction deleted successfully"})
}

func (h *TransactionHandler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		sendJSONError(w, "authentication required or user ID not found in context", http.StatusUnauthorized)
		return
	}

	categories, err := h.store.ListCategories(userID)
	if err != nil {
		logger.L.Error("Error listing categories", "userID", userID, "error", err)
		sendJSONError(w, "Error retrieving categories", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, categories)
}

func positiveIntParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, errors.New("not a positive integer")
	}
	return v, nil
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrInvalidType):
		return "Type must be income or expense"
	case errors.Is(err, models.ErrInvalidAmount):
		return "Amount must be a positive number"
	case errors.Is(err, models.ErrEmptyCategory):
		return "Category is required"
	case errors.Is(err, models.ErrInvalidDate):
		return "Date must be a valid date"
	default:
		return "Invalid transaction"
	}
}
