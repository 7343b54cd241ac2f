package statementhandler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/denilsonpy/finapi/internal/domain"
	"github.com/denilsonpy/finapi/pkg/dto"
	"github.com/denilsonpy/finapi/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type statementService interface {
	Create(userID string, amount int64, description string, statementType domain.StatementType) (*domain.Statement, error)
	Operation(userID, statementID string) (*domain.Statement, error)
}

type StatementHandler struct {
	statementService statementService
}

func New(svc statementService) *StatementHandler {
	return &StatementHandler{
		statementService: svc,
	}
}

func (h StatementHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, domain.Deposit)
}

func (h StatementHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, domain.Withdraw)
}

func (h StatementHandler) create(w http.ResponseWriter, r *http.Request, statementType domain.StatementType) {
	userID := r.Header.Get("User-ID")

	var request dto.StatementRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Log.Warn("error while decoding a statement request")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	defer closeBody(r.Body)

	if err := request.IsValid(); err != nil {
		logger.Log.Warn("invalid statement fields", logger.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	statement, err := h.statementService.Create(userID, domain.Cents(request.Amount), request.Description, statementType)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			http.Error(w, "user not found", http.StatusNotFound)
		case errors.Is(err, domain.ErrInsufficientFunds):
			logger.Log.Warn("insufficient funds", logger.String("user_id", userID))
			http.Error(w, "insufficient funds", http.StatusPaymentRequired)
		case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrInvalidStatementType):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			logger.Log.Error("error while creating statement", logger.String("user_id", userID), logger.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(dto.NewStatement(*statement)); err != nil {
		logger.Log.Error("error while encoding statement to JSON", logger.String("user_id", userID), logger.Error(err))
	}
}

func (h StatementHandler) Operation(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("User-ID")
	statementID := chi.URLParam(r, "statement_id")

	statement, err := h.statementService.Operation(userID, statementID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			http.Error(w, "user not found", http.StatusNotFound)
		case errors.Is(err, domain.ErrStatementNotFound):
			http.Error(w, "statement not found", http.StatusNotFound)
		default:
			logger.Log.Error("error while fetching statement", logger.String("user_id", userID), logger.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto.NewStatement(*statement)); err != nil {
		logger.Log.Error("error while encoding statement to JSON", logger.String("user_id", userID), logger.Error(err))
	}
}

func closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		logger.Log.Error("error while closing request body", logger.Error(err))
	}
}
