package balancehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/denilsonpy/finapi/internal/domain"
	"github.com/denilsonpy/finapi/pkg/dto"
	"github.com/denilsonpy/finapi/pkg/logger"
)

type balanceService interface {
	Balance(userID string) (*domain.Balance, error)
}

type BalanceHandler struct {
	balanceService balanceService
}

func New(svc balanceService) *BalanceHandler {
	return &BalanceHandler{
		balanceService: svc,
	}
}

func (h BalanceHandler) Balance(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("User-ID")

	balance, err := h.balanceService.Balance(userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		logger.Log.Error("error while fetching balance", logger.String("user_id", userID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto.NewBalance(*balance)); err != nil {
		logger.Log.Error("error while encoding balance to JSON", logger.String("user_id", userID), logger.Error(err))
	}
}
