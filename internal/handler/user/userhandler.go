package userhandler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/denilsonpy/finapi/internal/domain"
	"github.com/denilsonpy/finapi/pkg/dto"
	"github.com/denilsonpy/finapi/pkg/logger"
)

type UserService interface {
	Register(name, email, password string) (string, *domain.User, error)
	Login(email, password string) (string, *domain.User, error)
	Profile(userID string) (*domain.User, error)
}

type UserHandler struct {
	srv UserService
}

func New(srv UserService) *UserHandler {
	return &UserHandler{
		srv: srv,
	}
}

func (uh *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var register dto.Register

	if err := json.NewDecoder(r.Body).Decode(&register); err != nil {
		logger.Log.Warn("error while decoding a register request")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}
	defer closeBody(r.Body)

	if err := register.IsValid(); err != nil {
		logger.Log.Warn("invalid register fields", logger.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, user, err := uh.srv.Register(register.Name, register.Email, register.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			http.Error(w, "user already exists", http.StatusConflict)
			return
		}

		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(dto.NewUser(*user)); err != nil {
		logger.Log.Error("error while encoding user to JSON", logger.Error(err))
	}
}

func (uh *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var credentials dto.Credentials

	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		logger.Log.Warn("error while decoding a login request")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}
	defer closeBody(r.Body)

	if err := credentials.IsValid(); err != nil {
		logger.Log.Warn("invalid login fields", logger.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, user, err := uh.srv.Login(credentials.Email, credentials.Password)
	if err != nil {
		if errors.Is(err, domain.ErrIncorrectCredentials) {
			http.Error(w, "incorrect email or password", http.StatusUnauthorized)
			return
		}

		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	session := dto.Session{
		Token: token,
		User:  dto.NewUser(*user),
	}

	w.Header().Set("Authorization", "Bearer "+token)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(session); err != nil {
		logger.Log.Error("error while encoding session to JSON", logger.Error(err))
	}
}

func (uh *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("User-ID")

	user, err := uh.srv.Profile(userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		logger.Log.Error("error while fetching profile", logger.String("user_id", userID), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto.NewUser(*user)); err != nil {
		logger.Log.Error("error while encoding user to JSON", logger.Error(err))
	}
}

func closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		logger.Log.Error("error while closing request body", logger.Error(err))
	}
}
