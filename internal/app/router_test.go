package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/denilsonpy/finapi/internal/config"
	"github.com/denilsonpy/finapi/pkg/dto"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestRouter() *chi.Mux {
	app := &App{
		Config: &config.Config{
			PrivateKey:       "test-private-key",
			BcryptCost:       bcrypt.MinCost,
			AuthDisabledURLs: []string{"/api/users", "/api/sessions"},
		},
	}

	return app.Router()
}

func doJSON(t *testing.T, router http.Handler, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func registerUser(t *testing.T, router http.Handler, name, email, password string) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/users", "", dto.Register{
		Name:     name,
		Email:    email,
		Password: password,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	token := rec.Header().Get("Authorization")
	require.NotEmpty(t, token)

	return token[len("Bearer "):]
}

func TestRegisterEndpoint(t *testing.T) {
	t.Run("creates a user without exposing the password", func(t *testing.T) {
		router := newTestRouter()

		rec := doJSON(t, router, http.MethodPost, "/api/users", "", dto.Register{
			Name:     "Hilda Caldwell",
			Email:    "ulja@colrike.bf",
			Password: "2584357327",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Hilda Caldwell", body["name"])
		assert.Equal(t, "ulja@colrike.bf", body["email"])
		assert.NotEmpty(t, body["id"])
		assert.NotContains(t, body, "password")
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		router := newTestRouter()
		registerUser(t, router, "Augusta Yates", "ruehijo@mile.io", "2731736498")

		rec := doJSON(t, router, http.MethodPost, "/api/users", "", dto.Register{
			Name:     "Augusta Yates",
			Email:    "ruehijo@mile.io",
			Password: "2731736498",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		router := newTestRouter()

		rec := doJSON(t, router, http.MethodPost, "/api/users", "", dto.Register{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("returns a session", func(t *testing.T) {
		router := newTestRouter()
		registerUser(t, router, "Marcus Poole", "nos@ri.qa", "58670410")

		rec := doJSON(t, router, http.MethodPost, "/api/sessions", "", dto.Credentials{
			Email:    "nos@ri.qa",
			Password: "58670410",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var session dto.Session
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
		assert.NotEmpty(t, session.Token)
		assert.Equal(t, "Marcus Poole", session.User.Name)
		assert.Equal(t, "nos@ri.qa", session.User.Email)
	})

	t.Run("wrong password and unknown email fail alike", func(t *testing.T) {
		router := newTestRouter()
		registerUser(t, router, "Amy Newman", "ubipo@taw.ro", "1651453926")

		rec := doJSON(t, router, http.MethodPost, "/api/sessions", "", dto.Credentials{
			Email:    "ubipo@taw.ro",
			Password: "2307459004",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "incorrect email or password")

		rec = doJSON(t, router, http.MethodPost, "/api/sessions", "", dto.Credentials{
			Email:    "ulticiju@lolicec.si",
			Password: "1551757010",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "incorrect email or password")
	})
}

func TestProfileEndpoint(t *testing.T) {
	router := newTestRouter()
	token := registerUser(t, router, "Myra Burke", "gis@kizo.mv", "2908145599")

	rec := doJSON(t, router, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var user dto.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "Myra Burke", user.Name)
	assert.Equal(t, "gis@kizo.mv", user.Email)
}

func TestStatementEndpoints(t *testing.T) {
	t.Run("deposit then withdraw then insufficient funds", func(t *testing.T) {
		router := newTestRouter()
		token := registerUser(t, router, "Katherine Barnett", "olo@now.su", "2276381643")

		rec := doJSON(t, router, http.MethodPost, "/api/statements/deposit", token, dto.StatementRequest{
			Amount:      10,
			Description: "Home",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var deposit dto.Statement
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &deposit))
		assert.Equal(t, 10.0, deposit.Amount)
		assert.Equal(t, "deposit", deposit.Type)

		rec = doJSON(t, router, http.MethodGet, "/api/statements/balance", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var balance dto.Balance
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &balance))
		assert.Equal(t, 10.0, balance.Balance)
		assert.Len(t, balance.Statement, 1)

		rec = doJSON(t, router, http.MethodPost, "/api/statements/withdraw", token, dto.StatementRequest{
			Amount:      10,
			Description: "Home",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(t, router, http.MethodPost, "/api/statements/withdraw", token, dto.StatementRequest{
			Amount:      10,
			Description: "Home",
		})
		assert.Equal(t, http.StatusPaymentRequired, rec.Code)

		rec = doJSON(t, router, http.MethodGet, "/api/statements/balance", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &balance))
		assert.Equal(t, 0.0, balance.Balance)
		assert.Len(t, balance.Statement, 2)
	})

	t.Run("statement operation round-trips", func(t *testing.T) {
		router := newTestRouter()
		token := registerUser(t, router, "Todd Alvarez", "gatav@uj.ng", "1661937704")

		rec := doJSON(t, router, http.MethodPost, "/api/statements/deposit", token, dto.StatementRequest{
			Amount:      20,
			Description: "Apartment",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var created dto.Statement
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

		rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/statements/%s", created.ID), token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var statement dto.Statement
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &statement))
		assert.Equal(t, created.ID, statement.ID)
		assert.Equal(t, 20.0, statement.Amount)
		assert.Equal(t, "Apartment", statement.Description)
		assert.Equal(t, "deposit", statement.Type)
	})

	t.Run("unknown statement is not found", func(t *testing.T) {
		router := newTestRouter()
		token := registerUser(t, router, "Todd Alvarez", "gatav@uj.ng", "1661937704")

		rec := doJSON(t, router, http.MethodGet, "/api/statements/1", token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("requests without a token are unauthorized", func(t *testing.T) {
		router := newTestRouter()

		rec := doJSON(t, router, http.MethodGet, "/api/statements/balance", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
