package app

import (
	"github.com/denilsonpy/finapi/internal/handler/balance"
	"github.com/denilsonpy/finapi/internal/handler/middleware"
	"github.com/denilsonpy/finapi/internal/handler/statement"
	"github.com/denilsonpy/finapi/internal/handler/user"
	"github.com/denilsonpy/finapi/internal/memory"
	"github.com/denilsonpy/finapi/internal/postgres"
	"github.com/denilsonpy/finapi/internal/service"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func (app *App) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.WithAuth(app.Config))

	users, statements := app.repositories()

	userService := service.NewUserService(users, app.Config)
	userHandler := userhandler.New(userService)

	statementService := service.NewStatementService(users, statements)
	statementHandler := statementhandler.New(statementService)
	balanceHandler := balancehandler.New(statementService)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", userHandler.Register)
		r.Post("/sessions", userHandler.Login)

		r.Get("/profile", userHandler.Profile)

		r.Route("/statements", func(r chi.Router) {
			r.Post("/deposit", statementHandler.Deposit)
			r.Post("/withdraw", statementHandler.Withdraw)
			r.Get("/balance", balanceHandler.Balance)
			r.Get("/{statement_id}", statementHandler.Operation)
		})
	})

	return r
}

// repositories picks the storage backend: postgres when a database is
// configured, the in-memory store otherwise. Both expose the same
// methods, so the same value serves the user and statement interfaces.
func (app *App) repositories() (service.UserRepository, service.StatementRepository) {
	if app.DB != nil {
		p := postgres.New(app.DB)
		return p, p
	}

	m := memory.New()
	return m, m
}
