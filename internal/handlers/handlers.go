package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/rentvest/docs"
	adminhandlers "github.com/GlebRadaev/rentvest/internal/handlers/admin"
	authhandlers "github.com/GlebRadaev/rentvest/internal/handlers/auth"
	balancehandlers "github.com/GlebRadaev/rentvest/internal/handlers/balance"
	gifthandlers "github.com/GlebRadaev/rentvest/internal/handlers/gifts"
	markethandlers "github.com/GlebRadaev/rentvest/internal/handlers/market"
	rentalhandlers "github.com/GlebRadaev/rentvest/internal/handlers/rentals"
	teamhandlers "github.com/GlebRadaev/rentvest/internal/handlers/team"
	"github.com/GlebRadaev/rentvest/internal/service"
	"github.com/GlebRadaev/rentvest/pkg/auth"
	"github.com/GlebRadaev/rentvest/pkg/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=handlers_mock.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	CreateDeposit(w http.ResponseWriter, r *http.Request)
	CreateWithdrawal(w http.ResponseWriter, r *http.Request)
}

type RentalHandler interface {
	Products(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Purchase(w http.ResponseWriter, r *http.Request)
	Collect(w http.ResponseWriter, r *http.Request)
	CollectAll(w http.ResponseWriter, r *http.Request)
}

type TeamHandler interface {
	GetTeam(w http.ResponseWriter, r *http.Request)
}

type GiftHandler interface {
	Status(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	Spin(w http.ResponseWriter, r *http.Request)
	Spins(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Pending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type MarketHandler interface {
	Tickers(w http.ResponseWriter, r *http.Request)
}

// RateLimiter guards the unauthenticated auth endpoints.
type RateLimiter interface {
	Middleware(next http.Handler) http.Handler
}

type Handlers struct {
	AuthHandler    AuthHandler
	BalanceHandler BalanceHandler
	RentalHandler  RentalHandler
	TeamHandler    TeamHandler
	GiftHandler    GiftHandler
	AdminHandler   AdminHandler
	MarketHandler  MarketHandler

	jwtService auth.JWTServiceInterface
	limiter    RateLimiter
}

func New(s *service.Services, jwtService auth.JWTServiceInterface, limiter RateLimiter) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		BalanceHandler: balancehandlers.New(s.BalanceService),
		RentalHandler:  rentalhandlers.New(s.RentalService),
		TeamHandler:    teamhandlers.New(s.ReferralService),
		GiftHandler:    gifthandlers.New(s.GiftService),
		AdminHandler:   adminhandlers.New(s.AdminService),
		MarketHandler:  markethandlers.New(s.MarketService),
		jwtService:     jwtService,
		limiter:        limiter,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.Middleware,
	)
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.With(auth.OptionalAuth(h.jwtService)).Get("/products", h.RentalHandler.Products)
		r.Get("/market/tickers", h.MarketHandler.Tickers)

		r.Route("/user", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(h.limiter.Middleware)
				r.Post("/register", h.AuthHandler.Register)
				r.Post("/login", h.AuthHandler.Login)
			})

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware(h.jwtService))
				r.Get("/balance", h.BalanceHandler.GetBalance)
				r.Get("/transactions", h.BalanceHandler.GetTransactions)
				r.Post("/deposits", h.BalanceHandler.CreateDeposit)
				r.Post("/withdrawals", h.BalanceHandler.CreateWithdrawal)

				r.Route("/rentals", func(r chi.Router) {
					r.Get("/", h.RentalHandler.List)
					r.Post("/", h.RentalHandler.Purchase)
					r.Post("/collect", h.RentalHandler.CollectAll)
					r.Post("/{id}/collect", h.RentalHandler.Collect)
				})

				r.Get("/team", h.TeamHandler.GetTeam)

				r.Route("/gifts", func(r chi.Router) {
					r.Get("/", h.GiftHandler.Status)
					r.Post("/checkin", h.GiftHandler.CheckIn)
					r.Post("/spin", h.GiftHandler.Spin)
					r.Get("/spins", h.GiftHandler.Spins)
				})
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService), auth.AdminOnly)
			r.Get("/transactions/pending", h.AdminHandler.Pending)
			r.Post("/transactions/{reference}/approve", h.AdminHandler.Approve)
			r.Post("/transactions/{reference}/reject", h.AdminHandler.Reject)
			r.Get("/stats", h.AdminHandler.Stats)
		})
	})

	return r
}
