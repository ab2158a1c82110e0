package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/zearn/docs"
	adminhandlers "github.com/GlebRadaev/zearn/internal/handlers/admin"
	authhandlers "github.com/GlebRadaev/zearn/internal/handlers/auth"
	settingshandlers "github.com/GlebRadaev/zearn/internal/handlers/settings"
	taskshandlers "github.com/GlebRadaev/zearn/internal/handlers/tasks"
	userhandlers "github.com/GlebRadaev/zearn/internal/handlers/user"
	withdrawalshandlers "github.com/GlebRadaev/zearn/internal/handlers/withdrawals"
	"github.com/GlebRadaev/zearn/internal/service"
	"github.com/GlebRadaev/zearn/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	AdminLogin(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	Profile(w http.ResponseWriter, r *http.Request)
	Leaderboard(w http.ResponseWriter, r *http.Request)
	DailyStatus(w http.ResponseWriter, r *http.Request)
	ClaimDaily(w http.ResponseWriter, r *http.Request)
	Jackpot(w http.ResponseWriter, r *http.Request)
	EnterJackpot(w http.ResponseWriter, r *http.Request)
}

type TaskHandler interface {
	GetTasks(w http.ResponseWriter, r *http.Request)
	GetProgress(w http.ResponseWriter, r *http.Request)
	StartTask(w http.ResponseWriter, r *http.Request)
	VerifyTask(w http.ResponseWriter, r *http.Request)
}

type WithdrawalHandler interface {
	CreateWithdrawal(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
	ConfirmWithdrawal(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
	SetWithdrawalStatus(w http.ResponseWriter, r *http.Request)
	GetUsers(w http.ResponseWriter, r *http.Request)
	ToggleBan(w http.ResponseWriter, r *http.Request)
	GetTasks(w http.ResponseWriter, r *http.Request)
	CreateTask(w http.ResponseWriter, r *http.Request)
	UpdateTask(w http.ResponseWriter, r *http.Request)
	DeleteTask(w http.ResponseWriter, r *http.Request)
	GetTaskStats(w http.ResponseWriter, r *http.Request)
}

type SettingsHandler interface {
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	UserHandler       UserHandler
	TaskHandler       TaskHandler
	WithdrawalHandler WithdrawalHandler
	AdminHandler      AdminHandler
	SettingsHandler   SettingsHandler
	Validator         auth.TokenValidator
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		UserHandler:       userhandlers.New(s.AccountService, s.LedgerService),
		TaskHandler:       taskshandlers.New(s.TaskService),
		WithdrawalHandler: withdrawalshandlers.New(s.WithdrawalService),
		AdminHandler:      adminhandlers.New(s.DashboardService, s.AccountService, s.TaskService, s.WithdrawalService),
		SettingsHandler:   settingshandlers.New(s.SettingsService),
		Validator:         s.TokenValidator,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/api/settings", h.SettingsHandler.GetSettings)

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.Validator))
			r.Get("/profile", h.UserHandler.Profile)
			r.Get("/leaderboard", h.UserHandler.Leaderboard)
			r.Route("/daily", func(r chi.Router) {
				r.Get("/", h.UserHandler.DailyStatus)
				r.Post("/claim", h.UserHandler.ClaimDaily)
			})
			r.Route("/jackpot", func(r chi.Router) {
				r.Get("/", h.UserHandler.Jackpot)
				r.Post("/enter", h.UserHandler.EnterJackpot)
			})
			r.Route("/withdrawals", func(r chi.Router) {
				r.Post("/", h.WithdrawalHandler.CreateWithdrawal)
				r.Get("/", h.WithdrawalHandler.GetWithdrawals)
				r.Post("/{id}/confirm", h.WithdrawalHandler.ConfirmWithdrawal)
			})
		})
	})

	r.Route("/api/tasks", func(r chi.Router) {
		r.Use(auth.AuthMiddleware(h.Validator))
		r.Get("/", h.TaskHandler.GetTasks)
		r.Get("/progress", h.TaskHandler.GetProgress)
		r.Post("/{taskID}/start", h.TaskHandler.StartTask)
		r.Post("/{taskID}/verify", h.TaskHandler.VerifyTask)
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Post("/login", h.AuthHandler.AdminLogin)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.Validator), auth.AdminMiddleware)
			r.Get("/dashboard", h.AdminHandler.Dashboard)
			r.Route("/withdrawals", func(r chi.Router) {
				r.Get("/", h.AdminHandler.GetWithdrawals)
				r.Put("/{id}/status", h.AdminHandler.SetWithdrawalStatus)
			})
			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.AdminHandler.GetUsers)
				r.Post("/{id}/ban", h.AdminHandler.ToggleBan)
			})
			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", h.AdminHandler.GetTasks)
				r.Post("/", h.AdminHandler.CreateTask)
				r.Get("/stats", h.AdminHandler.GetTaskStats)
				r.Put("/{id}", h.AdminHandler.UpdateTask)
				r.Delete("/{id}", h.AdminHandler.DeleteTask)
			})
			r.Route("/settings", func(r chi.Router) {
				r.Get("/", h.SettingsHandler.GetSettings)
				r.Put("/", h.SettingsHandler.UpdateSettings)
			})
		})
	})

	return r
}
