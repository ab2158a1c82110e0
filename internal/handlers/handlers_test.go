package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/zearn/internal/handlers/admin"
	"github.com/GlebRadaev/zearn/internal/handlers/auth"
	"github.com/GlebRadaev/zearn/internal/handlers/user"
	"github.com/GlebRadaev/zearn/internal/service"
	pkgauth "github.com/GlebRadaev/zearn/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:      auth.NewMockService(ctrl),
		LedgerService:    user.NewMockLedgerService(ctrl),
		DashboardService: admin.NewMockDashboardService(ctrl),
		TokenValidator:   pkgauth.NewMockJWTServiceInterface(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.AuthHandler)
	assert.NotNil(t, h.UserHandler)
	assert.NotNil(t, h.AdminHandler)
	assert.NotNil(t, h.SettingsHandler)
	assert.Equal(t, services.TokenValidator, h.Validator)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockUserHandler := NewMockUserHandler(ctrl)
	mockTaskHandler := NewMockTaskHandler(ctrl)
	mockWithdrawalHandler := NewMockWithdrawalHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)
	mockSettingsHandler := NewMockSettingsHandler(ctrl)
	mockValidator := pkgauth.NewMockJWTServiceInterface(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().AdminLogin(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().Profile(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().Leaderboard(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().DailyStatus(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().ClaimDaily(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().Jackpot(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().EnterJackpot(gomock.Any(), gomock.Any()).AnyTimes()
	mockTaskHandler.EXPECT().GetTasks(gomock.Any(), gomock.Any()).AnyTimes()
	mockTaskHandler.EXPECT().GetProgress(gomock.Any(), gomock.Any()).AnyTimes()
	mockTaskHandler.EXPECT().StartTask(gomock.Any(), gomock.Any()).AnyTimes()
	mockTaskHandler.EXPECT().VerifyTask(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalHandler.EXPECT().CreateWithdrawal(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalHandler.EXPECT().GetWithdrawals(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalHandler.EXPECT().ConfirmWithdrawal(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().Dashboard(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().GetWithdrawals(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().SetWithdrawalStatus(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().GetUsers(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().ToggleBan(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().GetTasks(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().CreateTask(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().UpdateTask(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().DeleteTask(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().GetTaskStats(gomock.Any(), gomock.Any()).AnyTimes()
	mockSettingsHandler.EXPECT().GetSettings(gomock.Any(), gomock.Any()).AnyTimes()
	mockSettingsHandler.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).AnyTimes()

	mockValidator.EXPECT().ValidateToken("user-token").Return(&pkgauth.Claims{AccountID: "acc-1"}, nil).AnyTimes()
	mockValidator.EXPECT().ValidateToken("admin-token").Return(&pkgauth.Claims{AccountID: "admin-1", IsAdmin: true}, nil).AnyTimes()
	mockValidator.EXPECT().ValidateToken("bad-token").Return(nil, pkgauth.ErrInvalidToken).AnyTimes()

	h := &Handlers{
		AuthHandler:       mockAuthHandler,
		UserHandler:       mockUserHandler,
		TaskHandler:       mockTaskHandler,
		WithdrawalHandler: mockWithdrawalHandler,
		AdminHandler:      mockAdminHandler,
		SettingsHandler:   mockSettingsHandler,
		Validator:         mockValidator,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/user/register", "", http.StatusOK},
		{"POST", "/api/user/login", "", http.StatusOK},
		{"POST", "/api/admin/login", "", http.StatusOK},
		{"GET", "/api/settings", "", http.StatusOK},

		{"GET", "/api/user/profile", "", http.StatusUnauthorized},
		{"GET", "/api/user/profile", "bad-token", http.StatusUnauthorized},
		{"GET", "/api/user/profile", "user-token", http.StatusOK},
		{"GET", "/api/user/leaderboard", "", http.StatusUnauthorized},
		{"GET", "/api/user/leaderboard", "user-token", http.StatusOK},
		{"GET", "/api/user/daily", "", http.StatusUnauthorized},
		{"GET", "/api/user/daily", "user-token", http.StatusOK},
		{"POST", "/api/user/daily/claim", "", http.StatusUnauthorized},
		{"POST", "/api/user/daily/claim", "user-token", http.StatusOK},
		{"GET", "/api/user/jackpot", "user-token", http.StatusOK},
		{"POST", "/api/user/jackpot/enter", "", http.StatusUnauthorized},
		{"POST", "/api/user/jackpot/enter", "user-token", http.StatusOK},
		{"POST", "/api/user/withdrawals", "", http.StatusUnauthorized},
		{"POST", "/api/user/withdrawals", "user-token", http.StatusOK},
		{"GET", "/api/user/withdrawals", "user-token", http.StatusOK},
		{"POST", "/api/user/withdrawals/w-1/confirm", "", http.StatusUnauthorized},
		{"POST", "/api/user/withdrawals/w-1/confirm", "user-token", http.StatusOK},

		{"GET", "/api/tasks", "", http.StatusUnauthorized},
		{"GET", "/api/tasks", "user-token", http.StatusOK},
		{"GET", "/api/tasks/progress", "user-token", http.StatusOK},
		{"POST", "/api/tasks/t-1/start", "", http.StatusUnauthorized},
		{"POST", "/api/tasks/t-1/start", "user-token", http.StatusOK},
		{"POST", "/api/tasks/t-1/verify", "", http.StatusUnauthorized},
		{"POST", "/api/tasks/t-1/verify", "user-token", http.StatusOK},

		{"GET", "/api/admin/dashboard", "", http.StatusUnauthorized},
		{"GET", "/api/admin/dashboard", "user-token", http.StatusForbidden},
		{"GET", "/api/admin/dashboard", "admin-token", http.StatusOK},
		{"GET", "/api/admin/withdrawals", "user-token", http.StatusForbidden},
		{"GET", "/api/admin/withdrawals", "admin-token", http.StatusOK},
		{"PUT", "/api/admin/withdrawals/w-1/status", "user-token", http.StatusForbidden},
		{"PUT", "/api/admin/withdrawals/w-1/status", "admin-token", http.StatusOK},
		{"GET", "/api/admin/users", "admin-token", http.StatusOK},
		{"POST", "/api/admin/users/acc-1/ban", "user-token", http.StatusForbidden},
		{"POST", "/api/admin/users/acc-1/ban", "admin-token", http.StatusOK},
		{"GET", "/api/admin/tasks", "admin-token", http.StatusOK},
		{"POST", "/api/admin/tasks", "user-token", http.StatusForbidden},
		{"POST", "/api/admin/tasks", "admin-token", http.StatusOK},
		{"GET", "/api/admin/tasks/stats", "admin-token", http.StatusOK},
		{"PUT", "/api/admin/tasks/t-1", "admin-token", http.StatusOK},
		{"DELETE", "/api/admin/tasks/t-1", "user-token", http.StatusForbidden},
		{"DELETE", "/api/admin/tasks/t-1", "admin-token", http.StatusOK},
		{"GET", "/api/admin/settings", "admin-token", http.StatusOK},
		{"PUT", "/api/admin/settings", "", http.StatusUnauthorized},
		{"PUT", "/api/admin/settings", "user-token", http.StatusForbidden},
		{"PUT", "/api/admin/settings", "admin-token", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url+" "+tt.token, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
