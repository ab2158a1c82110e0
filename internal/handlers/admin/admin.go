package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/zearn/internal/domain"
	"github.com/GlebRadaev/zearn/internal/dto"
	"github.com/GlebRadaev/zearn/internal/handlers/withdrawals"
	"github.com/GlebRadaev/zearn/internal/service/taskservice"
	"github.com/GlebRadaev/zearn/pkg/utils"
	"github.com/GlebRadaev/zearn/pkg/validate"
)

type DashboardService interface {
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
}

type AccountService interface {
	List(ctx context.Context) ([]domain.Account, error)
	ToggleBan(ctx context.Context, accountID string) (bool, error)
}

type TaskService interface {
	All(ctx context.Context) ([]domain.Task, error)
	Create(ctx context.Context, task domain.Task) (*domain.Task, error)
	Update(ctx context.Context, task domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, taskID string) error
	Stats(ctx context.Context) ([]domain.TaskStats, error)
}

type WithdrawalService interface {
	All(ctx context.Context) ([]domain.Withdrawal, error)
	SetStatus(ctx context.Context, id string, to domain.WithdrawalStatus) (*domain.Withdrawal, error)
}

type AdminHandler struct {
	dashboardService  DashboardService
	accountService    AccountService
	taskService       TaskService
	withdrawalService WithdrawalService
}

func New(dashboardService DashboardService, accountService AccountService, taskService TaskService, withdrawalService WithdrawalService) *AdminHandler {
	return &AdminHandler{
		dashboardService:  dashboardService,
		accountService:    accountService,
		taskService:       taskService,
		withdrawalService: withdrawalService,
	}
}

func respondWithTaskError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, taskservice.ErrInvalidTask), errors.Is(err, domain.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Dashboard godoc
//
//	@Summary		Operator dashboard
//	@Description	Accounts, tasks, withdrawals, task stats and settings in one response
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.DashboardResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/dashboard [get]
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.dashboardService.Dashboard(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromDashboard(d))
}

// GetWithdrawals godoc
//
//	@Summary		All payout requests
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals [get]
func (h *AdminHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	list, err := h.withdrawalService.All(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromWithdrawals(list))
}

// SetWithdrawalStatus godoc
//
//	@Summary		Change a payout request status
//	@Description	REJECTED refunds the held amount once. Rejected requests are final.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Withdrawal ID"
//	@Param			request	body		dto.SetWithdrawalStatusRequestDTO	true	"New status"
//	@Success		200		{object}	dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Withdrawal not found"
//	@Failure		409		{object}	utils.Response	"Invalid status transition"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/status [put]
func (h *AdminHandler) SetWithdrawalStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.SetWithdrawalStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	wd, err := h.withdrawalService.SetStatus(r.Context(), chi.URLParam(r, "id"), domain.WithdrawalStatus(req.Status))
	if err != nil {
		withdrawals.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromWithdrawal(wd))
}

// GetUsers godoc
//
//	@Summary		All accounts
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.AccountResponseDTO
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users [get]
func (h *AdminHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromAccounts(accounts))
}

// ToggleBan godoc
//
//	@Summary		Ban or unban an account
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Account ID"
//	@Success		200	{object}	utils.Response
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{id}/ban [post]
func (h *AdminHandler) ToggleBan(w http.ResponseWriter, r *http.Request) {
	banned, err := h.accountService.ToggleBan(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	message := "Account unbanned"
	if banned {
		message = "Account banned"
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: message})
}

// GetTasks godoc
//
//	@Summary		All tasks with proof fields
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.AdminTaskResponseDTO
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/tasks [get]
func (h *AdminHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.All(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromAdminTasks(tasks))
}

func decodeTask(w http.ResponseWriter, r *http.Request) (dto.TaskRequestDTO, bool) {
	var req dto.TaskRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return req, false
	}
	return req, true
}

// CreateTask godoc
//
//	@Summary		Create a task
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TaskRequestDTO	true	"Task"
//	@Success		201		{object}	dto.AdminTaskResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/tasks [post]
func (h *AdminHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeTask(w, r)
	if !ok {
		return
	}
	task, err := h.taskService.Create(r.Context(), req.ToTask(""))
	if err != nil {
		respondWithTaskError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromAdminTask(task))
}

// UpdateTask godoc
//
//	@Summary		Update a task
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Task ID"
//	@Param			request	body		dto.TaskRequestDTO	true	"Task"
//	@Success		200		{object}	dto.AdminTaskResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Task not found"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/tasks/{id} [put]
func (h *AdminHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeTask(w, r)
	if !ok {
		return
	}
	task, err := h.taskService.Update(r.Context(), req.ToTask(chi.URLParam(r, "id")))
	if err != nil {
		respondWithTaskError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromAdminTask(task))
}

// DeleteTask godoc
//
//	@Summary		Delete a task
//	@Description	Also removes the task's completion records
//	@Tags			Admin
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Task ID"
//	@Success		204
//	@Failure		404	{object}	utils.Response	"Task not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/tasks/{id} [delete]
func (h *AdminHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.taskService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondWithTaskError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetTaskStats godoc
//
//	@Summary		Completion and failure counts per task
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TaskStatsResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/tasks/stats [get]
func (h *AdminHandler) GetTaskStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.taskService.Stats(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromTaskStats(stats))
}
