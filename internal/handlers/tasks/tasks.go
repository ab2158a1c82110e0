package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/zearn/internal/domain"
	"github.com/GlebRadaev/zearn/internal/dto"
	"github.com/GlebRadaev/zearn/pkg/auth"
	"github.com/GlebRadaev/zearn/pkg/utils"
	"github.com/GlebRadaev/zearn/pkg/validate"
)

type Service interface {
	Available(ctx context.Context, special *bool) ([]domain.Task, error)
	Progress(ctx context.Context, accountID string) ([]domain.TaskCompletion, error)
	Start(ctx context.Context, accountID, taskID string) (string, error)
	Verify(ctx context.Context, accountID, taskID, proof string) (domain.Result, error)
}

type TaskHandler struct {
	taskService Service
}

func New(taskService Service) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func respondWithTaskError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound), errors.Is(err, domain.ErrAccountNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// GetTasks godoc
//
//	@Summary		List available tasks
//	@Description	Tasks visible now. Proof fields are never included.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			special	query		bool	false	"Only special (true) or only standard (false) tasks"
//	@Success		200		{array}		dto.TaskResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid filter"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/tasks [get]
func (h *TaskHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	var special *bool
	if raw := r.URL.Query().Get("special"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid special filter")
			return
		}
		special = &v
	}

	tasks, err := h.taskService.Available(r.Context(), special)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromTasks(tasks))
}

// GetProgress godoc
//
//	@Summary		Task progress of the current account
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TaskProgressResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/tasks/progress [get]
func (h *TaskHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	completions, err := h.taskService.Progress(r.Context(), auth.AccountID(r.Context()))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromCompletions(completions))
}

// StartTask godoc
//
//	@Summary		Start a task
//	@Description	Records an attempt and returns the link to open
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			taskID	path		string	true	"Task ID"
//	@Success		200		{object}	dto.StartTaskResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Task not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/tasks/{taskID}/start [post]
func (h *TaskHandler) StartTask(w http.ResponseWriter, r *http.Request) {
	link, err := h.taskService.Start(r.Context(), auth.AccountID(r.Context()), chi.URLParam(r, "taskID"))
	if err != nil {
		respondWithTaskError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.StartTaskResponseDTO{Link: link})
}

// VerifyTask godoc
//
//	@Summary		Submit proof for a task
//	@Description	A rejected proof is reported with success=false, not as an error status.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			taskID	path		string						true	"Task ID"
//	@Param			request	body		dto.VerifyTaskRequestDTO	true	"Proof"
//	@Success		200		{object}	dto.ResultResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Task not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/tasks/{taskID}/verify [post]
func (h *TaskHandler) VerifyTask(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyTaskRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.taskService.Verify(r.Context(), auth.AccountID(r.Context()), chi.URLParam(r, "taskID"), req.Proof)
	if err != nil {
		respondWithTaskError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromResult(result))
}
