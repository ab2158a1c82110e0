package withdrawals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/zearn/internal/domain"
	"github.com/GlebRadaev/zearn/internal/dto"
	"github.com/GlebRadaev/zearn/internal/service/withdrawalservice"
	"github.com/GlebRadaev/zearn/pkg/auth"
	"github.com/GlebRadaev/zearn/pkg/utils"
	"github.com/GlebRadaev/zearn/pkg/validate"
)

type Service interface {
	Request(ctx context.Context, accountID string, amount int64, method, details string) (*domain.Withdrawal, error)
	ByAccount(ctx context.Context, accountID string) ([]domain.Withdrawal, error)
	Confirm(ctx context.Context, accountID, id string, received bool) (*domain.Withdrawal, error)
}

type WithdrawalHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

// RespondWithError maps withdrawal errors to HTTP statuses.
func RespondWithError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, domain.ErrWithdrawalNotFound), errors.Is(err, domain.ErrAccountNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidTransition):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, withdrawalservice.ErrBelowMinimum),
		errors.Is(err, withdrawalservice.ErrInvalidMethod),
		errors.Is(err, withdrawalservice.ErrMissingDetails),
		errors.Is(err, domain.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// CreateWithdrawal godoc
//
//	@Summary		Request a payout
//	@Description	Holds the amount on the balance and opens a PENDING request
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateWithdrawalRequestDTO	true	"Withdrawal request payload"
//	@Success		200		{object}	dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/withdrawals [post]
func (h *WithdrawalHandler) CreateWithdrawal(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateWithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	wd, err := h.withdrawalService.Request(r.Context(), auth.AccountID(r.Context()), req.Amount, req.Method, req.Details)
	if err != nil {
		RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromWithdrawal(wd))
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawals history
//	@Description	Payout requests of the authenticated account, newest first
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO
//	@Success		204	{object}	utils.Response	"Withdrawals not found"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/withdrawals [get]
func (h *WithdrawalHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	withdrawals, err := h.withdrawalService.ByAccount(r.Context(), auth.AccountID(r.Context()))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}
	if len(withdrawals) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromWithdrawals(withdrawals))
}

// ConfirmWithdrawal godoc
//
//	@Summary		Confirm receipt of a payout
//	@Description	Only for requests marked paid. received=false sends the request back to PENDING.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Withdrawal ID"
//	@Param			request	body		dto.ConfirmWithdrawalRequestDTO	true	"Confirmation"
//	@Success		200		{object}	dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Withdrawal not found"
//	@Failure		409		{object}	utils.Response	"Request is not awaiting confirmation"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/withdrawals/{id}/confirm [post]
func (h *WithdrawalHandler) ConfirmWithdrawal(w http.ResponseWriter, r *http.Request) {
	var req dto.ConfirmWithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	wd, err := h.withdrawalService.Confirm(r.Context(), auth.AccountID(r.Context()), chi.URLParam(r, "id"), *req.Received)
	if err != nil {
		RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromWithdrawal(wd))
}
