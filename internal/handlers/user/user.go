package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/zearn/internal/domain"
	"github.com/GlebRadaev/zearn/internal/dto"
	"github.com/GlebRadaev/zearn/pkg/auth"
	"github.com/GlebRadaev/zearn/pkg/utils"
)

type AccountService interface {
	Profile(ctx context.Context, accountID string) (*domain.Account, error)
	Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
}

type LedgerService interface {
	ClaimDaily(ctx context.Context, accountID string) (domain.Result, error)
	DailyClaimed(ctx context.Context, accountID string) (bool, int64, error)
	EnterJackpot(ctx context.Context, accountID string) (*domain.JackpotEntry, error)
	JackpotEntries(ctx context.Context) ([]domain.JackpotEntry, error)
}

type UserHandler struct {
	accountService AccountService
	ledgerService  LedgerService
}

func New(accountService AccountService, ledgerService LedgerService) *UserHandler {
	return &UserHandler{
		accountService: accountService,
		ledgerService:  ledgerService,
	}
}

func respondWithLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Profile godoc
//
//	@Summary		Get current account
//	@Description	Profile, balances and counters of the authenticated account
//	@Tags			User
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProfileResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/profile [get]
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	account, err := h.accountService.Profile(r.Context(), auth.AccountID(r.Context()))
	if err != nil {
		respondWithLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromAccount(account))
}

// Leaderboard godoc
//
//	@Summary		Top accounts by balance
//	@Tags			User
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.LeaderboardEntryDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/leaderboard [get]
func (h *UserHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.accountService.Leaderboard(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromLeaderboard(entries))
}

// DailyStatus godoc
//
//	@Summary		Daily bonus status
//	@Description	Whether today's bonus was already claimed and how much it pays
//	@Tags			User
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.DailyStatusResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/daily [get]
func (h *UserHandler) DailyStatus(w http.ResponseWriter, r *http.Request) {
	claimed, amount, err := h.ledgerService.DailyClaimed(r.Context(), auth.AccountID(r.Context()))
	if err != nil {
		respondWithLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DailyStatusResponseDTO{Claimed: claimed, Amount: amount})
}

// ClaimDaily godoc
//
//	@Summary		Claim the daily bonus
//	@Description	Credits the daily bonus once per UTC day. A second claim reports success=false.
//	@Tags			User
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ResultResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/daily/claim [post]
func (h *UserHandler) ClaimDaily(w http.ResponseWriter, r *http.Request) {
	result, err := h.ledgerService.ClaimDaily(r.Context(), auth.AccountID(r.Context()))
	if err != nil {
		respondWithLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromResult(result))
}

// Jackpot godoc
//
//	@Summary		Current jackpot entries
//	@Tags			User
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.JackpotEntryResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/jackpot [get]
func (h *UserHandler) Jackpot(w http.ResponseWriter, r *http.Request) {
	entries, err := h.ledgerService.JackpotEntries(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromJackpotEntries(entries))
}

// EnterJackpot godoc
//
//	@Summary		Enter this month's jackpot
//	@Description	Debits the entry fee from the balance and records an entry
//	@Tags			User
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.JackpotEntryResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		402	{object}	utils.Response	"Insufficient balance"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/jackpot/enter [post]
func (h *UserHandler) EnterJackpot(w http.ResponseWriter, r *http.Request) {
	entry, err := h.ledgerService.EnterJackpot(r.Context(), auth.AccountID(r.Context()))
	if err != nil {
		respondWithLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromJackpotEntry(entry))
}
