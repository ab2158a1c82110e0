package settings

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/zearn/internal/domain"
	"github.com/GlebRadaev/zearn/internal/dto"
	"github.com/GlebRadaev/zearn/pkg/utils"
	"github.com/GlebRadaev/zearn/pkg/validate"
)

type Service interface {
	Current() domain.Settings
	Update(ctx context.Context, upd domain.SettingsUpdate) (domain.Settings, error)
}

type SettingsHandler struct {
	settingsService Service
}

func New(settingsService Service) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// GetSettings godoc
//
//	@Summary		Platform settings
//	@Description	Tap count, daily bonus, minimum withdrawal and jackpot fee. The admin password is never returned.
//	@Tags			Settings
//	@Produce		json
//	@Success		200	{object}	dto.SettingsResponseDTO
//	@Router			/api/settings [get]
//	@Router			/api/admin/settings [get]
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dto.FromSettings(h.settingsService.Current()))
}

// UpdateSettings godoc
//
//	@Summary		Update platform settings
//	@Description	A non-empty admin_password replaces the operator password
//	@Tags			Settings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateSettingsRequestDTO	true	"Settings"
//	@Success		200		{object}	dto.SettingsResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/settings [put]
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateSettingsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	updated, err := h.settingsService.Update(r.Context(), req.ToUpdate())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromSettings(updated))
}
