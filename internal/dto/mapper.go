package dto

import (
	"strings"
	"unicode/utf8"

	"github.com/GlebRadaev/zearn/internal/domain"
)

func FromAccount(a *domain.Account) ProfileResponseDTO {
	return ProfileResponseDTO{
		ID:                      a.ID,
		Email:                   a.Email,
		Name:                    a.Name,
		ReferralCode:            a.ReferralCode,
		Balance:                 a.Balance,
		Diamonds:                a.Diamonds,
		LifetimeEarnings:        a.LifetimeEarnings,
		LifetimeDiamondEarnings: a.LifetimeDiamondEarnings,
		TotalTasks:              a.TotalTasks,
		TotalSpecialTasks:       a.TotalSpecialTasks,
		Level:                   a.Level,
		IsAdmin:                 a.IsAdmin,
		LastDailyClaim:          a.LastDailyClaim,
	}
}

func FromAccounts(accounts []domain.Account) []AccountResponseDTO {
	out := make([]AccountResponseDTO, len(accounts))
	for i, a := range accounts {
		out[i] = AccountResponseDTO{
			ID:         a.ID,
			Email:      a.Email,
			Name:       a.Name,
			Mobile:     a.Mobile,
			Balance:    a.Balance,
			Diamonds:   a.Diamonds,
			TotalTasks: a.TotalTasks,
			IsAdmin:    a.IsAdmin,
			IsBanned:   a.IsBanned,
		}
	}
	return out
}

func FromResult(r domain.Result) ResultResponseDTO {
	return ResultResponseDTO{Success: r.Success, Message: r.Message}
}

func FromLeaderboard(entries []domain.LeaderboardEntry) []LeaderboardEntryDTO {
	out := make([]LeaderboardEntryDTO, len(entries))
	for i, e := range entries {
		out[i] = LeaderboardEntryDTO{
			Rank:      i + 1,
			AccountID: e.AccountID,
			Name:      e.Name,
			Balance:   e.Balance,
			Level:     e.Level,
		}
	}
	return out
}

func avatarChar(name string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if r == utf8.RuneError {
		return "?"
	}
	return strings.ToUpper(string(r))
}

func FromJackpotEntry(e *domain.JackpotEntry) JackpotEntryResponseDTO {
	return JackpotEntryResponseDTO{
		ID:          e.ID,
		Name:        e.Name,
		AvatarChar:  avatarChar(e.Name),
		AmountSpent: e.AmountSpent,
		Month:       e.Month,
		CreatedAt:   e.CreatedAt,
	}
}

func FromJackpotEntries(entries []domain.JackpotEntry) []JackpotEntryResponseDTO {
	out := make([]JackpotEntryResponseDTO, len(entries))
	for i := range entries {
		out[i] = FromJackpotEntry(&entries[i])
	}
	return out
}

func FromWithdrawal(w *domain.Withdrawal) WithdrawalResponseDTO {
	return WithdrawalResponseDTO{
		ID:          w.ID,
		AccountID:   w.AccountID,
		Amount:      w.Amount,
		Method:      w.Method,
		Details:     w.Details,
		Status:      string(w.Status),
		RequestedAt: w.RequestedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func FromWithdrawals(withdrawals []domain.Withdrawal) []WithdrawalResponseDTO {
	out := make([]WithdrawalResponseDTO, len(withdrawals))
	for i := range withdrawals {
		out[i] = FromWithdrawal(&withdrawals[i])
	}
	return out
}

// FromTask never includes the proof fields.
func FromTask(t *domain.Task) TaskResponseDTO {
	return TaskResponseDTO{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Link:          t.Link,
		Reward:        t.Reward,
		DiamondReward: t.DiamondReward,
		IsSpecial:     t.IsSpecial,
		HideUntil:     t.HideUntil,
	}
}

func FromTasks(tasks []domain.Task) []TaskResponseDTO {
	out := make([]TaskResponseDTO, len(tasks))
	for i := range tasks {
		out[i] = FromTask(&tasks[i])
	}
	return out
}

func FromAdminTask(t *domain.Task) AdminTaskResponseDTO {
	return AdminTaskResponseDTO{
		TaskResponseDTO: FromTask(t),
		Password:        t.Password,
		PackageName:     t.PackageName,
	}
}

func FromAdminTasks(tasks []domain.Task) []AdminTaskResponseDTO {
	out := make([]AdminTaskResponseDTO, len(tasks))
	for i := range tasks {
		out[i] = FromAdminTask(&tasks[i])
	}
	return out
}

func (r TaskRequestDTO) ToTask(id string) domain.Task {
	return domain.Task{
		ID:            id,
		Title:         r.Title,
		Description:   r.Description,
		Link:          r.Link,
		Reward:        r.Reward,
		DiamondReward: r.DiamondReward,
		IsSpecial:     r.IsSpecial,
		Password:      r.Password,
		PackageName:   r.PackageName,
		HideUntil:     r.HideUntil,
	}
}

func FromCompletions(completions []domain.TaskCompletion) []TaskProgressResponseDTO {
	out := make([]TaskProgressResponseDTO, len(completions))
	for i, c := range completions {
		out[i] = TaskProgressResponseDTO{
			TaskID:      c.TaskID,
			TaskTitle:   c.TaskTitle,
			Status:      string(c.Status),
			StartedAt:   c.StartedAt,
			CompletedAt: c.CompletedAt,
		}
	}
	return out
}

func FromTaskStats(stats []domain.TaskStats) []TaskStatsResponseDTO {
	out := make([]TaskStatsResponseDTO, len(stats))
	for i, s := range stats {
		out[i] = TaskStatsResponseDTO{TaskID: s.TaskID, Title: s.Title, Completed: s.Completed, Failed: s.Failed}
	}
	return out
}

func FromSettings(s domain.Settings) SettingsResponseDTO {
	return SettingsResponseDTO{
		TapCount:         s.TapCount,
		DailyClaimAmount: s.DailyClaimAmount,
		MinWithdrawal:    s.MinWithdrawal,
		JackpotEntryFee:  s.JackpotEntryFee,
	}
}

func (r UpdateSettingsRequestDTO) ToUpdate() domain.SettingsUpdate {
	return domain.SettingsUpdate{
		TapCount:         r.TapCount,
		DailyClaimAmount: r.DailyClaimAmount,
		MinWithdrawal:    r.MinWithdrawal,
		JackpotEntryFee:  r.JackpotEntryFee,
		AdminPassword:    r.AdminPassword,
	}
}

func (r RegisterRequestDTO) ToRegistration() domain.Registration {
	return domain.Registration{
		Email:      r.Email,
		Password:   r.Password,
		Name:       r.Name,
		Mobile:     r.Mobile,
		Gender:     r.Gender,
		DOB:        r.DOB,
		District:   r.District,
		State:      r.State,
		Country:    r.Country,
		ReferredBy: r.ReferredBy,
	}
}

func FromDashboard(d *domain.Dashboard) DashboardResponseDTO {
	return DashboardResponseDTO{
		Accounts:    FromAccounts(d.Accounts),
		Tasks:       FromAdminTasks(d.Tasks),
		Withdrawals: FromWithdrawals(d.Withdrawals),
		Stats:       FromTaskStats(d.Stats),
		Settings:    FromSettings(d.Settings),
	}
}
