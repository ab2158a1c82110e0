package dto

type SettingsResponseDTO struct {
	TapCount         int   `json:"tap_count" example:"5"`
	DailyClaimAmount int64 `json:"daily_claim_amount" example:"10"`
	MinWithdrawal    int64 `json:"min_withdrawal" example:"50"`
	JackpotEntryFee  int64 `json:"jackpot_entry_fee" example:"20"`
}

type UpdateSettingsRequestDTO struct {
	TapCount         int    `json:"tap_count" validate:"gte=1,lte=100" example:"5"`
	DailyClaimAmount int64  `json:"daily_claim_amount" validate:"gte=0" example:"10"`
	MinWithdrawal    int64  `json:"min_withdrawal" validate:"gte=1" example:"50"`
	JackpotEntryFee  int64  `json:"jackpot_entry_fee" validate:"gte=0" example:"20"`
	AdminPassword    string `json:"admin_password,omitempty" validate:"omitempty,min=4,max=72" example:"admin"`
}

type AccountResponseDTO struct {
	ID         string `json:"id" example:"2b1c6c1e-8d7a-4d0e-9f43-0e0b7a9c5f11"`
	Email      string `json:"email" example:"user@zearn.app"`
	Name       string `json:"name" example:"Ravi"`
	Mobile     string `json:"mobile" example:"9876543210"`
	Balance    int64  `json:"balance" example:"150"`
	Diamonds   int64  `json:"diamonds" example:"5"`
	TotalTasks int    `json:"total_tasks" example:"1"`
	IsAdmin    bool   `json:"is_admin" example:"false"`
	IsBanned   bool   `json:"is_banned" example:"false"`
}

type DashboardResponseDTO struct {
	Accounts    []AccountResponseDTO    `json:"accounts"`
	Tasks       []AdminTaskResponseDTO  `json:"tasks"`
	Withdrawals []WithdrawalResponseDTO `json:"withdrawals"`
	Stats       []TaskStatsResponseDTO  `json:"stats"`
	Settings    SettingsResponseDTO     `json:"settings"`
}
