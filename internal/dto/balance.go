package dto

import "time"

type ProfileResponseDTO struct {
	ID                      string     `json:"id" example:"2b1c6c1e-8d7a-4d0e-9f43-0e0b7a9c5f11"`
	Email                   string     `json:"email" example:"user@zearn.app"`
	Name                    string     `json:"name" example:"Ravi"`
	ReferralCode            string     `json:"referral_code" example:"Z12344"`
	Balance                 int64      `json:"balance" example:"150"`
	Diamonds                int64      `json:"diamonds" example:"5"`
	LifetimeEarnings        int64      `json:"lifetime_earnings" example:"150"`
	LifetimeDiamondEarnings int64      `json:"lifetime_diamond_earnings" example:"5"`
	TotalTasks              int        `json:"total_tasks" example:"1"`
	TotalSpecialTasks       int        `json:"total_special_tasks" example:"0"`
	Level                   int        `json:"level" example:"1"`
	IsAdmin                 bool       `json:"is_admin" example:"false"`
	LastDailyClaim          *time.Time `json:"last_daily_claim,omitempty"`
}

type ResultResponseDTO struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Claimed 10 Coins!"`
}

type DailyStatusResponseDTO struct {
	Claimed bool  `json:"claimed" example:"false"`
	Amount  int64 `json:"amount" example:"10"`
}

type JackpotEntryResponseDTO struct {
	ID          string    `json:"id" example:"0d7d2f57-4d8b-4b89-9e1f-7b7f1a2c9f10"`
	Name        string    `json:"name" example:"Ravi"`
	AvatarChar  string    `json:"avatar_char" example:"R"`
	AmountSpent int64     `json:"amount_spent" example:"20"`
	Month       string    `json:"month" example:"2024-12"`
	CreatedAt   time.Time `json:"created_at" example:"2024-12-09T16:09:57Z"`
}

type CreateWithdrawalRequestDTO struct {
	Amount  int64  `json:"amount" validate:"required,gt=0" example:"150"`
	Method  string `json:"method" validate:"required,payout_method" example:"UPI"`
	Details string `json:"details" validate:"required,max=512" example:"ravi@upi"`
}

type ConfirmWithdrawalRequestDTO struct {
	Received *bool `json:"received" validate:"required" example:"true"`
}

type SetWithdrawalStatusRequestDTO struct {
	Status string `json:"status" validate:"required,oneof=PENDING PAID_BY_ADMIN REJECTED" example:"PAID_BY_ADMIN"`
}

type WithdrawalResponseDTO struct {
	ID          string    `json:"id" example:"5f0c1c8e-3b7a-4f2e-9d6c-1a2b3c4d5e6f"`
	AccountID   string    `json:"account_id" example:"2b1c6c1e-8d7a-4d0e-9f43-0e0b7a9c5f11"`
	Amount      int64     `json:"amount" example:"150"`
	Method      string    `json:"method" example:"UPI"`
	Details     string    `json:"details" example:"ravi@upi"`
	Status      string    `json:"status" example:"PENDING"`
	RequestedAt time.Time `json:"requested_at" example:"2024-12-09T16:09:57Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2024-12-09T16:09:57Z"`
}

type LeaderboardEntryDTO struct {
	Rank      int    `json:"rank" example:"1"`
	AccountID string `json:"account_id" example:"2b1c6c1e-8d7a-4d0e-9f43-0e0b7a9c5f11"`
	Name      string `json:"name" example:"Ravi"`
	Balance   int64  `json:"balance" example:"1500"`
	Level     int    `json:"level" example:"3"`
}
