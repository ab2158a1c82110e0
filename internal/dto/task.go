package dto

import "time"

type TaskResponseDTO struct {
	ID            string     `json:"id" example:"6f1a2c3e-0001-4a5b-9c1d-000000000001"`
	Title         string     `json:"title" example:"Install Cred App"`
	Description   string     `json:"description" example:"Install and open the app"`
	Link          string     `json:"link" example:"https://play.google.com/store/apps/details?id=com.dreamplug.androidapp"`
	Reward        int64      `json:"reward" example:"150"`
	DiamondReward int64      `json:"diamond_reward" example:"5"`
	IsSpecial     bool       `json:"is_special" example:"false"`
	HideUntil     *time.Time `json:"hide_until,omitempty"`
}

// AdminTaskResponseDTO exposes the proof fields and is only served to admins.
type AdminTaskResponseDTO struct {
	TaskResponseDTO
	Password    string `json:"password" example:"cred"`
	PackageName string `json:"package_name" example:""`
}

type TaskRequestDTO struct {
	Title         string     `json:"title" validate:"required,max=255" example:"Install Cred App"`
	Description   string     `json:"description" validate:"max=2000" example:"Install and open the app"`
	Link          string     `json:"link" validate:"required,url" example:"https://play.google.com/store/apps/details?id=com.dreamplug.androidapp"`
	Reward        int64      `json:"reward" validate:"gte=0" example:"150"`
	DiamondReward int64      `json:"diamond_reward" validate:"gte=0" example:"5"`
	IsSpecial     bool       `json:"is_special" example:"false"`
	Password      string     `json:"password" validate:"max=255" example:"cred"`
	PackageName   string     `json:"package_name" validate:"max=255" example:""`
	HideUntil     *time.Time `json:"hide_until,omitempty"`
}

type VerifyTaskRequestDTO struct {
	Proof string `json:"proof" validate:"required,max=255" example:"cred"`
}

type StartTaskResponseDTO struct {
	Link string `json:"link" example:"https://play.google.com/store/apps/details?id=com.dreamplug.androidapp"`
}

type TaskProgressResponseDTO struct {
	TaskID      string     `json:"task_id" example:"6f1a2c3e-0001-4a5b-9c1d-000000000001"`
	TaskTitle   string     `json:"task_title" example:"Install Cred App"`
	Status      string     `json:"status" example:"COMPLETED"`
	StartedAt   time.Time  `json:"started_at" example:"2024-12-09T16:09:57Z"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type TaskStatsResponseDTO struct {
	TaskID    string `json:"task_id" example:"6f1a2c3e-0001-4a5b-9c1d-000000000001"`
	Title     string `json:"title" example:"Install Cred App"`
	Completed int    `json:"completed" example:"12"`
	Failed    int    `json:"failed" example:"3"`
}
