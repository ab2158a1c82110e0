package domain

import "time"

type Account struct {
	ID                      string     `db:"id"`
	Email                   string     `db:"email"`
	PasswordHash            string     `db:"password_hash"`
	Name                    string     `db:"name"`
	Mobile                  string     `db:"mobile"`
	Gender                  string     `db:"gender"`
	DOB                     string     `db:"dob"`
	District                string     `db:"district"`
	State                   string     `db:"state"`
	Country                 string     `db:"country"`
	ReferralCode            string     `db:"referral_code"`
	ReferredBy              string     `db:"referred_by"`
	Balance                 int64      `db:"balance"`
	Diamonds                int64      `db:"diamonds"`
	LifetimeEarnings        int64      `db:"lifetime_earnings"`
	LifetimeDiamondEarnings int64      `db:"lifetime_diamond_earnings"`
	TotalTasks              int        `db:"total_tasks"`
	TotalSpecialTasks       int        `db:"total_special_tasks"`
	Level                   int        `db:"level"`
	IsAdmin                 bool       `db:"is_admin"`
	IsBanned                bool       `db:"is_banned"`
	LastDailyClaim          *time.Time `db:"last_daily_claim"`
	CreatedAt               time.Time  `db:"created_at"`
}

type Task struct {
	ID            string     `db:"id"`
	Title         string     `db:"title"`
	Description   string     `db:"description"`
	Link          string     `db:"link"`
	Reward        int64      `db:"reward"`
	DiamondReward int64      `db:"diamond_reward"`
	IsSpecial     bool       `db:"is_special"`
	Password      string     `db:"password"`
	PackageName   string     `db:"package_name"`
	HideUntil     *time.Time `db:"hide_until"`
	CreatedAt     time.Time  `db:"created_at"`
}

// Visible reports whether participants may see the task at now.
func (t Task) Visible(now time.Time) bool {
	return t.HideUntil == nil || !t.HideUntil.After(now)
}

type CompletionStatus string

const (
	CompletionInProcess CompletionStatus = "IN_PROCESS"
	CompletionCompleted CompletionStatus = "COMPLETED"
	CompletionFailed    CompletionStatus = "FAILED"
)

type TaskCompletion struct {
	AccountID   string           `db:"account_id"`
	TaskID      string           `db:"task_id"`
	TaskTitle   string           `db:"task_title"`
	Status      CompletionStatus `db:"status"`
	StartedAt   time.Time        `db:"started_at"`
	CompletedAt *time.Time       `db:"completed_at"`
}

type WithdrawalStatus string

const (
	WithdrawalPending     WithdrawalStatus = "PENDING"
	WithdrawalPaidByAdmin WithdrawalStatus = "PAID_BY_ADMIN"
	WithdrawalCompleted   WithdrawalStatus = "COMPLETED"
	WithdrawalRejected    WithdrawalStatus = "REJECTED"
)

type Withdrawal struct {
	ID          string           `db:"id"`
	AccountID   string           `db:"account_id"`
	Amount      int64            `db:"amount"`
	Method      string           `db:"method"`
	Details     string           `db:"details"`
	Status      WithdrawalStatus `db:"status"`
	RequestedAt time.Time        `db:"requested_at"`
	UpdatedAt   time.Time        `db:"updated_at"`
}

var PayoutMethods = []string{
	"UPI",
	"Bank Transfer",
	"Amazon Gift Card",
	"Flipkart Gift Card",
	"Play Store Redeem",
	"WhatsApp Pay",
}

func IsPayoutMethod(method string) bool {
	for _, m := range PayoutMethods {
		if m == method {
			return true
		}
	}
	return false
}

type Settings struct {
	TapCount          int       `db:"tap_count"`
	AdminPasswordHash string    `db:"admin_password_hash"`
	DailyClaimAmount  int64     `db:"daily_claim_amount"`
	MinWithdrawal     int64     `db:"min_withdrawal"`
	JackpotEntryFee   int64     `db:"jackpot_entry_fee"`
	UpdatedAt         time.Time `db:"updated_at"`
}

func DefaultSettings() Settings {
	return Settings{
		TapCount:         5,
		DailyClaimAmount: 10,
		MinWithdrawal:    50,
		JackpotEntryFee:  20,
	}
}

type JackpotEntry struct {
	ID          string    `db:"id"`
	AccountID   string    `db:"account_id"`
	Name        string    `db:"name"`
	AmountSpent int64     `db:"amount_spent"`
	Month       string    `db:"month"`
	CreatedAt   time.Time `db:"created_at"`
}

type TaskStats struct {
	TaskID    string `db:"task_id"`
	Title     string `db:"title"`
	Completed int    `db:"completed"`
	Failed    int    `db:"failed"`
}

type LeaderboardEntry struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Balance   int64  `json:"balance"`
	Level     int    `json:"level"`
}

type Dashboard struct {
	Accounts    []Account
	Tasks       []Task
	Withdrawals []Withdrawal
	Stats       []TaskStats
	Settings    Settings
}

// Result is the outcome of an operation whose failure is an expected
// business answer rather than an error.
type Result struct {
	Success bool
	Message string
}

// Grant is a reward paid out for one completed task.
type Grant struct {
	AccountID     string
	TaskID        string
	TaskTitle     string
	Reward        int64
	DiamondReward int64
	Special       bool
}

// Transition is the effect of a withdrawal status change. A zero To means no change.
type Transition struct {
	To     WithdrawalStatus
	Refund bool
}

type Registration struct {
	Email      string
	Password   string
	Name       string
	Mobile     string
	Gender     string
	DOB        string
	District   string
	State      string
	Country    string
	ReferredBy string
}

type SettingsUpdate struct {
	TapCount         int
	DailyClaimAmount int64
	MinWithdrawal    int64
	JackpotEntryFee  int64
	AdminPassword    string
}
