package domain

import "errors"

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrWithdrawalNotFound  = errors.New("withdrawal request not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidTransition   = errors.New("invalid withdrawal status transition")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrEmailTaken          = errors.New("email already registered")
	ErrReferralCodeTaken   = errors.New("referral code already in use")
)
