package models

import (
	"time"
)

// Credit score bounds. Scores are clamped to [MinCreditScore, MaxCreditScore]
// on every update; identities that were never updated read as InitialCreditScore.
const (
	MinCreditScore     uint64 = 300
	MaxCreditScore     uint64 = 850
	InitialCreditScore uint64 = 500
)

// Risk level bounds for pools.
const (
	MinRiskLevel uint64 = 1
	MaxRiskLevel uint64 = 100
)

// RiskPool is a bucket of capital with a risk affinity level, from which
// loans are funded. Ids are dense and zero-based. RiskLevel is immutable
// after creation. TotalFunds only ever grows (deposits); AvailableFunds
// moves between 0 and TotalFunds as loans are issued and repaid.
type RiskPool struct {
	Id             uint64 `json:"id"`
	TotalFunds     uint64 `json:"total_funds"`
	AvailableFunds uint64 `json:"available_funds"`
	RiskLevel      uint64 `json:"risk_level"`
}

// Loan represents a single funded loan. Immutable once created except for
// the one-way IsRepaid transition.
type Loan struct {
	Id       uint64    `json:"id"`
	Borrower string    `json:"borrower"`
	Amount   uint64    `json:"amount"`
	DueDate  time.Time `json:"due_date"`
	IsRepaid bool      `json:"is_repaid"`
	PoolId   uint64    `json:"pool_id"`
}

// CreditScore is a bounded reputation number per identity. An absent record
// is semantically a score of InitialCreditScore; records are materialized
// only on first update.
type CreditScore struct {
	Owner     string    `json:"owner"`
	Score     uint64    `json:"score"`
	UpdatedAt time.Time `json:"updated_at"`
}
