package models

import (
	"time"
)

// EventType identifies the kind of ledger event.
type EventType string

const (
	EventPoolCreated        EventType = "POOL_CREATED"
	EventFundsAdded         EventType = "FUNDS_ADDED"
	EventLoanCreated        EventType = "LOAN_CREATED"
	EventLoanRepaid         EventType = "LOAN_REPAID"
	EventCreditScoreUpdated EventType = "CREDIT_SCORE_UPDATED"
)

// Event is the envelope for every observable ledger event. Exactly one event
// is emitted per state-mutating operation, after the mutation is applied.
// The Id is assigned at emission time and keys the audit index.
type Event struct {
	Id        string    `json:"id" dynamodbav:"id"`
	Type      EventType `json:"type" dynamodbav:"type"`
	EmittedAt time.Time `json:"emitted_at" dynamodbav:"emitted_at"`

	PoolCreated        *PoolCreated        `json:"pool_created,omitempty" dynamodbav:"pool_created,omitempty"`
	FundsAdded         *FundsAdded         `json:"funds_added,omitempty" dynamodbav:"funds_added,omitempty"`
	LoanCreated        *LoanCreated        `json:"loan_created,omitempty" dynamodbav:"loan_created,omitempty"`
	LoanRepaid         *LoanRepaid         `json:"loan_repaid,omitempty" dynamodbav:"loan_repaid,omitempty"`
	CreditScoreUpdated *CreditScoreUpdated `json:"credit_score_updated,omitempty" dynamodbav:"credit_score_updated,omitempty"`
}

// PoolCreated is emitted when the administrator creates a new risk pool.
type PoolCreated struct {
	PoolId       uint64 `json:"pool_id" dynamodbav:"pool_id"`
	RiskLevel    uint64 `json:"risk_level" dynamodbav:"risk_level"`
	InitialFunds uint64 `json:"initial_funds" dynamodbav:"initial_funds"`
}

// FundsAdded is emitted when any caller tops up a pool.
type FundsAdded struct {
	PoolId uint64 `json:"pool_id" dynamodbav:"pool_id"`
	Amount uint64 `json:"amount" dynamodbav:"amount"`
}

// LoanCreated is emitted when a loan is issued against a pool.
type LoanCreated struct {
	LoanId   uint64    `json:"loan_id" dynamodbav:"loan_id"`
	Borrower string    `json:"borrower" dynamodbav:"borrower"`
	Amount   uint64    `json:"amount" dynamodbav:"amount"`
	DueDate  time.Time `json:"due_date" dynamodbav:"due_date"`
	PoolId   uint64    `json:"pool_id" dynamodbav:"pool_id"`
}

// LoanRepaid is emitted when a loan transitions to repaid.
type LoanRepaid struct {
	LoanId   uint64 `json:"loan_id" dynamodbav:"loan_id"`
	Borrower string `json:"borrower" dynamodbav:"borrower"`
	Amount   uint64 `json:"amount" dynamodbav:"amount"`
}

// CreditScoreUpdated is emitted when an identity's credit score changes.
type CreditScoreUpdated struct {
	Identity string `json:"identity" dynamodbav:"identity"`
	NewScore uint64 `json:"new_score" dynamodbav:"new_score"`
}
