package ledger

import "errors"

// ErrUnauthorized is returned when the caller lacks the required role, e.g. a
// non-administrator creating a pool or a non-borrower repaying a loan.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInvalidInput is returned for out-of-range or mismatched parameters.
var ErrInvalidInput = errors.New("invalid input")

// ErrNotFound is returned when a pool or loan id does not exist.
var ErrNotFound = errors.New("not found")

// ErrCreditTooLow is returned when the borrower's credit score is below the
// minimum required for issuance.
var ErrCreditTooLow = errors.New("credit score too low")

// ErrNoSuitablePool is returned when no pool has sufficient available funds
// for the requested amount.
var ErrNoSuitablePool = errors.New("no suitable pool")

// ErrInsufficientFunds is returned when the selected pool's available funds
// no longer cover the loan amount at mutation time.
var ErrInsufficientFunds = errors.New("insufficient pool funds")

// ErrAlreadyRepaid is returned when repaying a loan that was already repaid.
var ErrAlreadyRepaid = errors.New("loan already repaid")

// ErrInsufficientPayment is returned when the attached repayment amount is
// less than the loan amount.
var ErrInsufficientPayment = errors.New("insufficient payment")
