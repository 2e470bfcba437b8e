package ledger

// Service defines the root interface for the lending ledger.
// It composes all ledger operations. Components should depend on the more
// granular interfaces (PoolRegistry, LoanBook, CreditReader) instead of this
// one.
type Service interface {
	PoolRegistry
	LoanBook
	CreditReader
}
