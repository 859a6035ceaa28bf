package ingest

import (
	"context"

	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/ingest"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/ledger"
)

// TransactionScope provides transactional access to the repositories a batch
// processing run writes to. Everything a run produces, ledger events, row
// state and batch counters, commits or rolls back as one unit.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the processing repositories
// within a transaction. All repositories share the same underlying transaction.
type TransactionalRepositories interface {
	BatchRepo() ingest.BatchRepository
	RowRepo() ingest.RowRepository
	AccountRepo() ledger.AccountRepository
	LotRepo() ledger.PurchaseLotRepository
	BonusRepo() ledger.BonusRepository
	SaleRepo() ledger.SaleRepository
}

// NoOpTransactionScope runs the function directly against the wrapped
// repositories without a real transaction. Used in tests.
type NoOpTransactionScope struct {
	batchRepo   ingest.BatchRepository
	rowRepo     ingest.RowRepository
	accountRepo ledger.AccountRepository
	lotRepo     ledger.PurchaseLotRepository
	bonusRepo   ledger.BonusRepository
	saleRepo    ledger.SaleRepository
}

func NewNoOpTransactionScope(
	batchRepo ingest.BatchRepository,
	rowRepo ingest.RowRepository,
	accountRepo ledger.AccountRepository,
	lotRepo ledger.PurchaseLotRepository,
	bonusRepo ledger.BonusRepository,
	saleRepo ledger.SaleRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		batchRepo:   batchRepo,
		rowRepo:     rowRepo,
		accountRepo: accountRepo,
		lotRepo:     lotRepo,
		bonusRepo:   bonusRepo,
		saleRepo:    saleRepo,
	}
}

func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) BatchRepo() ingest.BatchRepository     { return s.batchRepo }
func (s *NoOpTransactionScope) RowRepo() ingest.RowRepository         { return s.rowRepo }
func (s *NoOpTransactionScope) AccountRepo() ledger.AccountRepository { return s.accountRepo }
func (s *NoOpTransactionScope) LotRepo() ledger.PurchaseLotRepository { return s.lotRepo }
func (s *NoOpTransactionScope) BonusRepo() ledger.BonusRepository     { return s.bonusRepo }
func (s *NoOpTransactionScope) SaleRepo() ledger.SaleRepository       { return s.saleRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
