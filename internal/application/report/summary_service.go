package report

import (
	"context"

	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/ledger"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/shared"
	"go.uber.org/zap"
)

// SummaryService computes label summaries from the stored ledger events.
type SummaryService struct {
	accountRepo ledger.AccountRepository
	lotRepo     ledger.PurchaseLotRepository
	bonusRepo   ledger.BonusRepository
	saleRepo    ledger.SaleRepository
	logger      *zap.Logger
}

func NewSummaryService(
	accountRepo ledger.AccountRepository,
	lotRepo ledger.PurchaseLotRepository,
	bonusRepo ledger.BonusRepository,
	saleRepo ledger.SaleRepository,
	logger *zap.Logger,
) *SummaryService {
	return &SummaryService{
		accountRepo: accountRepo,
		lotRepo:     lotRepo,
		bonusRepo:   bonusRepo,
		saleRepo:    saleRepo,
		logger:      logger,
	}
}

// ListAccounts pages through the registered accounts without computing
// summaries, for browsing large ledgers.
func (s *SummaryService) ListAccounts(ctx context.Context, filter shared.Filter) (*shared.Paginated[ledger.Account], error) {
	return s.accountRepo.List(ctx, filter)
}

// GetAccount looks one account up by its label.
func (s *SummaryService) GetAccount(ctx context.Context, label string) (*ledger.Account, error) {
	return s.accountRepo.FindByLabel(ctx, label)
}

// SummarizeLabel computes the position of one account.
func (s *SummaryService) SummarizeLabel(ctx context.Context, label string) (*ledger.LabelSummary, error) {
	account, err := s.accountRepo.FindByLabel(ctx, label)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, account)
}

// SummarizeAll computes the position of every account, ordered by label.
func (s *SummaryService) SummarizeAll(ctx context.Context) ([]*ledger.LabelSummary, error) {
	accounts, err := s.accountRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]*ledger.LabelSummary, 0, len(accounts))
	for _, account := range accounts {
		summary, err := s.summarize(ctx, account)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *SummaryService) summarize(ctx context.Context, account *ledger.Account) (*ledger.LabelSummary, error) {
	lots, err := s.lotRepo.FindByAccount(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	bonuses, err := s.bonusRepo.FindByAccount(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	sales, err := s.saleRepo.FindByAccount(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	return ledger.Summarize(account, lots, bonuses, sales), nil
}
