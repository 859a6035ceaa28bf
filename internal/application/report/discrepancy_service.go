package report

import (
	"context"
	"time"

	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/ledger"
	"go.uber.org/zap"
)

// DiscrepancyService runs staff profit checks and keeps the latest snapshot.
type DiscrepancyService struct {
	summaries       *SummaryService
	discrepancyRepo ledger.DiscrepancyRepository
	logger          *zap.Logger
	now             func() time.Time
}

func NewDiscrepancyService(
	summaries *SummaryService,
	discrepancyRepo ledger.DiscrepancyRepository,
	logger *zap.Logger,
) *DiscrepancyService {
	return &DiscrepancyService{
		summaries:       summaries,
		discrepancyRepo: discrepancyRepo,
		logger:          logger,
		now:             time.Now,
	}
}

// RunCheck recomputes every label's discrepancy and replaces the stored
// snapshot. The previous snapshot disappears with it; checks are cheap enough
// to rerun that keeping history buys nothing but stale rows.
func (s *DiscrepancyService) RunCheck(ctx context.Context) ([]*ledger.Discrepancy, error) {
	summaries, err := s.summaries.SummarizeAll(ctx)
	if err != nil {
		return nil, err
	}

	discrepancies := ledger.CheckDiscrepancies(summaries, s.now().UTC())
	if err := s.discrepancyRepo.ReplaceAll(ctx, discrepancies); err != nil {
		return nil, err
	}

	flagged := 0
	for _, d := range discrepancies {
		if d.Flagged {
			flagged++
		}
	}
	s.logger.Info("discrepancy check completed",
		zap.Int("checked", len(discrepancies)),
		zap.Int("flagged", flagged))
	return discrepancies, nil
}

// List returns the latest snapshot, optionally only the flagged labels.
func (s *DiscrepancyService) List(ctx context.Context, flaggedOnly bool) ([]*ledger.Discrepancy, error) {
	if flaggedOnly {
		return s.discrepancyRepo.FindFlagged(ctx)
	}
	return s.discrepancyRepo.FindAll(ctx)
}
