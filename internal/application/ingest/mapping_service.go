package ingest

import (
	"context"

	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/ingest"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/mapping"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MappingService manages the field mapping declarations of batches.
type MappingService struct {
	mappingRepo mapping.Repository
	batchRepo   ingest.BatchRepository
	logger      *zap.Logger
}

func NewMappingService(mappingRepo mapping.Repository, batchRepo ingest.BatchRepository, logger *zap.Logger) *MappingService {
	return &MappingService{
		mappingRepo: mappingRepo,
		batchRepo:   batchRepo,
		logger:      logger,
	}
}

// DefineMappings replaces a batch's entire mapping set. Mappings are declared
// as a whole so the set-level invariants can be checked before anything is
// stored; an invalid set leaves the previous one untouched.
func (s *MappingService) DefineMappings(ctx context.Context, batchID uuid.UUID, inputs []MappingInput) (mapping.Set, error) {
	batch, err := s.batchRepo.FindByID(ctx, batchID)
	if err != nil {
		return nil, err
	}

	set := make(mapping.Set, 0, len(inputs))
	for _, in := range inputs {
		dataType := in.Type
		if dataType == "" {
			dataType = in.Target.DefaultDataType()
		}
		m, err := mapping.NewFieldMapping(batchID, in.SourceColumn, in.Target, dataType, in.Required, in.DefaultValue)
		if err != nil {
			return nil, err
		}
		set = append(set, *m)
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}

	if err := s.mappingRepo.ReplaceForBatch(ctx, batchID, set); err != nil {
		return nil, err
	}

	s.logger.Info("mappings defined",
		zap.String("code", batch.Code),
		zap.Int("mappings", len(set)))
	return set, nil
}

// GetMappings returns a batch's mapping set, empty when none declared yet.
func (s *MappingService) GetMappings(ctx context.Context, batchID uuid.UUID) (mapping.Set, error) {
	if _, err := s.batchRepo.FindByID(ctx, batchID); err != nil {
		return nil, err
	}
	return s.mappingRepo.FindByBatch(ctx, batchID)
}
