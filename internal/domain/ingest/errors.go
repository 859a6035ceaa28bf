package ingest

import (
	"fmt"

	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/shared"
)

// Batch-scoped processing failures. These abort the whole run before any row
// is touched, as opposed to row errors which are recorded per row.

// ErrNoMappingDefined aborts processing of a batch with no mapping set.
func ErrNoMappingDefined(batchCode string) *shared.DomainError {
	return shared.NewDomainError("NO_MAPPING_DEFINED",
		fmt.Sprintf("Batch %s has no field mappings defined", batchCode))
}

// ErrUnsupportedBatchKind aborts processing of a batch whose kind produces no
// ledger events.
func ErrUnsupportedBatchKind(batchCode string, kind BatchKind) *shared.DomainError {
	return shared.NewDomainError("UNSUPPORTED_BATCH_KIND",
		fmt.Sprintf("Batch %s has kind '%s' which cannot be processed", batchCode, kind))
}

// ErrBatchInFlight rejects a processing request while another run holds the
// batch lock.
func ErrBatchInFlight(batchCode string) *shared.DomainError {
	return shared.NewDomainError("BATCH_IN_FLIGHT",
		fmt.Sprintf("Batch %s is already being processed", batchCode))
}

// ErrUnknownAccount marks a sale or bonus row whose label has no account in
// the ledger. Row-scoped, unlike the errors above: only purchase rows may
// introduce new labels, because sales must be backed by prior inventory.
func ErrUnknownAccount(label string) *shared.DomainError {
	return shared.NewDomainError("UNKNOWN_ACCOUNT",
		fmt.Sprintf("No account exists for label '%s'", label))
}
