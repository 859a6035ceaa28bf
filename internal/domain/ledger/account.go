package ledger

import (
	"fmt"
	"strings"

	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/shared"
)

// AccountStatus is the lifecycle state of a labeled account.
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "active"
	AccountStatusDepleted AccountStatus = "depleted"
	AccountStatusDisabled AccountStatus = "disabled"
)

func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountStatusActive, AccountStatusDepleted, AccountStatusDisabled:
		return true
	}
	return false
}

// Account is one labeled gift card account. The label is the ledger key:
// every purchase lot, bonus grant and sale references an account through it,
// and all inventory and profit figures aggregate per label.
type Account struct {
	shared.BaseAggregateRoot
	Label    string        `json:"label"`
	Email    string        `json:"email"`
	Supplier string        `json:"supplier"`
	Status   AccountStatus `json:"status"`
}

// NewAccount creates an account for a label. Labels are trimmed and must be
// non-empty; uniqueness is enforced by the repository.
func NewAccount(label, email, supplier string) (*Account, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, shared.NewDomainError("INVALID_LABEL", "Account label cannot be empty")
	}
	return &Account{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Label:             label,
		Email:             strings.TrimSpace(email),
		Supplier:          strings.TrimSpace(supplier),
		Status:            AccountStatusActive,
	}, nil
}

// UpdateContact fills in contact details from a newly imported row. Existing
// values are only overwritten by non-empty input, so later rows enrich the
// account without erasing what earlier rows supplied. Returns whether
// anything changed.
func (a *Account) UpdateContact(email, supplier string) bool {
	email = strings.TrimSpace(email)
	supplier = strings.TrimSpace(supplier)
	changed := false
	if email != "" && email != a.Email {
		a.Email = email
		changed = true
	}
	if supplier != "" && supplier != a.Supplier {
		a.Supplier = supplier
		changed = true
	}
	if changed {
		a.Touch()
	}
	return changed
}

// SetStatus transitions the account lifecycle state.
func (a *Account) SetStatus(status AccountStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_ACCOUNT_STATUS", fmt.Sprintf("Invalid account status: %s", status))
	}
	if a.Status != status {
		a.Status = status
		a.Touch()
	}
	return nil
}
