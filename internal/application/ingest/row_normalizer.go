package ingest

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/ingest"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/ledger"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/mapping"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// rowNormalizer turns raw rows into ledger events during one processing run.
// It caches accounts by label so a batch touching the same label hundreds of
// times does one lookup, and so contact updates within a run stay coherent.
type rowNormalizer struct {
	repos    TransactionalRepositories
	batch    *ingest.ImportBatch
	mappings mapping.Set
	accounts map[string]*ledger.Account
}

func newRowNormalizer(repos TransactionalRepositories, batch *ingest.ImportBatch, mappings mapping.Set) *rowNormalizer {
	return &rowNormalizer{
		repos:    repos,
		batch:    batch,
		mappings: mappings,
		accounts: make(map[string]*ledger.Account),
	}
}

// processRow converts one row into ledger events according to the batch kind.
// A returned error is a row error: it is recorded on the row and the run
// continues with the next one.
func (n *rowNormalizer) processRow(ctx context.Context, row *ingest.RawRow) error {
	switch n.batch.Kind {
	case ingest.BatchKindPurchase:
		return n.processPurchase(ctx, row)
	case ingest.BatchKindSale:
		return n.processSale(ctx, row)
	case ingest.BatchKindBonus:
		return n.processBonus(ctx, row)
	default:
		return ingest.ErrUnsupportedBatchKind(n.batch.Code, n.batch.Kind)
	}
}

// processPurchase is the only path that may introduce a new account label.
// The account identifier is the sole fatal field; a row without a quantity
// still updates contact details, and a row carrying a silver bonus quantity
// yields a bonus grant alongside the purchase lot.
func (n *rowNormalizer) processPurchase(ctx context.Context, row *ingest.RawRow) error {
	label, err := n.mappings.ExtractRequired(row.Data, mapping.TargetLabel)
	if err != nil {
		return err
	}
	qty, err := n.extractDecimalPtr(row.Data, mapping.TargetPurchaseQuantity)
	if err != nil {
		return err
	}
	rate, err := n.extractDecimal(row.Data, mapping.TargetPurchaseRate)
	if err != nil {
		return err
	}
	cost, err := n.extractDecimal(row.Data, mapping.TargetPurchaseCost)
	if err != nil {
		return err
	}
	bonus, err := n.extractDecimalPtr(row.Data, mapping.TargetSilverBonus)
	if err != nil {
		return err
	}
	purchasedAt, err := n.extractDate(row.Data, mapping.TargetPurchaseDate)
	if err != nil {
		return err
	}
	email, err := n.extractText(row.Data, mapping.TargetEmail)
	if err != nil {
		return err
	}
	supplier, err := n.extractText(row.Data, mapping.TargetSupplier)
	if err != nil {
		return err
	}

	account, err := n.upsertAccount(ctx, label.AsText(), email, supplier)
	if err != nil {
		return err
	}
	if err := n.applyStatus(ctx, account, row.Data); err != nil {
		return err
	}

	if qty != nil {
		lot, err := ledger.NewPurchaseLot(account, n.batch.ID, row.RowNumber,
			*qty, rate, cost, purchasedAt, n.batch.Platform, n.batch.SheetName)
		if err != nil {
			return err
		}
		if err := n.repos.LotRepo().Save(ctx, lot); err != nil {
			return err
		}
	}

	if bonus != nil && !bonus.IsZero() {
		grant, err := ledger.NewSilverBonusGrant(account, n.batch.ID, row.RowNumber,
			*bonus, purchasedAt, n.batch.Platform, n.batch.SheetName)
		if err != nil {
			return err
		}
		if err := n.repos.BonusRepo().Save(ctx, grant); err != nil {
			return err
		}
	}
	return nil
}

func (n *rowNormalizer) processSale(ctx context.Context, row *ingest.RawRow) error {
	label, err := n.mappings.ExtractRequired(row.Data, mapping.TargetLabel)
	if err != nil {
		return err
	}
	qty, err := n.mappings.ExtractRequired(row.Data, mapping.TargetSaleQuantity)
	if err != nil {
		return err
	}
	rate, err := n.mappings.ExtractRequired(row.Data, mapping.TargetSaleRate)
	if err != nil {
		return err
	}

	kindText, err := n.extractText(row.Data, mapping.TargetSaleKind)
	if err != nil {
		return err
	}
	kind, ok := ledger.ParseSaleKind(kindText)
	if !ok {
		return shared.NewDomainError("INVALID_SALE_KIND", "Sale kind must be gold or silver, got '"+kindText+"'")
	}

	customerCode, err := n.extractText(row.Data, mapping.TargetCustomerCode)
	if err != nil {
		return err
	}
	staffProfit, err := n.extractDecimalPtr(row.Data, mapping.TargetStaffProfit)
	if err != nil {
		return err
	}
	soldAt, err := n.extractDate(row.Data, mapping.TargetSaleDate)
	if err != nil {
		return err
	}

	account, err := n.requireAccount(ctx, label.AsText())
	if err != nil {
		return err
	}

	sale, err := ledger.NewSale(account, n.batch.ID, row.RowNumber, kind,
		qty.AsDecimal(), rate.AsDecimal(), customerCode, staffProfit, soldAt, n.batch.Platform, n.batch.SheetName)
	if err != nil {
		return err
	}
	return n.repos.SaleRepo().Save(ctx, sale)
}

func (n *rowNormalizer) processBonus(ctx context.Context, row *ingest.RawRow) error {
	label, err := n.mappings.ExtractRequired(row.Data, mapping.TargetLabel)
	if err != nil {
		return err
	}
	qty, err := n.mappings.ExtractRequired(row.Data, mapping.TargetSilverBonus)
	if err != nil {
		return err
	}
	// bonus sheets carry the grant date in the purchase date column
	grantedAt, err := n.extractDate(row.Data, mapping.TargetPurchaseDate)
	if err != nil {
		return err
	}

	account, err := n.requireAccount(ctx, label.AsText())
	if err != nil {
		return err
	}

	grant, err := ledger.NewSilverBonusGrant(account, n.batch.ID, row.RowNumber,
		qty.AsDecimal(), grantedAt, n.batch.Platform, n.batch.SheetName)
	if err != nil {
		return err
	}
	return n.repos.BonusRepo().Save(ctx, grant)
}

// upsertAccount resolves a purchase row's label to an account, creating it on
// first sight. Contact details from the row enrich the account without
// erasing existing values.
func (n *rowNormalizer) upsertAccount(ctx context.Context, label, email, supplier string) (*ledger.Account, error) {
	key := strings.TrimSpace(label)
	if account, ok := n.accounts[key]; ok {
		if account.UpdateContact(email, supplier) {
			if err := n.repos.AccountRepo().Update(ctx, account); err != nil {
				return nil, err
			}
		}
		return account, nil
	}

	account, err := n.repos.AccountRepo().FindByLabel(ctx, key)
	switch {
	case err == nil:
		if account.UpdateContact(email, supplier) {
			if err := n.repos.AccountRepo().Update(ctx, account); err != nil {
				return nil, err
			}
		}
	case errors.Is(err, shared.ErrNotFound):
		account, err = ledger.NewAccount(key, email, supplier)
		if err != nil {
			return nil, err
		}
		if err := n.repos.AccountRepo().Save(ctx, account); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	n.accounts[key] = account
	return account, nil
}

// requireAccount resolves a label to an existing account. Sales and bonuses
// must reference inventory established by a prior purchase, so an unseen
// label is a row error rather than an implicit account creation.
func (n *rowNormalizer) requireAccount(ctx context.Context, label string) (*ledger.Account, error) {
	key := strings.TrimSpace(label)
	if account, ok := n.accounts[key]; ok {
		return account, nil
	}

	account, err := n.repos.AccountRepo().FindByLabel(ctx, key)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, ingest.ErrUnknownAccount(key)
	}
	if err != nil {
		return nil, err
	}

	n.accounts[key] = account
	return account, nil
}

// applyStatus updates the account lifecycle state when the sheet carries a
// recognized status column. Unrecognized status text is ignored rather than
// failing the row; sheets use it for free-form notes as often as for state.
func (n *rowNormalizer) applyStatus(ctx context.Context, account *ledger.Account, data map[string]string) error {
	text, err := n.extractText(data, mapping.TargetStatus)
	if err != nil || text == "" {
		return err
	}
	status := ledger.AccountStatus(strings.ToLower(strings.TrimSpace(text)))
	if !status.IsValid() || status == account.Status {
		return nil
	}
	if err := account.SetStatus(status); err != nil {
		return err
	}
	return n.repos.AccountRepo().Update(ctx, account)
}

func (n *rowNormalizer) extractText(data map[string]string, target mapping.TargetField) (string, error) {
	v, err := n.mappings.Extract(data, target)
	if err != nil || v.IsNull() {
		return "", err
	}
	return v.AsText(), nil
}

func (n *rowNormalizer) extractDecimal(data map[string]string, target mapping.TargetField) (decimal.Decimal, error) {
	v, err := n.mappings.Extract(data, target)
	if err != nil || v.IsNull() {
		return decimal.Zero, err
	}
	return v.AsDecimal(), nil
}

func (n *rowNormalizer) extractDecimalPtr(data map[string]string, target mapping.TargetField) (*decimal.Decimal, error) {
	v, err := n.mappings.Extract(data, target)
	if err != nil || v.IsNull() {
		return nil, err
	}
	d := v.AsDecimal()
	return &d, nil
}

func (n *rowNormalizer) extractDate(data map[string]string, target mapping.TargetField) (*time.Time, error) {
	v, err := n.mappings.Extract(data, target)
	if err != nil || v.IsNull() {
		return nil, err
	}
	return v.DatePtr(), nil
}
