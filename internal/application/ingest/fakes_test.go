package ingest

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/ingest"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/ledger"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/mapping"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/shared"
	"github.com/google/uuid"
)

// Map-backed fakes for the processing pipeline. One transaction scope over
// these gives the full run-a-batch path without a database.

type fakeBatchRepo struct {
	mu      sync.Mutex
	batches map[uuid.UUID]*ingest.ImportBatch
}

func newFakeBatchRepo() *fakeBatchRepo {
	return &fakeBatchRepo{batches: make(map[uuid.UUID]*ingest.ImportBatch)}
}

func (r *fakeBatchRepo) FindByID(_ context.Context, id uuid.UUID) (*ingest.ImportBatch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.batches[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return b, nil
}

func (r *fakeBatchRepo) FindByCode(_ context.Context, code string) (*ingest.ImportBatch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.batches {
		if b.Code == code {
			return b, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeBatchRepo) Save(_ context.Context, b *ingest.ImportBatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches[b.ID] = b
	return nil
}

func (r *fakeBatchRepo) Update(ctx context.Context, b *ingest.ImportBatch) error {
	return r.Save(ctx, b)
}

func (r *fakeBatchRepo) List(_ context.Context, filter shared.Filter) (*shared.Paginated[ingest.ImportBatch], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]ingest.ImportBatch, 0, len(r.batches))
	for _, b := range r.batches {
		items = append(items, *b)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Code < items[j].Code })
	p := shared.NewPaginated(items, int64(len(items)), filter.Page, filter.PageSize)
	return &p, nil
}

type fakeRowRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID][]*ingest.RawRow
}

func newFakeRowRepo() *fakeRowRepo {
	return &fakeRowRepo{rows: make(map[uuid.UUID][]*ingest.RawRow)}
}

func (r *fakeRowRepo) SaveAll(_ context.Context, rows []*ingest.RawRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range rows {
		r.rows[row.BatchID] = append(r.rows[row.BatchID], row)
	}
	return nil
}

func (r *fakeRowRepo) FindByBatch(_ context.Context, batchID uuid.UUID) ([]*ingest.RawRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := append([]*ingest.RawRow(nil), r.rows[batchID]...)
	sort.Slice(rows, func(i, j int) bool { return rows[i].RowNumber < rows[j].RowNumber })
	return rows, nil
}

func (r *fakeRowRepo) Update(_ context.Context, _ *ingest.RawRow) error {
	// rows are shared pointers, mutation is already visible
	return nil
}

func (r *fakeRowRepo) CountByBatch(_ context.Context, batchID uuid.UUID) (int, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total, processed := 0, 0
	for _, row := range r.rows[batchID] {
		total++
		if row.Processed {
			processed++
		}
	}
	return total, processed, nil
}

type fakeMappingRepo struct {
	mu   sync.Mutex
	sets map[uuid.UUID]mapping.Set
}

func newFakeMappingRepo() *fakeMappingRepo {
	return &fakeMappingRepo{sets: make(map[uuid.UUID]mapping.Set)}
}

func (r *fakeMappingRepo) FindByBatch(_ context.Context, batchID uuid.UUID) (mapping.Set, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sets[batchID], nil
}

func (r *fakeMappingRepo) ReplaceForBatch(_ context.Context, batchID uuid.UUID, mappings []mapping.FieldMapping) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sets[batchID] = mappings
	return nil
}

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*ledger.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*ledger.Account)}
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*ledger.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeAccountRepo) FindByLabel(_ context.Context, label string) (*ledger.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[strings.TrimSpace(label)]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return a, nil
}

func (r *fakeAccountRepo) FindAll(_ context.Context) ([]*ledger.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*ledger.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out, nil
}

func (r *fakeAccountRepo) Save(_ context.Context, a *ledger.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.accounts[a.Label]; exists {
		return shared.ErrAlreadyExists
	}
	r.accounts[a.Label] = a
	return nil
}

func (r *fakeAccountRepo) Update(_ context.Context, a *ledger.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[a.Label] = a
	return nil
}

func (r *fakeAccountRepo) List(_ context.Context, filter shared.Filter) (*shared.Paginated[ledger.Account], error) {
	all, _ := r.FindAll(context.Background())
	items := make([]ledger.Account, len(all))
	for i, a := range all {
		items[i] = *a
	}
	p := shared.NewPaginated(items, int64(len(items)), filter.Page, filter.PageSize)
	return &p, nil
}

type fakeLotRepo struct {
	mu   sync.Mutex
	lots []*ledger.PurchaseLot
}

func (r *fakeLotRepo) Save(_ context.Context, lot *ledger.PurchaseLot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lots = append(r.lots, lot)
	return nil
}

func (r *fakeLotRepo) FindByAccount(_ context.Context, accountID uuid.UUID) ([]*ledger.PurchaseLot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*ledger.PurchaseLot
	for _, l := range r.lots {
		if l.AccountID == accountID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLotRepo) FindAll(_ context.Context) ([]*ledger.PurchaseLot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*ledger.PurchaseLot(nil), r.lots...), nil
}

func (r *fakeLotRepo) DeleteByBatch(_ context.Context, batchID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.lots[:0]
	for _, l := range r.lots {
		if l.BatchID != batchID {
			kept = append(kept, l)
		}
	}
	r.lots = kept
	return nil
}

type fakeBonusRepo struct {
	mu     sync.Mutex
	grants []*ledger.SilverBonusGrant
}

func (r *fakeBonusRepo) Save(_ context.Context, g *ledger.SilverBonusGrant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.grants = append(r.grants, g)
	return nil
}

func (r *fakeBonusRepo) FindByAccount(_ context.Context, accountID uuid.UUID) ([]*ledger.SilverBonusGrant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*ledger.SilverBonusGrant
	for _, g := range r.grants {
		if g.AccountID == accountID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeBonusRepo) FindAll(_ context.Context) ([]*ledger.SilverBonusGrant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*ledger.SilverBonusGrant(nil), r.grants...), nil
}

func (r *fakeBonusRepo) DeleteByBatch(_ context.Context, batchID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.grants[:0]
	for _, g := range r.grants {
		if g.BatchID != batchID {
			kept = append(kept, g)
		}
	}
	r.grants = kept
	return nil
}

type fakeSaleRepo struct {
	mu    sync.Mutex
	sales []*ledger.Sale
}

func (r *fakeSaleRepo) Save(_ context.Context, s *ledger.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales = append(r.sales, s)
	return nil
}

func (r *fakeSaleRepo) FindByAccount(_ context.Context, accountID uuid.UUID) ([]*ledger.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*ledger.Sale
	for _, s := range r.sales {
		if s.AccountID == accountID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) FindAll(_ context.Context) ([]*ledger.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*ledger.Sale(nil), r.sales...), nil
}

func (r *fakeSaleRepo) DeleteByBatch(_ context.Context, batchID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.sales[:0]
	for _, s := range r.sales {
		if s.BatchID != batchID {
			kept = append(kept, s)
		}
	}
	r.sales = kept
	return nil
}

type fakeSequenceRepo struct {
	mu   sync.Mutex
	next map[string]int64
}

func newFakeSequenceRepo() *fakeSequenceRepo {
	return &fakeSequenceRepo{next: make(map[string]int64)}
}

func (r *fakeSequenceRepo) Next(_ context.Context, scope string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next[scope]++
	return r.next[scope], nil
}

type fakeLock struct {
	mu   sync.Mutex
	held map[uuid.UUID]bool
}

func newFakeLock() *fakeLock {
	return &fakeLock{held: make(map[uuid.UUID]bool)}
}

func (l *fakeLock) Acquire(_ context.Context, batchID uuid.UUID) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[batchID] {
		return false, nil
	}
	l.held[batchID] = true
	return true, nil
}

func (l *fakeLock) Release(_ context.Context, batchID uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, batchID)
	return nil
}

// pipeline bundles the fakes behind a NoOp transaction scope for tests.
type pipeline struct {
	batchRepo   *fakeBatchRepo
	rowRepo     *fakeRowRepo
	mappingRepo *fakeMappingRepo
	accountRepo *fakeAccountRepo
	lotRepo     *fakeLotRepo
	bonusRepo   *fakeBonusRepo
	saleRepo    *fakeSaleRepo
	seqRepo     *fakeSequenceRepo
	lock        *fakeLock
	scope       *NoOpTransactionScope
}

func newPipeline() *pipeline {
	p := &pipeline{
		batchRepo:   newFakeBatchRepo(),
		rowRepo:     newFakeRowRepo(),
		mappingRepo: newFakeMappingRepo(),
		accountRepo: newFakeAccountRepo(),
		lotRepo:     &fakeLotRepo{},
		bonusRepo:   &fakeBonusRepo{},
		saleRepo:    &fakeSaleRepo{},
		seqRepo:     newFakeSequenceRepo(),
		lock:        newFakeLock(),
	}
	p.scope = NewNoOpTransactionScope(p.batchRepo, p.rowRepo, p.accountRepo, p.lotRepo, p.bonusRepo, p.saleRepo)
	return p
}
