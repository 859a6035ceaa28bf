package models

import (
	"time"

	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountModel is the persistence model for the Account aggregate.
type AccountModel struct {
	AggregateModel
	Label    string               `gorm:"type:varchar(255);uniqueIndex;not null"`
	Email    string               `gorm:"type:varchar(255)"`
	Supplier string               `gorm:"type:varchar(255)"`
	Status   ledger.AccountStatus `gorm:"type:varchar(16);not null;default:'active'"`
}

func (AccountModel) TableName() string {
	return "accounts"
}

func (m *AccountModel) ToDomain() *ledger.Account {
	return &ledger.Account{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Label:             m.Label,
		Email:             m.Email,
		Supplier:          m.Supplier,
		Status:            m.Status,
	}
}

func AccountModelFromDomain(a *ledger.Account) *AccountModel {
	m := &AccountModel{
		Label:    a.Label,
		Email:    a.Email,
		Supplier: a.Supplier,
		Status:   a.Status,
	}
	m.FromDomainAggregateRoot(a.BaseAggregateRoot)
	return m
}

// PurchaseLotModel is the persistence model for gold purchase events.
type PurchaseLotModel struct {
	AggregateModel
	AccountID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_purchase_lots_account"`
	Label       string          `gorm:"type:varchar(255);not null;index"`
	BatchID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_purchase_lots_batch"`
	RowNumber   int             `gorm:"not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(20,6);not null"`
	Rate        decimal.Decimal `gorm:"type:decimal(20,6);not null"`
	Cost        decimal.Decimal `gorm:"type:decimal(20,6);not null"`
	PurchasedAt *time.Time      `gorm:"type:timestamptz"`
	Platform    string          `gorm:"type:varchar(64)"`
	SheetName   string          `gorm:"type:varchar(128)"`
}

func (PurchaseLotModel) TableName() string {
	return "purchase_lots"
}

func (m *PurchaseLotModel) ToDomain() *ledger.PurchaseLot {
	return &ledger.PurchaseLot{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		AccountID:         m.AccountID,
		Label:             m.Label,
		BatchID:           m.BatchID,
		RowNumber:         m.RowNumber,
		Quantity:          m.Quantity,
		Rate:              m.Rate,
		Cost:              m.Cost,
		PurchasedAt:       m.PurchasedAt,
		Platform:          m.Platform,
		SheetName:         m.SheetName,
	}
}

func PurchaseLotModelFromDomain(l *ledger.PurchaseLot) *PurchaseLotModel {
	m := &PurchaseLotModel{
		AccountID:   l.AccountID,
		Label:       l.Label,
		BatchID:     l.BatchID,
		RowNumber:   l.RowNumber,
		Quantity:    l.Quantity,
		Rate:        l.Rate,
		Cost:        l.Cost,
		PurchasedAt: l.PurchasedAt,
		Platform:    l.Platform,
		SheetName:   l.SheetName,
	}
	m.FromDomainAggregateRoot(l.BaseAggregateRoot)
	return m
}

// SilverBonusGrantModel is the persistence model for silver bonus grants.
type SilverBonusGrantModel struct {
	AggregateModel
	AccountID uuid.UUID       `gorm:"type:uuid;not null;index:idx_bonus_grants_account"`
	Label     string          `gorm:"type:varchar(255);not null;index"`
	BatchID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_bonus_grants_batch"`
	RowNumber int             `gorm:"not null"`
	Quantity  decimal.Decimal `gorm:"type:decimal(20,6);not null"`
	GrantedAt *time.Time      `gorm:"type:timestamptz"`
	Platform  string          `gorm:"type:varchar(64)"`
	SheetName string          `gorm:"type:varchar(128)"`
}

func (SilverBonusGrantModel) TableName() string {
	return "silver_bonus_grants"
}

func (m *SilverBonusGrantModel) ToDomain() *ledger.SilverBonusGrant {
	return &ledger.SilverBonusGrant{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		AccountID:         m.AccountID,
		Label:             m.Label,
		BatchID:           m.BatchID,
		RowNumber:         m.RowNumber,
		Quantity:          m.Quantity,
		GrantedAt:         m.GrantedAt,
		Platform:          m.Platform,
		SheetName:         m.SheetName,
	}
}

func SilverBonusGrantModelFromDomain(g *ledger.SilverBonusGrant) *SilverBonusGrantModel {
	m := &SilverBonusGrantModel{
		AccountID: g.AccountID,
		Label:     g.Label,
		BatchID:   g.BatchID,
		RowNumber: g.RowNumber,
		Quantity:  g.Quantity,
		GrantedAt: g.GrantedAt,
		Platform:  g.Platform,
		SheetName: g.SheetName,
	}
	m.FromDomainAggregateRoot(g.BaseAggregateRoot)
	return m
}

// SaleModel is the persistence model for sale events.
type SaleModel struct {
	AggregateModel
	AccountID    uuid.UUID        `gorm:"type:uuid;not null;index:idx_sales_account"`
	Label        string           `gorm:"type:varchar(255);not null;index"`
	BatchID      uuid.UUID        `gorm:"type:uuid;not null;index:idx_sales_batch"`
	RowNumber    int              `gorm:"not null"`
	Kind         ledger.SaleKind  `gorm:"type:varchar(8);not null"`
	Quantity     decimal.Decimal  `gorm:"type:decimal(20,6);not null"`
	Rate         decimal.Decimal  `gorm:"type:decimal(20,6);not null"`
	Amount       decimal.Decimal  `gorm:"type:decimal(20,6);not null"`
	CustomerCode string           `gorm:"type:varchar(64)"`
	StaffProfit  *decimal.Decimal `gorm:"type:decimal(20,6)"`
	SoldAt       *time.Time       `gorm:"type:timestamptz"`
	Platform     string           `gorm:"type:varchar(64)"`
	SheetName    string           `gorm:"type:varchar(128)"`
}

func (SaleModel) TableName() string {
	return "sales"
}

func (m *SaleModel) ToDomain() *ledger.Sale {
	return &ledger.Sale{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		AccountID:         m.AccountID,
		Label:             m.Label,
		BatchID:           m.BatchID,
		RowNumber:         m.RowNumber,
		Kind:              m.Kind,
		Quantity:          m.Quantity,
		Rate:              m.Rate,
		Amount:            m.Amount,
		CustomerCode:      m.CustomerCode,
		StaffProfit:       m.StaffProfit,
		SoldAt:            m.SoldAt,
		Platform:          m.Platform,
		SheetName:         m.SheetName,
	}
}

func SaleModelFromDomain(s *ledger.Sale) *SaleModel {
	m := &SaleModel{
		AccountID:    s.AccountID,
		Label:        s.Label,
		BatchID:      s.BatchID,
		RowNumber:    s.RowNumber,
		Kind:         s.Kind,
		Quantity:     s.Quantity,
		Rate:         s.Rate,
		Amount:       s.Amount,
		CustomerCode: s.CustomerCode,
		StaffProfit:  s.StaffProfit,
		SoldAt:       s.SoldAt,
		Platform:     s.Platform,
		SheetName:    s.SheetName,
	}
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	return m
}

// DiscrepancyModel is the persistence model for the discrepancy snapshot.
type DiscrepancyModel struct {
	BaseModel
	Label            string          `gorm:"type:varchar(255);not null;index"`
	CalculatedProfit decimal.Decimal `gorm:"type:decimal(20,6);not null"`
	StaffProfit      decimal.Decimal `gorm:"type:decimal(20,6);not null"`
	Difference       decimal.Decimal `gorm:"type:decimal(20,6);not null"`
	Ratio            decimal.Decimal `gorm:"type:decimal(20,6);not null"`
	Flagged          bool            `gorm:"not null;default:false;index"`
	CheckedAt        time.Time       `gorm:"type:timestamptz;not null"`
}

func (DiscrepancyModel) TableName() string {
	return "discrepancies"
}

func (m *DiscrepancyModel) ToDomain() *ledger.Discrepancy {
	return &ledger.Discrepancy{
		BaseEntity:       m.BaseModel.ToDomain(),
		Label:            m.Label,
		CalculatedProfit: m.CalculatedProfit,
		StaffProfit:      m.StaffProfit,
		Difference:       m.Difference,
		Ratio:            m.Ratio,
		Flagged:          m.Flagged,
		CheckedAt:        m.CheckedAt,
	}
}

func DiscrepancyModelFromDomain(d *ledger.Discrepancy) *DiscrepancyModel {
	m := &DiscrepancyModel{
		Label:            d.Label,
		CalculatedProfit: d.CalculatedProfit,
		StaffProfit:      d.StaffProfit,
		Difference:       d.Difference,
		Ratio:            d.Ratio,
		Flagged:          d.Flagged,
		CheckedAt:        d.CheckedAt,
	}
	m.FromDomainBaseEntity(d.BaseEntity)
	return m
}
