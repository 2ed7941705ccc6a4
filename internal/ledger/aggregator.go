// Package ledger merges sales, receipt and purchase events into
// chronologically ordered ledger views.
package ledger

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"billmitra/internal/domain"
	"billmitra/internal/port"
)

// Source rank breaks date ties deterministically: sales before receipts
// before purchases. This ordering is part of the contract, not an accident
// of fetch order.
const (
	rankSales = iota
	rankReceipts
	rankPurchases
)

type rankedEntry struct {
	domain.LedgerEntry
	rank int
	seq  int
}

// Aggregator builds party ledgers and day books from the three event
// collections. It holds no state across calls.
type Aggregator struct {
	invoices  port.InvoiceRepository
	payments  port.PaymentRepository
	purchases port.PurchaseRepository
}

// NewAggregator creates a new ledger Aggregator.
func NewAggregator(invoices port.InvoiceRepository, payments port.PaymentRepository, purchases port.PurchaseRepository) *Aggregator {
	return &Aggregator{invoices: invoices, payments: payments, purchases: purchases}
}

// BuildLedger returns the party's ledger for the window, sorted by date with
// a running balance seeded at zero (no carry from prior periods):
// balance[i] = balance[i-1] + debit[i] − credit[i].
//
// If any source fetch fails the whole build fails with an AggregationError;
// a partial ledger with a wrong running balance is never returned.
func (a *Aggregator) BuildLedger(ctx context.Context, tenantID, partyID uuid.UUID, from, to time.Time) ([]domain.LedgerEntry, error) {
	invoices, err := a.invoices.ListByParty(ctx, tenantID, partyID, from, to)
	if err != nil {
		return nil, &domain.AggregationError{Source: "sales", Err: err}
	}
	payments, err := a.payments.ListByParty(ctx, tenantID, partyID, from, to)
	if err != nil {
		return nil, &domain.AggregationError{Source: "receipts", Err: err}
	}
	purchases, err := a.purchases.ListByParty(ctx, tenantID, partyID, from, to)
	if err != nil {
		return nil, &domain.AggregationError{Source: "purchases", Err: err}
	}

	entries := merge(invoices, payments, purchases)
	applyRunningBalance(entries)
	return entries, nil
}

// BuildDayBook returns all transactions of the tenant in the window, same
// merge and ordering as BuildLedger but without a running balance column.
func (a *Aggregator) BuildDayBook(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]domain.LedgerEntry, error) {
	invoices, err := a.invoices.ListByDateRange(ctx, tenantID, from, to)
	if err != nil {
		return nil, &domain.AggregationError{Source: "sales", Err: err}
	}
	payments, err := a.payments.ListByDateRange(ctx, tenantID, from, to)
	if err != nil {
		return nil, &domain.AggregationError{Source: "receipts", Err: err}
	}
	purchases, err := a.purchases.ListByDateRange(ctx, tenantID, from, to)
	if err != nil {
		return nil, &domain.AggregationError{Source: "purchases", Err: err}
	}

	return merge(invoices, payments, purchases), nil
}

// merge maps each event stream to debit/credit entries and sorts the union:
// sales are debits, receipts are credits, purchases are credits and payments
// against purchases are debits.
func merge(invoices []domain.Invoice, payments []domain.Payment, purchases []domain.Purchase) []domain.LedgerEntry {
	ranked := make([]rankedEntry, 0, len(invoices)+len(payments)+len(purchases))

	for i := range invoices {
		inv := &invoices[i]
		ranked = append(ranked, rankedEntry{
			LedgerEntry: domain.LedgerEntry{
				Date:          inv.InvoiceDate,
				Particulars:   "Sales " + inv.InvoiceNumber,
				VoucherType:   domain.VoucherSales,
				VoucherNumber: inv.InvoiceNumber,
				Debit:         inv.GrandTotal,
				Credit:        decimal.Zero,
			},
			rank: rankSales,
			seq:  len(ranked),
		})
	}

	for i := range payments {
		p := &payments[i]
		ranked = append(ranked, rankedEntry{
			LedgerEntry: domain.LedgerEntry{
				Date:          p.PaymentDate,
				Particulars:   "Receipt " + p.Reference,
				VoucherType:   domain.VoucherReceipt,
				VoucherNumber: p.Reference,
				Debit:         decimal.Zero,
				Credit:        p.Amount,
			},
			rank: rankReceipts,
			seq:  len(ranked),
		})
	}

	for i := range purchases {
		pu := &purchases[i]
		entry := rankedEntry{
			LedgerEntry: domain.LedgerEntry{
				Date:          pu.PurchaseDate,
				VoucherNumber: pu.VoucherNumber,
			},
			rank: rankPurchases,
			seq:  len(ranked),
		}
		if pu.IsPayment {
			entry.Particulars = "Purchase Payment " + pu.VoucherNumber
			entry.VoucherType = domain.VoucherPurchasePayment
			entry.Debit = pu.Amount
			entry.Credit = decimal.Zero
		} else {
			entry.Particulars = "Purchase " + pu.VoucherNumber
			entry.VoucherType = domain.VoucherPurchase
			entry.Debit = decimal.Zero
			entry.Credit = pu.Amount
		}
		ranked = append(ranked, entry)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		di, dj := dateOnly(ranked[i].Date), dateOnly(ranked[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		if ranked[i].rank != ranked[j].rank {
			return ranked[i].rank < ranked[j].rank
		}
		return ranked[i].seq < ranked[j].seq
	})

	entries := make([]domain.LedgerEntry, len(ranked))
	for i := range ranked {
		entries[i] = ranked[i].LedgerEntry
	}
	return entries
}

func applyRunningBalance(entries []domain.LedgerEntry) {
	balance := decimal.Zero
	for i := range entries {
		balance = balance.Add(entries[i].Debit).Sub(entries[i].Credit)
		entries[i].RunningBalance = balance
	}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
