package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"billmitra/internal/domain"
	"billmitra/internal/gst"
	"billmitra/internal/hsn"
	"billmitra/internal/port"
)

// CreateInvoiceInput is the DTO for creating an invoice.
type CreateInvoiceInput struct {
	PartyID     uuid.UUID         `json:"party_id" binding:"required"`
	InvoiceDate time.Time         `json:"invoice_date" binding:"required"`
	Items       []domain.LineItem `json:"items" binding:"required,min=1"`
}

// RecordPaymentInput is the DTO for recording a payment against an invoice.
type RecordPaymentInput struct {
	InvoiceID   uuid.UUID       `json:"invoice_id"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate time.Time       `json:"payment_date" binding:"required"`
	Method      string          `json:"method"`
	Reference   string          `json:"reference"`
}

// RateWarning flags an invoice line whose GST rate does not match the HSN
// master. Warnings never block invoice creation.
type RateWarning struct {
	LineIndex  int     `json:"line_index"`
	HSNSACCode string  `json:"hsn_sac_code"`
	GivenRate  float64 `json:"given_rate"`
	Message    string  `json:"message"`
}

// InvoiceResult is a created invoice with its lines and any rate warnings.
type InvoiceResult struct {
	Invoice  *domain.Invoice      `json:"invoice"`
	Lines    []domain.InvoiceLine `json:"lines"`
	Warnings []RateWarning        `json:"warnings,omitempty"`
}

// InvoiceService defines the invoice management contract.
type InvoiceService interface {
	Create(ctx context.Context, tenantID, userID uuid.UUID, input CreateInvoiceInput) (*InvoiceResult, error)
	RecordPayment(ctx context.Context, tenantID uuid.UUID, input RecordPaymentInput) (*domain.Invoice, error)
	GetByID(ctx context.Context, tenantID, invoiceID uuid.UUID) (*domain.Invoice, error)
	GetLines(ctx context.Context, tenantID, invoiceID uuid.UUID) ([]domain.InvoiceLine, error)
	List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error)
}

type invoiceService struct {
	invoices port.InvoiceRepository
	payments port.PaymentRepository
	parties  port.PartyRepository
	tenants  port.TenantRepository
	hsn      *hsn.Lookup
}

// NewInvoiceService creates a new InvoiceService implementation. The HSN
// lookup may be nil, in which case rate warnings are skipped.
func NewInvoiceService(
	invoices port.InvoiceRepository,
	payments port.PaymentRepository,
	parties port.PartyRepository,
	tenants port.TenantRepository,
	lookup *hsn.Lookup,
) InvoiceService {
	return &invoiceService{
		invoices: invoices,
		payments: payments,
		parties:  parties,
		tenants:  tenants,
		hsn:      lookup,
	}
}

func (s *invoiceService) Create(ctx context.Context, tenantID, userID uuid.UUID, input CreateInvoiceInput) (*InvoiceResult, error) {
	tenant, err := s.tenants.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	party, err := s.parties.GetByID(ctx, tenantID, input.PartyID)
	if err != nil {
		return nil, err
	}

	// The supply is interstate when the buyer's state differs from the
	// seller's registered state.
	interstate := party.StateCode != "" && party.StateCode != tenant.StateCode

	doc, err := gst.DocumentBreakdown(input.Items, interstate)
	if err != nil {
		return nil, err
	}

	number, err := s.invoices.NextInvoiceNumber(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("invoiceService.Create: %w", err)
	}

	invoice := &domain.Invoice{
		TenantID:      tenantID,
		PartyID:       input.PartyID,
		InvoiceNumber: number,
		InvoiceDate:   input.InvoiceDate,
		Interstate:    interstate,
		TaxableValue:  doc.TaxableValue,
		CGST:          doc.CGST,
		SGST:          doc.SGST,
		IGST:          doc.IGST,
		GrandTotal:    doc.TaxableValue.Add(doc.TotalTax()),
		AmountPaid:    decimal.Zero,
		Status:        domain.InvoiceUnpaid,
		CreatedBy:     userID,
	}
	invoice.BalanceDue = invoice.GrandTotal

	lines := make([]domain.InvoiceLine, 0, len(input.Items))
	for i := range input.Items {
		item := &input.Items[i]
		lb, err := gst.LineBreakdown(*item, interstate)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.InvoiceLine{
			TenantID:        tenantID,
			Description:     item.Description,
			HSNSACCode:      item.HSNSACCode,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			DiscountPercent: item.DiscountPercent,
			TaxRatePercent:  item.TaxRatePercent,
			TaxableValue:    lb.TaxableValue,
			CGST:            lb.CGST,
			SGST:            lb.SGST,
			IGST:            lb.IGST,
		})
	}

	if err := s.invoices.Create(ctx, invoice, lines); err != nil {
		return nil, fmt.Errorf("invoiceService.Create: %w", err)
	}

	return &InvoiceResult{
		Invoice:  invoice,
		Lines:    lines,
		Warnings: s.rateWarnings(input.Items),
	}, nil
}

// RecordPayment applies a payment to an invoice and rolls the balance
// forward. Overpayment is rejected; partial payments move the invoice to
// partial status, settling it fully moves it to paid.
func (s *invoiceService) RecordPayment(ctx context.Context, tenantID uuid.UUID, input RecordPaymentInput) (*domain.Invoice, error) {
	if !input.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	invoice, err := s.invoices.GetByID(ctx, tenantID, input.InvoiceID)
	if err != nil {
		return nil, err
	}
	if input.Amount.GreaterThan(invoice.BalanceDue) {
		return nil, domain.ErrOverpayment
	}

	payment := &domain.Payment{
		TenantID:    tenantID,
		InvoiceID:   invoice.ID,
		PartyID:     invoice.PartyID,
		Amount:      input.Amount,
		PaymentDate: input.PaymentDate,
		Method:      input.Method,
		Reference:   input.Reference,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("invoiceService.RecordPayment: %w", err)
	}

	invoice.AmountPaid = invoice.AmountPaid.Add(input.Amount)
	invoice.BalanceDue = invoice.GrandTotal.Sub(invoice.AmountPaid)
	if invoice.BalanceDue.IsZero() {
		invoice.Status = domain.InvoicePaid
	} else {
		invoice.Status = domain.InvoicePartial
	}

	if err := s.invoices.UpdateBalance(ctx, invoice); err != nil {
		return nil, fmt.Errorf("invoiceService.RecordPayment: %w", err)
	}
	return invoice, nil
}

func (s *invoiceService) GetByID(ctx context.Context, tenantID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	return s.invoices.GetByID(ctx, tenantID, invoiceID)
}

func (s *invoiceService) GetLines(ctx context.Context, tenantID, invoiceID uuid.UUID) ([]domain.InvoiceLine, error) {
	return s.invoices.GetLines(ctx, tenantID, invoiceID)
}

func (s *invoiceService) List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error) {
	return s.invoices.ListByTenant(ctx, tenantID, offset, limit)
}

func (s *invoiceService) rateWarnings(items []domain.LineItem) []RateWarning {
	if s.hsn == nil {
		return nil
	}
	var warnings []RateWarning
	for i := range items {
		item := &items[i]
		if item.HSNSACCode == "" || !s.hsn.Exists(item.HSNSACCode) {
			continue
		}
		rate, _ := item.TaxRatePercent.Float64()
		if matched, _ := s.hsn.RateMatches(item.HSNSACCode, rate); !matched {
			warnings = append(warnings, RateWarning{
				LineIndex:  i,
				HSNSACCode: item.HSNSACCode,
				GivenRate:  rate,
				Message:    fmt.Sprintf("rate %.2f%% does not match the HSN master for %s", rate, item.HSNSACCode),
			})
		}
	}
	return warnings
}
