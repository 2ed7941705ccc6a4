package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tenant represents an isolated organizational tenant (one business).
type Tenant struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	Industry  Industry  `db:"industry" json:"industry"`
	StateCode string    `db:"state_code" json:"state_code"`
	GSTIN     string    `db:"gstin" json:"gstin"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// User represents an authenticated user belonging to a tenant.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	TenantID     uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Party is a customer or supplier of the tenant. StateCode drives the
// intrastate/interstate GST split against the tenant's own state.
type Party struct {
	ID        uuid.UUID `db:"id" json:"id"`
	TenantID  uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Name      string    `db:"name" json:"name"`
	Type      PartyType `db:"type" json:"type"`
	GSTIN     string    `db:"gstin" json:"gstin"`
	StateCode string    `db:"state_code" json:"state_code"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Product is a sellable good or service with its GST classification.
type Product struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	TenantID      uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	Name          string          `db:"name" json:"name"`
	HSNSACCode    string          `db:"hsn_sac_code" json:"hsn_sac_code"`
	UnitPrice     decimal.Decimal `db:"unit_price" json:"unit_price"`
	PurchasePrice decimal.Decimal `db:"purchase_price" json:"purchase_price"`
	GSTRate       decimal.Decimal `db:"gst_rate" json:"gst_rate"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// LineItem is the computation input for one invoice or consignment line.
type LineItem struct {
	Description     string          `json:"description"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	TaxRatePercent  decimal.Decimal `json:"tax_rate_percent"`
	HSNSACCode      string          `json:"hsn_sac_code"`
}

// TaxBreakdown is the CGST/SGST/IGST split of a line or document.
// Intrastate: igst = 0 and cgst = sgst = tax/2. Interstate: cgst = sgst = 0
// and igst carries the full tax.
type TaxBreakdown struct {
	TaxableValue decimal.Decimal `json:"taxable_value"`
	CGST         decimal.Decimal `json:"cgst"`
	SGST         decimal.Decimal `json:"sgst"`
	IGST         decimal.Decimal `json:"igst"`
}

// TotalTax returns the combined tax across the three heads.
func (b TaxBreakdown) TotalTax() decimal.Decimal {
	return b.CGST.Add(b.SGST).Add(b.IGST)
}

// Invoice is a sales document with per-line GST amounts rolled up.
type Invoice struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	TenantID      uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	PartyID       uuid.UUID       `db:"party_id" json:"party_id"`
	InvoiceNumber string          `db:"invoice_number" json:"invoice_number"`
	InvoiceDate   time.Time       `db:"invoice_date" json:"invoice_date"`
	Interstate    bool            `db:"interstate" json:"interstate"`
	TaxableValue  decimal.Decimal `db:"taxable_value" json:"taxable_value"`
	CGST          decimal.Decimal `db:"cgst" json:"cgst"`
	SGST          decimal.Decimal `db:"sgst" json:"sgst"`
	IGST          decimal.Decimal `db:"igst" json:"igst"`
	GrandTotal    decimal.Decimal `db:"grand_total" json:"grand_total"`
	AmountPaid    decimal.Decimal `db:"amount_paid" json:"amount_paid"`
	BalanceDue    decimal.Decimal `db:"balance_due" json:"balance_due"`
	Status        InvoiceStatus   `db:"status" json:"status"`
	CreatedBy     uuid.UUID       `db:"created_by" json:"created_by"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// InvoiceLine is one persisted line of an invoice with computed amounts.
type InvoiceLine struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	InvoiceID       uuid.UUID       `db:"invoice_id" json:"invoice_id"`
	TenantID        uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	Description     string          `db:"description" json:"description"`
	HSNSACCode      string          `db:"hsn_sac_code" json:"hsn_sac_code"`
	Quantity        decimal.Decimal `db:"quantity" json:"quantity"`
	UnitPrice       decimal.Decimal `db:"unit_price" json:"unit_price"`
	DiscountPercent decimal.Decimal `db:"discount_percent" json:"discount_percent"`
	TaxRatePercent  decimal.Decimal `db:"tax_rate_percent" json:"tax_rate_percent"`
	TaxableValue    decimal.Decimal `db:"taxable_value" json:"taxable_value"`
	CGST            decimal.Decimal `db:"cgst" json:"cgst"`
	SGST            decimal.Decimal `db:"sgst" json:"sgst"`
	IGST            decimal.Decimal `db:"igst" json:"igst"`
}

// Payment is money received against a sales invoice.
type Payment struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	TenantID    uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	InvoiceID   uuid.UUID       `db:"invoice_id" json:"invoice_id"`
	PartyID     uuid.UUID       `db:"party_id" json:"party_id"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	PaymentDate time.Time       `db:"payment_date" json:"payment_date"`
	Method      string          `db:"method" json:"method"`
	Reference   string          `db:"reference" json:"reference"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

// Purchase is a cost document from a supplier. IsPayment marks a payment
// made against a purchase rather than the purchase itself.
type Purchase struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	TenantID      uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	PartyID       uuid.UUID       `db:"party_id" json:"party_id"`
	VoucherNumber string          `db:"voucher_number" json:"voucher_number"`
	Amount        decimal.Decimal `db:"amount" json:"amount"`
	PurchaseDate  time.Time       `db:"purchase_date" json:"purchase_date"`
	IsPayment     bool            `db:"is_payment" json:"is_payment"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}

// EWayBill is a transport document issued for a goods consignment.
type EWayBill struct {
	ID               uuid.UUID       `db:"id" json:"id"`
	TenantID         uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	InvoiceID        *uuid.UUID      `db:"invoice_id" json:"invoice_id"`
	BillNumber       string          `db:"bill_number" json:"bill_number"`
	ConsignmentValue decimal.Decimal `db:"consignment_value" json:"consignment_value"`
	DistanceKm       int             `db:"distance_km" json:"distance_km"`
	TransportMode    TransportMode   `db:"transport_mode" json:"transport_mode"`
	Status           EWayBillStatus  `db:"status" json:"status"`
	IssuedAt         time.Time       `db:"issued_at" json:"issued_at"`
	ValidUntil       time.Time       `db:"valid_until" json:"valid_until"`
	CancelledAt      *time.Time      `db:"cancelled_at" json:"cancelled_at"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at" json:"updated_at"`
}

// Rental is an item rented out to a party with a per-day rate.
type Rental struct {
	ID                 uuid.UUID       `db:"id" json:"id"`
	TenantID           uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	PartyID            uuid.UUID       `db:"party_id" json:"party_id"`
	ItemName           string          `db:"item_name" json:"item_name"`
	RatePerDay         decimal.Decimal `db:"rate_per_day" json:"rate_per_day"`
	LateFeePerDay      decimal.Decimal `db:"late_fee_per_day" json:"late_fee_per_day"`
	StartDate          time.Time       `db:"start_date" json:"start_date"`
	ExpectedReturnDate time.Time       `db:"expected_return_date" json:"expected_return_date"`
	ReturnedAt         *time.Time      `db:"returned_at" json:"returned_at"`
	LateFees           decimal.Decimal `db:"late_fees" json:"late_fees"`
	Status             RentalStatus    `db:"status" json:"status"`
	CreatedAt          time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at" json:"updated_at"`
}

// ITRComputation is one income tax computation per (user, financial year).
// FinancialYear is immutable once set; recomputation upserts the rest.
type ITRComputation struct {
	ID                uuid.UUID       `db:"id" json:"id"`
	TenantID          uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	UserID            uuid.UUID       `db:"user_id" json:"user_id"`
	FinancialYear     string          `db:"financial_year" json:"financial_year"`
	Regime            TaxRegime       `db:"regime" json:"regime"`
	GrossReceipts     decimal.Decimal `db:"gross_receipts" json:"gross_receipts"`
	TotalExpenses     decimal.Decimal `db:"total_expenses" json:"total_expenses"`
	Deductions        decimal.Decimal `db:"deductions" json:"deductions"`
	Presumptive       bool            `db:"presumptive" json:"presumptive"`
	TaxableIncome     decimal.Decimal `db:"taxable_income" json:"taxable_income"`
	TaxComputed       decimal.Decimal `db:"tax_computed" json:"tax_computed"`
	Rebate            decimal.Decimal `db:"rebate" json:"rebate"`
	Cess              decimal.Decimal `db:"cess" json:"cess"`
	TotalTaxLiability decimal.Decimal `db:"total_tax_liability" json:"total_tax_liability"`
	TaxPaid           decimal.Decimal `db:"tax_paid" json:"tax_paid"`
	TaxPayable        decimal.Decimal `db:"tax_payable" json:"tax_payable"`
	RefundDue         decimal.Decimal `db:"refund_due" json:"refund_due"`
	CreatedAt         time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at" json:"updated_at"`
}

// LedgerEntry is one row of a party ledger or day book. It is a transient
// computation result, never persisted. Exactly one of Debit/Credit is
// non-zero.
type LedgerEntry struct {
	Date           time.Time       `json:"date"`
	Particulars    string          `json:"particulars"`
	VoucherType    VoucherType     `json:"voucher_type"`
	VoucherNumber  string          `json:"voucher_number"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"running_balance"`
}

// IndustryConfig is a feature-flag row keyed by industry, looked up per
// tenant at request time.
type IndustryConfig struct {
	Industry       Industry `db:"industry" json:"industry"`
	EnableRentals  bool     `db:"enable_rentals" json:"enable_rentals"`
	EnableEWayBill bool     `db:"enable_eway_bill" json:"enable_eway_bill"`
	EnablePOS      bool     `db:"enable_pos" json:"enable_pos"`
}

// ReminderResult is the per-recipient outcome of a reminder run.
type ReminderResult struct {
	RentalID  uuid.UUID `json:"rental_id"`
	PartyName string    `json:"party_name"`
	Email     string    `json:"email"`
	Sent      bool      `json:"sent"`
	Error     string    `json:"error,omitempty"`
}
