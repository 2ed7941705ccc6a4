package domain

// UserRole defines the role of a user within a tenant.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleMember  UserRole = "member"
)

// ValidUserRoles is the set of roles accepted on user create/update.
var ValidUserRoles = map[UserRole]bool{
	RoleAdmin:   true,
	RoleManager: true,
	RoleMember:  true,
}

// PartyType distinguishes customers from suppliers in ledger queries.
type PartyType string

const (
	PartyCustomer PartyType = "customer"
	PartySupplier PartyType = "supplier"
)

// TaxRegime selects the income tax slab table.
type TaxRegime string

const (
	RegimeOld TaxRegime = "old"
	RegimeNew TaxRegime = "new"
)

// InvoiceStatus tracks payment progress on an invoice.
type InvoiceStatus string

const (
	InvoiceUnpaid  InvoiceStatus = "unpaid"
	InvoicePartial InvoiceStatus = "partial"
	InvoicePaid    InvoiceStatus = "paid"
)

// EWayBillStatus is the lifecycle state of an e-way bill.
// Cancelled is terminal; a cancelled bill is never re-issued.
type EWayBillStatus string

const (
	EWayBillGenerated EWayBillStatus = "generated"
	EWayBillCancelled EWayBillStatus = "cancelled"
)

// TransportMode is the mode of transport on an e-way bill.
type TransportMode string

const (
	TransportRoad TransportMode = "road"
	TransportRail TransportMode = "rail"
	TransportAir  TransportMode = "air"
	TransportShip TransportMode = "ship"
)

// RentalStatus tracks the lifecycle of a rental order.
type RentalStatus string

const (
	RentalActive   RentalStatus = "active"
	RentalOverdue  RentalStatus = "overdue"
	RentalReturned RentalStatus = "returned"
)

// ReminderType selects which rentals a reminder run targets.
type ReminderType string

const (
	ReminderOverdue  ReminderType = "overdue"
	ReminderDueToday ReminderType = "due_today"
	ReminderManual   ReminderType = "manual"
)

// VoucherType labels the source document of a ledger entry.
type VoucherType string

const (
	VoucherSales           VoucherType = "sales"
	VoucherReceipt         VoucherType = "receipt"
	VoucherPurchase        VoucherType = "purchase"
	VoucherPurchasePayment VoucherType = "purchase_payment"
)

// Industry keys the industry_config feature-flag table.
type Industry string

const (
	IndustryRetail   Industry = "retail"
	IndustryRental   Industry = "rental"
	IndustryServices Industry = "services"
)
