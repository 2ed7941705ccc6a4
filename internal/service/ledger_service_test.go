package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billmitra/internal/domain"
	. "billmitra/internal/service"
	"billmitra/internal/ledger"
	"billmitra/internal/port"
	"billmitra/mocks"
)

func ledgerFixture() (*mocks.MockInvoiceRepo, *mocks.MockPaymentRepo, *mocks.MockPurchaseRepo, *mocks.MockPartyRepo, *ledger.Aggregator) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	paymentRepo := new(mocks.MockPaymentRepo)
	purchaseRepo := new(mocks.MockPurchaseRepo)
	partyRepo := new(mocks.MockPartyRepo)
	agg := ledger.NewAggregator(invoiceRepo, paymentRepo, purchaseRepo)
	return invoiceRepo, paymentRepo, purchaseRepo, partyRepo, agg
}

func TestExportPartyLedgerCSV(t *testing.T) {
	invoiceRepo, paymentRepo, purchaseRepo, partyRepo, agg := ledgerFixture()
	tenantID := uuid.New()
	partyID := uuid.New()
	from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)

	partyRepo.On("GetByID", mock.Anything, tenantID, partyID).
		Return(&domain.Party{ID: partyID, TenantID: tenantID, Name: "Sharma Traders"}, nil)
	invoiceRepo.On("ListByParty", mock.Anything, tenantID, partyID, from, to).
		Return([]domain.Invoice{
			{
				InvoiceNumber: "INV-0001",
				InvoiceDate:   time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
				GrandTotal:    decimal.NewFromInt(1000),
			},
		}, nil)
	paymentRepo.On("ListByParty", mock.Anything, tenantID, partyID, from, to).
		Return([]domain.Payment{}, nil)
	purchaseRepo.On("ListByParty", mock.Anything, tenantID, partyID, from, to).
		Return([]domain.Purchase{}, nil)

	svc := NewLedgerService(agg, partyRepo, nil, "", 0)
	artifact, err := svc.ExportPartyLedgerCSV(context.Background(), tenantID, partyID, from, to, false)
	require.NoError(t, err)

	assert.Contains(t, artifact.Filename, "Sharma_Traders_ledger_")
	assert.Equal(t, "text/csv; charset=utf-8", artifact.ContentType)
	assert.True(t, bytes.HasPrefix(artifact.Data, []byte{0xEF, 0xBB, 0xBF}))
	assert.Contains(t, string(artifact.Data), "INV-0001")
	assert.Empty(t, artifact.Location)
}

func TestExportDayBookXLSX_WithUpload(t *testing.T) {
	invoiceRepo, paymentRepo, purchaseRepo, partyRepo, agg := ledgerFixture()
	storage := new(mocks.MockObjectStorage)
	tenantID := uuid.New()
	from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)

	invoiceRepo.On("ListByDateRange", mock.Anything, tenantID, from, to).
		Return([]domain.Invoice{
			{
				InvoiceNumber: "INV-0001",
				InvoiceDate:   time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC),
				GrandTotal:    decimal.NewFromInt(500),
			},
		}, nil)
	paymentRepo.On("ListByDateRange", mock.Anything, tenantID, from, to).
		Return([]domain.Payment{}, nil)
	purchaseRepo.On("ListByDateRange", mock.Anything, tenantID, from, to).
		Return([]domain.Purchase{}, nil)

	key := "exports/" + tenantID.String() + "/daybook_2025-07-01_2025-07-31.xlsx"
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "billmitra-exports" && in.Key == key
	})).Return(&port.UploadOutput{Location: "https://s3/" + key}, nil)
	storage.On("PresignGet", mock.Anything, "billmitra-exports", key, time.Hour).
		Return("https://s3/presigned", nil)

	svc := NewLedgerService(agg, partyRepo, storage, "billmitra-exports", time.Hour)
	artifact, err := svc.ExportDayBookXLSX(context.Background(), tenantID, from, to, true)
	require.NoError(t, err)

	assert.Equal(t, "daybook_2025-07-01_2025-07-31.xlsx", artifact.Filename)
	assert.Equal(t, "https://s3/"+key, artifact.Location)
	assert.Equal(t, "https://s3/presigned", artifact.PresignURL)
	storage.AssertExpectations(t)
}

func TestPartyLedger_AggregationFailure(t *testing.T) {
	invoiceRepo, paymentRepo, purchaseRepo, partyRepo, agg := ledgerFixture()
	tenantID := uuid.New()
	partyID := uuid.New()
	from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)

	partyRepo.On("GetByID", mock.Anything, tenantID, partyID).
		Return(&domain.Party{ID: partyID, TenantID: tenantID, Name: "Sharma Traders"}, nil)
	invoiceRepo.On("ListByParty", mock.Anything, tenantID, partyID, from, to).
		Return([]domain.Invoice{}, nil)
	paymentRepo.On("ListByParty", mock.Anything, tenantID, partyID, from, to).
		Return(nil, errors.New("connection reset"))
	purchaseRepo.On("ListByParty", mock.Anything, tenantID, partyID, from, to).
		Return([]domain.Purchase{}, nil)

	svc := NewLedgerService(agg, partyRepo, nil, "", 0)
	_, err := svc.PartyLedger(context.Background(), tenantID, partyID, from, to)

	var aggErr *domain.AggregationError
	require.ErrorAs(t, err, &aggErr)
	assert.Equal(t, "receipts", aggErr.Source)
}
