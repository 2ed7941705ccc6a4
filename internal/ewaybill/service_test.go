package ewaybill_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billmitra/internal/domain"
	"billmitra/internal/ewaybill"
	"billmitra/mocks"
)

var fixedNow = time.Date(2025, 7, 14, 10, 30, 0, 0, time.UTC)

func newTestService(repo *mocks.MockEWayBillRepo) ewaybill.Service {
	return ewaybill.NewServiceWithClock(repo, func() time.Time { return fixedNow })
}

func goodsInput(value string, distance int) ewaybill.GenerateInput {
	return ewaybill.GenerateInput{
		ConsignmentValue: decimal.RequireFromString(value),
		DistanceKm:       distance,
		TransportMode:    domain.TransportRoad,
		Items: []domain.LineItem{
			{Description: "leather shoes", HSNSACCode: "640312"},
		},
	}
}

func TestGenerate(t *testing.T) {
	repo := new(mocks.MockEWayBillRepo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.EWayBill")).Return(nil)
	svc := newTestService(repo)
	tenantID := uuid.New()

	bill, err := svc.Generate(context.Background(), tenantID, goodsInput("75000", 250))
	require.NoError(t, err)

	assert.Equal(t, tenantID, bill.TenantID)
	assert.Equal(t, domain.EWayBillGenerated, bill.Status)
	assert.Len(t, bill.BillNumber, 12)
	assert.Equal(t, fixedNow, bill.IssuedAt)
	// 250km → 3 days validity
	assert.Equal(t, fixedNow.AddDate(0, 0, 3), bill.ValidUntil)
	repo.AssertExpectations(t)
}

func TestGenerate_UniqueBillNumbers(t *testing.T) {
	repo := new(mocks.MockEWayBillRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	svc := newTestService(repo)
	tenantID := uuid.New()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		bill, err := svc.Generate(context.Background(), tenantID, goodsInput("60000", 10))
		require.NoError(t, err)
		assert.False(t, seen[bill.BillNumber], "duplicate bill number %s", bill.BillNumber)
		seen[bill.BillNumber] = true
	}
}

func TestGenerate_BelowThreshold(t *testing.T) {
	repo := new(mocks.MockEWayBillRepo)
	svc := newTestService(repo)

	_, err := svc.Generate(context.Background(), uuid.New(), goodsInput("49999", 100))
	assert.ErrorIs(t, err, domain.ErrIneligibleConsignment)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGenerate_ServicesOnly(t *testing.T) {
	repo := new(mocks.MockEWayBillRepo)
	svc := newTestService(repo)

	input := goodsInput("75000", 100)
	input.Items = []domain.LineItem{
		{Description: "consulting", HSNSACCode: "998311"},
	}

	_, err := svc.Generate(context.Background(), uuid.New(), input)
	assert.ErrorIs(t, err, domain.ErrServicesOnly)
}

func TestGenerate_InvalidDistance(t *testing.T) {
	repo := new(mocks.MockEWayBillRepo)
	svc := newTestService(repo)

	_, err := svc.Generate(context.Background(), uuid.New(), goodsInput("75000", 0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCancel(t *testing.T) {
	tenantID, billID := uuid.New(), uuid.New()
	repo := new(mocks.MockEWayBillRepo)
	repo.On("GetByID", mock.Anything, tenantID, billID).Return(&domain.EWayBill{
		ID:       billID,
		TenantID: tenantID,
		Status:   domain.EWayBillGenerated,
	}, nil)
	repo.On("UpdateStatus", mock.Anything, mock.AnythingOfType("*domain.EWayBill")).Return(nil)
	svc := newTestService(repo)

	bill, err := svc.Cancel(context.Background(), tenantID, billID)
	require.NoError(t, err)
	assert.Equal(t, domain.EWayBillCancelled, bill.Status)
	require.NotNil(t, bill.CancelledAt)
	assert.Equal(t, fixedNow, *bill.CancelledAt)
	repo.AssertExpectations(t)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	tenantID, billID := uuid.New(), uuid.New()
	cancelledAt := fixedNow.Add(-24 * time.Hour)
	repo := new(mocks.MockEWayBillRepo)
	repo.On("GetByID", mock.Anything, tenantID, billID).Return(&domain.EWayBill{
		ID:          billID,
		TenantID:    tenantID,
		Status:      domain.EWayBillCancelled,
		CancelledAt: &cancelledAt,
	}, nil)
	svc := newTestService(repo)

	// Second cancel fails and the record stays cancelled.
	_, err := svc.Cancel(context.Background(), tenantID, billID)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)

	got, err := svc.GetByID(context.Background(), tenantID, billID)
	require.NoError(t, err)
	assert.Equal(t, domain.EWayBillCancelled, got.Status)
}

func TestCancel_NotFound(t *testing.T) {
	tenantID, billID := uuid.New(), uuid.New()
	repo := new(mocks.MockEWayBillRepo)
	repo.On("GetByID", mock.Anything, tenantID, billID).Return(nil, domain.ErrNotFound)
	svc := newTestService(repo)

	_, err := svc.Cancel(context.Background(), tenantID, billID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
