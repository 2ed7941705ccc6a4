package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"billmitra/internal/domain"
	"billmitra/internal/handler"
	"billmitra/internal/middleware"
	"billmitra/internal/service"
	"billmitra/mocks"
)

// authedContext builds a test context carrying tenant and user identity the
// way the auth middleware would.
func authedContext(t *testing.T, method, path string, payload interface{}, tenantID, userID uuid.UUID) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		assert.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(method, path, &body)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.ContextKeyTenantID, tenantID)
	c.Set(middleware.ContextKeyUserID, userID)
	c.Set(middleware.ContextKeyRole, string(domain.RoleAdmin))
	return c, w
}

func TestInvoiceHandler_Create_Success(t *testing.T) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)

	tenantID := uuid.New()
	userID := uuid.New()
	partyID := uuid.New()

	result := &service.InvoiceResult{
		Invoice: &domain.Invoice{
			ID:            uuid.New(),
			InvoiceNumber: "INV-0001",
			GrandTotal:    decimal.RequireFromString("236"),
			Status:        domain.InvoiceUnpaid,
		},
	}

	mockSvc.On("Create", mock.Anything, tenantID, userID, mock.AnythingOfType("service.CreateInvoiceInput")).
		Return(result, nil)

	payload := map[string]interface{}{
		"party_id":     partyID,
		"invoice_date": "2025-07-14T00:00:00Z",
		"items": []map[string]interface{}{
			{
				"description":      "Leather shoes",
				"quantity":         "2",
				"unit_price":       "100",
				"tax_rate_percent": "18",
				"hsn_sac_code":     "6403",
			},
		},
	}

	c, w := authedContext(t, http.MethodPost, "/api/v1/invoices", payload, tenantID, userID)
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestInvoiceHandler_Create_InvalidInput(t *testing.T) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)

	tenantID := uuid.New()
	userID := uuid.New()

	mockSvc.On("Create", mock.Anything, tenantID, userID, mock.AnythingOfType("service.CreateInvoiceInput")).
		Return(nil, domain.ErrInvalidInput)

	payload := map[string]interface{}{
		"party_id":     uuid.New(),
		"invoice_date": "2025-07-14T00:00:00Z",
		"items": []map[string]interface{}{
			{"description": "Bad line", "quantity": "-1", "unit_price": "100"},
		},
	}

	c, w := authedContext(t, http.MethodPost, "/api/v1/invoices", payload, tenantID, userID)
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvoiceHandler_RecordPayment_Overpayment(t *testing.T) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)

	tenantID := uuid.New()
	invoiceID := uuid.New()

	mockSvc.On("RecordPayment", mock.Anything, tenantID, mock.MatchedBy(func(in service.RecordPaymentInput) bool {
		return in.InvoiceID == invoiceID
	})).Return(nil, domain.ErrOverpayment)

	payload := map[string]interface{}{
		"amount":       "500",
		"payment_date": "2025-07-20T00:00:00Z",
		"method":       "upi",
	}

	c, w := authedContext(t, http.MethodPost, "/api/v1/invoices/"+invoiceID.String()+"/payments", payload, tenantID, uuid.New())
	c.Params = gin.Params{{Key: "id", Value: invoiceID.String()}}
	h.RecordPayment(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "OVERPAYMENT", resp.Error.Code)
}

func TestInvoiceHandler_RecordPayment_InvalidID(t *testing.T) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)

	c, w := authedContext(t, http.MethodPost, "/api/v1/invoices/not-a-uuid/payments", map[string]string{}, uuid.New(), uuid.New())
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}
	h.RecordPayment(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "RecordPayment", mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceHandler_GetByID_NotFound(t *testing.T) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)

	tenantID := uuid.New()
	invoiceID := uuid.New()

	mockSvc.On("GetByID", mock.Anything, tenantID, invoiceID).Return(nil, domain.ErrNotFound)

	c, w := authedContext(t, http.MethodGet, "/api/v1/invoices/"+invoiceID.String(), nil, tenantID, uuid.New())
	c.Params = gin.Params{{Key: "id", Value: invoiceID.String()}}
	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
