package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"billmitra/internal/domain"
	"billmitra/internal/middleware"
	"billmitra/internal/service"
	"billmitra/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices", nil)
	return c, w
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	c, w := testContext(t)

	middleware.AuthMiddleware(mockAuth)(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.True(t, c.IsAborted())
	mockAuth.AssertNotCalled(t, "ValidateToken", mock.Anything)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	mockAuth.On("ValidateToken", "bad-token").Return(nil, errors.New("token is expired"))

	c, w := testContext(t)
	c.Request.Header.Set("Authorization", "Bearer bad-token")

	middleware.AuthMiddleware(mockAuth)(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.True(t, c.IsAborted())
	mockAuth.AssertExpectations(t)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tenantID := uuid.New()
	userID := uuid.New()
	claims := &service.Claims{
		TenantID: tenantID,
		UserID:   userID,
		Email:    "ravi@sharmatraders.in",
		Role:     domain.RoleManager,
	}

	mockAuth := new(mocks.MockAuthService)
	mockAuth.On("ValidateToken", "good-token").Return(claims, nil)

	c, _ := testContext(t)
	c.Request.Header.Set("Authorization", "Bearer good-token")

	middleware.AuthMiddleware(mockAuth)(c)

	assert.False(t, c.IsAborted())

	gotTenant, err := middleware.GetTenantID(c)
	assert.NoError(t, err)
	assert.Equal(t, tenantID, gotTenant)

	gotUser, err := middleware.GetUserID(c)
	assert.NoError(t, err)
	assert.Equal(t, userID, gotUser)

	assert.Equal(t, string(domain.RoleManager), middleware.GetRole(c))

	mockAuth.AssertExpectations(t)
}

func TestRequireRole_Allowed(t *testing.T) {
	c, _ := testContext(t)
	c.Set(middleware.ContextKeyRole, string(domain.RoleAdmin))

	middleware.RequireRole(domain.RoleAdmin, domain.RoleManager)(c)

	assert.False(t, c.IsAborted())
}

func TestRequireRole_Forbidden(t *testing.T) {
	c, w := testContext(t)
	c.Set(middleware.ContextKeyRole, string(domain.RoleMember))

	middleware.RequireRole(domain.RoleAdmin)(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.True(t, c.IsAborted())
}

func TestRequireFeature_Enabled(t *testing.T) {
	tenantID := uuid.New()
	mockTenants := new(mocks.MockTenantService)
	mockTenants.On("Features", mock.Anything, tenantID).Return(&domain.IndustryConfig{
		Industry:      domain.IndustryRental,
		EnableRentals: true,
	}, nil)

	c, _ := testContext(t)
	c.Set(middleware.ContextKeyTenantID, tenantID)

	middleware.RequireFeature(mockTenants, func(f *domain.IndustryConfig) bool {
		return f.EnableRentals
	})(c)

	assert.False(t, c.IsAborted())
	mockTenants.AssertExpectations(t)
}

func TestRequireFeature_Disabled(t *testing.T) {
	tenantID := uuid.New()
	mockTenants := new(mocks.MockTenantService)
	mockTenants.On("Features", mock.Anything, tenantID).Return(&domain.IndustryConfig{
		Industry: domain.IndustryServices,
	}, nil)

	c, w := testContext(t)
	c.Set(middleware.ContextKeyTenantID, tenantID)

	middleware.RequireFeature(mockTenants, func(f *domain.IndustryConfig) bool {
		return f.EnableEWayBill
	})(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.True(t, c.IsAborted())
}

func TestRequireFeature_MissingTenantContext(t *testing.T) {
	mockTenants := new(mocks.MockTenantService)

	c, w := testContext(t)

	middleware.RequireFeature(mockTenants, func(f *domain.IndustryConfig) bool {
		return f.EnablePOS
	})(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockTenants.AssertNotCalled(t, "Features", mock.Anything, mock.Anything)
}
