package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"billmitra/internal/config"
	. "billmitra/internal/service"
	"billmitra/internal/domain"
	"billmitra/mocks"
)

var testJWTConfig = config.JWTConfig{
	Secret:             "test-secret",
	AccessTokenExpiry:  15 * time.Minute,
	RefreshTokenExpiry: 7 * 24 * time.Hour,
	Issuer:             "billmitra-test",
}

func authFixture(t *testing.T) (*mocks.MockUserRepo, *mocks.MockTenantRepo, *domain.Tenant, *domain.User) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	tenant := &domain.Tenant{
		ID:       uuid.New(),
		Slug:     "sharma-traders",
		IsActive: true,
	}
	user := &domain.User{
		ID:           uuid.New(),
		TenantID:     tenant.ID,
		Email:        "owner@sharma.in",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	return new(mocks.MockUserRepo), new(mocks.MockTenantRepo), tenant, user
}

func TestLogin_Success(t *testing.T) {
	userRepo, tenantRepo, tenant, user := authFixture(t)
	tenantRepo.On("GetBySlug", mock.Anything, "sharma-traders").Return(tenant, nil)
	userRepo.On("GetByEmail", mock.Anything, tenant.ID, "owner@sharma.in").Return(user, nil)

	svc := NewAuthService(userRepo, tenantRepo, testJWTConfig)
	tokens, err := svc.Login(context.Background(), LoginInput{
		TenantSlug: "sharma-traders",
		Email:      "owner@sharma.in",
		Password:   "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.NotEqual(t, tokens.AccessToken, tokens.RefreshToken)

	claims, err := svc.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, claims.TenantID)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo, tenantRepo, tenant, user := authFixture(t)
	tenantRepo.On("GetBySlug", mock.Anything, "sharma-traders").Return(tenant, nil)
	userRepo.On("GetByEmail", mock.Anything, tenant.ID, "owner@sharma.in").Return(user, nil)

	svc := NewAuthService(userRepo, tenantRepo, testJWTConfig)
	_, err := svc.Login(context.Background(), LoginInput{
		TenantSlug: "sharma-traders",
		Email:      "owner@sharma.in",
		Password:   "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnknownTenantMapsToInvalidCredentials(t *testing.T) {
	userRepo, tenantRepo, _, _ := authFixture(t)
	tenantRepo.On("GetBySlug", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

	svc := NewAuthService(userRepo, tenantRepo, testJWTConfig)
	_, err := svc.Login(context.Background(), LoginInput{
		TenantSlug: "ghost",
		Email:      "owner@sharma.in",
		Password:   "correct-horse",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_InactiveTenant(t *testing.T) {
	userRepo, tenantRepo, tenant, _ := authFixture(t)
	tenant.IsActive = false
	tenantRepo.On("GetBySlug", mock.Anything, "sharma-traders").Return(tenant, nil)

	svc := NewAuthService(userRepo, tenantRepo, testJWTConfig)
	_, err := svc.Login(context.Background(), LoginInput{
		TenantSlug: "sharma-traders",
		Email:      "owner@sharma.in",
		Password:   "correct-horse",
	})
	assert.ErrorIs(t, err, domain.ErrTenantInactive)
}

func TestValidateToken_RejectsRefreshAudience(t *testing.T) {
	userRepo, tenantRepo, tenant, user := authFixture(t)
	tenantRepo.On("GetBySlug", mock.Anything, "sharma-traders").Return(tenant, nil)
	userRepo.On("GetByEmail", mock.Anything, tenant.ID, "owner@sharma.in").Return(user, nil)

	svc := NewAuthService(userRepo, tenantRepo, testJWTConfig)
	tokens, err := svc.Login(context.Background(), LoginInput{
		TenantSlug: "sharma-traders",
		Email:      "owner@sharma.in",
		Password:   "correct-horse",
	})
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokens.RefreshToken)
	assert.Error(t, err)
}

func TestRefreshToken_IssuesNewPair(t *testing.T) {
	userRepo, tenantRepo, tenant, user := authFixture(t)
	tenantRepo.On("GetBySlug", mock.Anything, "sharma-traders").Return(tenant, nil)
	userRepo.On("GetByEmail", mock.Anything, tenant.ID, "owner@sharma.in").Return(user, nil)
	userRepo.On("GetByID", mock.Anything, tenant.ID, user.ID).Return(user, nil)

	svc := NewAuthService(userRepo, tenantRepo, testJWTConfig)
	tokens, err := svc.Login(context.Background(), LoginInput{
		TenantSlug: "sharma-traders",
		Email:      "owner@sharma.in",
		Password:   "correct-horse",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.ValidateToken(refreshed.AccessToken)
	assert.NoError(t, err)
}

func TestRegister_CreatesTenantAndAdmin(t *testing.T) {
	userRepo, tenantRepo, _, _ := authFixture(t)
	tenantRepo.On("Create", mock.Anything, mock.MatchedBy(func(tn *domain.Tenant) bool {
		return tn.Slug == "gupta-rentals" && tn.Industry == domain.IndustryRental && tn.IsActive
	})).Return(nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Role == domain.RoleAdmin && u.IsActive && u.PasswordHash != "secret-password"
	})).Return(nil)

	svc := NewAuthService(userRepo, tenantRepo, testJWTConfig)
	out, err := svc.Register(context.Background(), RegisterInput{
		BusinessName: "Gupta Rentals",
		Slug:         "gupta-rentals",
		Industry:     domain.IndustryRental,
		StateCode:    "07",
		Email:        "owner@gupta.in",
		Password:     "secret-password",
		FullName:     "R Gupta",
	})
	require.NoError(t, err)
	assert.NotNil(t, out.Tokens)
	assert.Equal(t, domain.RoleAdmin, out.User.Role)

	tenantRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestRegister_DuplicateSlug(t *testing.T) {
	userRepo, tenantRepo, _, _ := authFixture(t)
	tenantRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateSlug)

	svc := NewAuthService(userRepo, tenantRepo, testJWTConfig)
	_, err := svc.Register(context.Background(), RegisterInput{
		BusinessName: "Gupta Rentals",
		Slug:         "gupta-rentals",
		Industry:     domain.IndustryRental,
		StateCode:    "07",
		Email:        "owner@gupta.in",
		Password:     "secret-password",
		FullName:     "R Gupta",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateSlug)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
