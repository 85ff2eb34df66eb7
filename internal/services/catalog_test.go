package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lanzar/internal/config"
	"lanzar/internal/database"
	"lanzar/internal/domain"
)

func setupCatalog(t *testing.T) (*CatalogService, *gorm.DB) {
	t.Helper()
	db, err := database.Open(config.DatabaseConfig{URL: "sqlite:///:memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.Seed(context.Background(), db))
	return NewCatalogService(db), db
}

func requireServiceError(t *testing.T, err error, want ErrorType) *ServiceError {
	t.Helper()
	var svcErr *ServiceError
	require.True(t, errors.As(err, &svcErr), "got %v", err)
	assert.Equal(t, want, svcErr.Type)
	return svcErr
}

func TestCatalogService_Service(t *testing.T) {
	svc, _ := setupCatalog(t)
	ctx := context.Background()

	detail, err := svc.Service(ctx, "payroll")
	require.NoError(t, err)
	assert.Equal(t, "Payroll Management", detail.Name)
	assert.Equal(t, domain.CategoryCore, detail.Category)
	require.NotNil(t, detail.PrimaryTier)
	assert.Equal(t, "payroll-standard", detail.PrimaryTier.ID, "falls back to the first tier")

	_, err = svc.Service(ctx, "relocation")
	svcErr := requireServiceError(t, err, ErrTypeNotFound)
	assert.Equal(t, MsgServiceNotFound, svcErr.Message)
}

func TestCatalogService_ServicePricing_UnknownServiceIsNotFound(t *testing.T) {
	svc, _ := setupCatalog(t)

	_, err := svc.ServicePricing(context.Background(), "relocation")

	requireServiceError(t, err, ErrTypeNotFound)
}

func TestCatalogService_Pricing_GroupsTiersByService(t *testing.T) {
	svc, db := setupCatalog(t)
	extra := domain.PricingTier{
		ID: "employment-premium", ServiceID: "employment", Position: 10, Name: "Premium Employment",
		Amount: 8000, Currency: "INR", Period: "month", Unit: "employee",
	}
	require.NoError(t, db.Create(&extra).Error)

	pricing, err := svc.Pricing(context.Background())

	require.NoError(t, err)
	require.Len(t, pricing.Services, 6)
	employment := pricing.Services[0]
	assert.Equal(t, "employment", employment.ServiceID)
	require.Len(t, employment.Tiers, 2)
	assert.Equal(t, "employment-standard", employment.PrimaryTier().ID, "popular tier wins")
	assert.Equal(t, "employment-premium", employment.Tiers[1].ID)
	assert.Equal(t, "enterprise", pricing.Enterprise.ID)
}

func TestCatalogService_Statements_NewestPeriodFirst(t *testing.T) {
	svc, db := setupCatalog(t)
	ctx := context.Background()
	for _, s := range []domain.FinancialStatement{
		{Year: 2024, Quarter: 4, Type: domain.StatementBalanceSheet},
		{Year: 2025, Quarter: 1, Type: domain.StatementBalanceSheet},
		{Year: 2024, Quarter: 0, Type: domain.StatementIncome},
	} {
		require.NoError(t, db.Create(&s).Error)
	}

	statements, err := svc.Statements(ctx)
	require.NoError(t, err)
	periods := make([][2]int, len(statements))
	for i, s := range statements {
		periods[i] = [2]int{s.Year, s.Quarter}
	}
	assert.Equal(t, [][2]int{{2025, 2}, {2025, 1}, {2024, 0}, {2024, 4}}, periods)

	latest, err := svc.LatestStatement(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2025, latest.Year)
	assert.Equal(t, 2, latest.Quarter)

	annual, err := svc.StatementForYear(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, 0, annual.Quarter, "a full-year statement is newer than its quarters")
	assert.Equal(t, domain.StatementIncome, annual.Type)

	_, err = svc.StatementForYear(ctx, 2023)
	requireServiceError(t, err, ErrTypeNotFound)
}

func TestCatalogService_LatestStatement_EmptyIsNotFound(t *testing.T) {
	svc, db := setupCatalog(t)
	require.NoError(t, db.Where("1 = 1").Delete(&domain.FinancialStatement{}).Error)

	_, err := svc.LatestStatement(context.Background())

	svcErr := requireServiceError(t, err, ErrTypeNotFound)
	assert.Equal(t, MsgStatementNotFound, svcErr.Message)
}

func TestCatalogService_ClosedDatabaseIsInternal(t *testing.T) {
	svc, db := setupCatalog(t)
	require.NoError(t, database.Close(db))

	_, err := svc.Product(context.Background(), "clavehr")

	svcErr := requireServiceError(t, err, ErrTypeInternal)
	assert.Error(t, svcErr.Err)
}

func TestCatalogService_Categories(t *testing.T) {
	svc, _ := setupCatalog(t)

	categories, err := svc.Categories(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 3)
	for _, c := range categories {
		for _, s := range c.Services {
			assert.Equal(t, c.ID, s.Category)
		}
	}
	assert.Equal(t, "risk-management", categories[2].Services[0].ID)
}
