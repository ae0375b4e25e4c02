//go:build integration
// +build integration

package repository

import (
	"testing"

	"estatevoice-backend/internal/database/models"
	apperrors "estatevoice-backend/internal/errors"
	"estatevoice-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TenantRepositoryTestSuite tests the TenantRepository
type TenantRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TenantRepository
	factory       *testutils.TenantFactory
}

// SetupSuite runs before all tests in the suite
func (suite *TenantRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTenantRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewTenantFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *TenantRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TenantRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TenantRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new tenant
func (suite *TenantRepositoryTestSuite) TestCreate() {
	tenant := suite.factory.Create()

	err := suite.repo.Create(tenant)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, tenant.ID)
	suite.Equal(models.TenantPlanTrial, tenant.Plan)
}

// TestGetByID tests retrieving a tenant by ID
func (suite *TenantRepositoryTestSuite) TestGetByID() {
	tenant := suite.factory.Create()
	suite.NoError(suite.repo.Create(tenant))

	retrieved, err := suite.repo.GetByID(tenant.ID)

	suite.NoError(err)
	suite.Equal(tenant.Name, retrieved.Name)
	suite.Equal(tenant.Domain, retrieved.Domain)
}

// TestGetByIDNotFound tests retrieving a non-existent tenant
func (suite *TenantRepositoryTestSuite) TestGetByIDNotFound() {
	retrieved, err := suite.repo.GetByID(uuid.New())

	suite.ErrorIs(err, apperrors.ErrTenantNotFound)
	suite.Nil(retrieved)
}

// TestGetByName tests retrieving a tenant by name
func (suite *TenantRepositoryTestSuite) TestGetByName() {
	tenant := suite.factory.Create()
	suite.NoError(suite.repo.Create(tenant))

	retrieved, err := suite.repo.GetByName(tenant.Name)

	suite.NoError(err)
	suite.Equal(tenant.ID, retrieved.ID)
}

// TestGetByNameNotFound tests looking up an unknown tenant name
func (suite *TenantRepositoryTestSuite) TestGetByNameNotFound() {
	retrieved, err := suite.repo.GetByName("missing-brokerage")

	suite.ErrorIs(err, apperrors.ErrTenantNotFound)
	suite.Nil(retrieved)
}

// TestGetByDomain tests retrieving a tenant by domain
func (suite *TenantRepositoryTestSuite) TestGetByDomain() {
	tenant := suite.factory.Create()
	suite.NoError(suite.repo.Create(tenant))

	retrieved, err := suite.repo.GetByDomain(tenant.Domain)

	suite.NoError(err)
	suite.Equal(tenant.ID, retrieved.ID)
}

// TestGetAll tests listing tenants with pagination
func (suite *TenantRepositoryTestSuite) TestGetAll() {
	for i := 0; i < 3; i++ {
		suite.NoError(suite.repo.Create(suite.factory.Create()))
	}

	tenants, total, err := suite.repo.GetAll(2, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(tenants, 2)
}

// TestUpdate tests updating a tenant
func (suite *TenantRepositoryTestSuite) TestUpdate() {
	tenant := suite.factory.Create()
	suite.NoError(suite.repo.Create(tenant))

	tenant.Plan = models.TenantPlanGrowth
	tenant.DisplayName = "Coastal Realty Group"
	suite.NoError(suite.repo.Update(tenant))

	retrieved, err := suite.repo.GetByID(tenant.ID)
	suite.NoError(err)
	suite.Equal(models.TenantPlanGrowth, retrieved.Plan)
	suite.Equal("Coastal Realty Group", retrieved.DisplayName)
}

// TestDelete tests deleting a tenant
func (suite *TenantRepositoryTestSuite) TestDelete() {
	tenant := suite.factory.Create()
	suite.NoError(suite.repo.Create(tenant))

	suite.NoError(suite.repo.Delete(tenant.ID))

	retrieved, err := suite.repo.GetByID(tenant.ID)
	suite.ErrorIs(err, apperrors.ErrTenantNotFound)
	suite.Nil(retrieved)
}

// TestTenantRepositoryTestSuite runs the test suite
func TestTenantRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TenantRepositoryTestSuite))
}
