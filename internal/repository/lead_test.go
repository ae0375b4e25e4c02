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

// LeadRepositoryTestSuite tests the LeadRepository
type LeadRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *LeadRepository
	factory       *testutils.LeadFactory
	tenantID      uuid.UUID
}

// SetupSuite runs before all tests in the suite
func (suite *LeadRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewLeadRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewLeadFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *LeadRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *LeadRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.tenantID = uuid.New()
}

// TearDownTest runs after each test
func (suite *LeadRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new lead
func (suite *LeadRepositoryTestSuite) TestCreate() {
	lead := suite.factory.WithTenant(suite.tenantID)

	err := suite.repo.Create(lead)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, lead.ID)
	suite.NotZero(lead.CreatedAt)
}

// TestGetByID tests retrieving a lead by ID within its tenant
func (suite *LeadRepositoryTestSuite) TestGetByID() {
	lead := suite.factory.WithTenant(suite.tenantID)
	err := suite.repo.Create(lead)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(suite.tenantID, lead.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(lead.ID, retrieved.ID)
	suite.Equal(lead.FullName, retrieved.FullName)
	suite.Equal(models.LeadStatusNew, retrieved.Status)
}

// TestGetByIDNotFound tests retrieving a non-existent lead
func (suite *LeadRepositoryTestSuite) TestGetByIDNotFound() {
	lead, err := suite.repo.GetByID(suite.tenantID, uuid.New())

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrLeadNotFound)
	suite.Nil(lead)
}

// TestGetByIDWrongTenant tests that a lead is invisible to other tenants
func (suite *LeadRepositoryTestSuite) TestGetByIDWrongTenant() {
	lead := suite.factory.WithTenant(suite.tenantID)
	err := suite.repo.Create(lead)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(uuid.New(), lead.ID)

	suite.ErrorIs(err, apperrors.ErrLeadNotFound)
	suite.Nil(retrieved)
}

// TestGetByTenantID tests listing leads with pagination
func (suite *LeadRepositoryTestSuite) TestGetByTenantID() {
	for i := 0; i < 3; i++ {
		suite.NoError(suite.repo.Create(suite.factory.WithTenant(suite.tenantID)))
	}
	// Lead belonging to another tenant must not leak in
	suite.NoError(suite.repo.Create(suite.factory.Create()))

	leads, total, err := suite.repo.GetByTenantID(suite.tenantID, 2, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(leads, 2)

	leads, total, err = suite.repo.GetByTenantID(suite.tenantID, 2, 2)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(leads, 1)
}

// TestGetByStatus tests filtering leads by status ordered by score
func (suite *LeadRepositoryTestSuite) TestGetByStatus() {
	low := suite.factory.WithTenant(suite.tenantID)
	low.Status = models.LeadStatusQualified
	low.QualificationScore = 60
	suite.NoError(suite.repo.Create(low))

	high := suite.factory.WithTenant(suite.tenantID)
	high.Status = models.LeadStatusQualified
	high.QualificationScore = 85
	suite.NoError(suite.repo.Create(high))

	fresh := suite.factory.WithTenant(suite.tenantID)
	suite.NoError(suite.repo.Create(fresh))

	leads, total, err := suite.repo.GetByStatus(suite.tenantID, models.LeadStatusQualified, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(leads, 2)
	suite.Equal(high.ID, leads[0].ID)
	suite.Equal(low.ID, leads[1].ID)
}

// TestGetByPhone tests retrieving a lead by phone number
func (suite *LeadRepositoryTestSuite) TestGetByPhone() {
	lead := suite.factory.WithTenant(suite.tenantID)
	lead.Phone = "+1-831-555-0199"
	suite.NoError(suite.repo.Create(lead))

	retrieved, err := suite.repo.GetByPhone(suite.tenantID, "+1-831-555-0199")

	suite.NoError(err)
	suite.Equal(lead.ID, retrieved.ID)
}

// TestGetByPhoneNotFound tests looking up an unknown phone number
func (suite *LeadRepositoryTestSuite) TestGetByPhoneNotFound() {
	retrieved, err := suite.repo.GetByPhone(suite.tenantID, "+1-831-555-0000")

	suite.ErrorIs(err, apperrors.ErrLeadNotFound)
	suite.Nil(retrieved)
}

// TestUpdate tests updating a lead
func (suite *LeadRepositoryTestSuite) TestUpdate() {
	lead := suite.factory.WithTenant(suite.tenantID)
	suite.NoError(suite.repo.Create(lead))

	lead.Status = models.LeadStatusQualified
	lead.QualificationScore = 75
	err := suite.repo.Update(lead)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(suite.tenantID, lead.ID)
	suite.NoError(err)
	suite.Equal(models.LeadStatusQualified, retrieved.Status)
	suite.Equal(75, retrieved.QualificationScore)
}

// TestDelete tests deleting a lead
func (suite *LeadRepositoryTestSuite) TestDelete() {
	lead := suite.factory.WithTenant(suite.tenantID)
	suite.NoError(suite.repo.Create(lead))

	err := suite.repo.Delete(suite.tenantID, lead.ID)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(suite.tenantID, lead.ID)
	suite.ErrorIs(err, apperrors.ErrLeadNotFound)
	suite.Nil(retrieved)
}

// TestDeleteWrongTenant tests that deletes are tenant scoped
func (suite *LeadRepositoryTestSuite) TestDeleteWrongTenant() {
	lead := suite.factory.WithTenant(suite.tenantID)
	suite.NoError(suite.repo.Create(lead))

	err := suite.repo.Delete(uuid.New(), lead.ID)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(suite.tenantID, lead.ID)
	suite.NoError(err)
	suite.NotNil(retrieved)
}

// TestLeadRepositoryTestSuite runs the test suite
func TestLeadRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LeadRepositoryTestSuite))
}
