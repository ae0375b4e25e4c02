//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"estatevoice-backend/internal/database/models"
	apperrors "estatevoice-backend/internal/errors"
	"estatevoice-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ConversationRepositoryTestSuite tests the ConversationRepository
type ConversationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ConversationRepository
	factory       *testutils.ConversationFactory
	tenantID      uuid.UUID
}

// SetupSuite runs before all tests in the suite
func (suite *ConversationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewConversationRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewConversationFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *ConversationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ConversationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.tenantID = uuid.New()
}

// TearDownTest runs after each test
func (suite *ConversationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ConversationRepositoryTestSuite) createConversation() *models.Conversation {
	conversation := suite.factory.WithTenant(suite.tenantID)
	suite.Require().NoError(suite.repo.Create(conversation))
	return conversation
}

func (suite *ConversationRepositoryTestSuite) appendTurn(conversationID uuid.UUID, sequence int, role models.TurnRole, content string) *models.ConversationTurn {
	turn := &models.ConversationTurn{
		ConversationID: conversationID,
		Sequence:       sequence,
		Role:           role,
		Content:        content,
		StartedAt:      time.Now(),
		DurationMs:     1500,
	}
	suite.Require().NoError(suite.repo.AppendTurn(turn))
	return turn
}

// TestCreate tests creating a new conversation
func (suite *ConversationRepositoryTestSuite) TestCreate() {
	conversation := suite.factory.WithTenant(suite.tenantID)

	err := suite.repo.Create(conversation)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, conversation.ID)
	suite.Equal(models.ConversationStatusActive, conversation.Status)
}

// TestGetByID tests retrieving a conversation by ID
func (suite *ConversationRepositoryTestSuite) TestGetByID() {
	conversation := suite.createConversation()

	retrieved, err := suite.repo.GetByID(suite.tenantID, conversation.ID)

	suite.NoError(err)
	suite.Equal(conversation.ID, retrieved.ID)
	suite.Equal(models.ConversationChannelVoice, retrieved.Channel)
}

// TestGetByIDNotFound tests retrieving a non-existent conversation
func (suite *ConversationRepositoryTestSuite) TestGetByIDNotFound() {
	retrieved, err := suite.repo.GetByID(suite.tenantID, uuid.New())

	suite.ErrorIs(err, apperrors.ErrConversationNotFound)
	suite.Nil(retrieved)
}

// TestGetWithTurns tests eager loading turns ordered by sequence
func (suite *ConversationRepositoryTestSuite) TestGetWithTurns() {
	conversation := suite.createConversation()
	// Insert out of order to exercise the preload ordering
	suite.appendTurn(conversation.ID, 2, models.TurnRoleCaller, "I'm looking for a three bedroom")
	suite.appendTurn(conversation.ID, 1, models.TurnRoleAgent, "Hi, how can I help?")
	suite.appendTurn(conversation.ID, 3, models.TurnRoleAgent, "What area are you interested in?")

	retrieved, err := suite.repo.GetWithTurns(suite.tenantID, conversation.ID)

	suite.NoError(err)
	suite.Len(retrieved.Turns, 3)
	suite.Equal(1, retrieved.Turns[0].Sequence)
	suite.Equal(2, retrieved.Turns[1].Sequence)
	suite.Equal(3, retrieved.Turns[2].Sequence)
	suite.Equal(models.TurnRoleAgent, retrieved.Turns[0].Role)
}

// TestGetWithTurnsNotFound tests eager loading for an unknown conversation
func (suite *ConversationRepositoryTestSuite) TestGetWithTurnsNotFound() {
	retrieved, err := suite.repo.GetWithTurns(suite.tenantID, uuid.New())

	suite.ErrorIs(err, apperrors.ErrConversationNotFound)
	suite.Nil(retrieved)
}

// TestGetByTenantID tests listing conversations newest first
func (suite *ConversationRepositoryTestSuite) TestGetByTenantID() {
	older := suite.factory.WithTenant(suite.tenantID)
	older.StartedAt = time.Now().Add(-2 * time.Hour)
	suite.NoError(suite.repo.Create(older))

	newer := suite.factory.WithTenant(suite.tenantID)
	newer.StartedAt = time.Now()
	suite.NoError(suite.repo.Create(newer))

	conversations, total, err := suite.repo.GetByTenantID(suite.tenantID, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Equal(newer.ID, conversations[0].ID)
	suite.Equal(older.ID, conversations[1].ID)
}

// TestGetByLeadID tests filtering conversations by lead
func (suite *ConversationRepositoryTestSuite) TestGetByLeadID() {
	leadID := uuid.New()

	attached := suite.factory.WithTenant(suite.tenantID)
	attached.LeadID = &leadID
	suite.NoError(suite.repo.Create(attached))

	// Anonymous session, should not match
	suite.createConversation()

	conversations, total, err := suite.repo.GetByLeadID(suite.tenantID, leadID, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(attached.ID, conversations[0].ID)
}

// TestAppendTurnDuplicateSequence tests the (conversation, sequence) unique index
func (suite *ConversationRepositoryTestSuite) TestAppendTurnDuplicateSequence() {
	conversation := suite.createConversation()
	suite.appendTurn(conversation.ID, 1, models.TurnRoleAgent, "Hello")

	duplicate := &models.ConversationTurn{
		ConversationID: conversation.ID,
		Sequence:       1,
		Role:           models.TurnRoleCaller,
		Content:        "Hi there",
		StartedAt:      time.Now(),
	}
	err := suite.repo.AppendTurn(duplicate)

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetTurns tests retrieving turns ordered by sequence
func (suite *ConversationRepositoryTestSuite) TestGetTurns() {
	conversation := suite.createConversation()
	suite.appendTurn(conversation.ID, 1, models.TurnRoleAgent, "Hello")
	suite.appendTurn(conversation.ID, 2, models.TurnRoleCaller, "Hi, I want to sell my condo")

	turns, err := suite.repo.GetTurns(conversation.ID)

	suite.NoError(err)
	suite.Len(turns, 2)
	suite.Equal("Hello", turns[0].Content)
	suite.Equal(models.TurnRoleCaller, turns[1].Role)
}

// TestNextSequence tests sequence numbering for turns
func (suite *ConversationRepositoryTestSuite) TestNextSequence() {
	conversation := suite.createConversation()

	next, err := suite.repo.NextSequence(conversation.ID)
	suite.NoError(err)
	suite.Equal(1, next)

	suite.appendTurn(conversation.ID, 1, models.TurnRoleAgent, "Hello")
	suite.appendTurn(conversation.ID, 2, models.TurnRoleCaller, "Hi")

	next, err = suite.repo.NextSequence(conversation.ID)
	suite.NoError(err)
	suite.Equal(3, next)
}

// TestUpdate tests updating conversation bookkeeping fields
func (suite *ConversationRepositoryTestSuite) TestUpdate() {
	conversation := suite.createConversation()

	ended := time.Now()
	conversation.Status = models.ConversationStatusCompleted
	conversation.EndedAt = &ended
	conversation.TurnCount = 4
	conversation.AvgTurnDurationMs = 2500
	suite.NoError(suite.repo.Update(conversation))

	retrieved, err := suite.repo.GetByID(suite.tenantID, conversation.ID)
	suite.NoError(err)
	suite.Equal(models.ConversationStatusCompleted, retrieved.Status)
	suite.NotNil(retrieved.EndedAt)
	suite.Equal(4, retrieved.TurnCount)
	suite.Equal(int64(2500), retrieved.AvgTurnDurationMs)
}

// TestDelete tests deleting a conversation
func (suite *ConversationRepositoryTestSuite) TestDelete() {
	conversation := suite.createConversation()
	suite.appendTurn(conversation.ID, 1, models.TurnRoleAgent, "Hello")

	suite.NoError(suite.repo.Delete(suite.tenantID, conversation.ID))

	retrieved, err := suite.repo.GetByID(suite.tenantID, conversation.ID)
	suite.ErrorIs(err, apperrors.ErrConversationNotFound)
	suite.Nil(retrieved)
}

// TestConversationRepositoryTestSuite runs the test suite
func TestConversationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ConversationRepositoryTestSuite))
}
