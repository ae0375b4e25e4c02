package service_test

import (
	"io"
	"testing"
	"time"

	"estatevoice-backend/internal/database/models"
	apperrors "estatevoice-backend/internal/errors"
	"estatevoice-backend/internal/mocks"
	"estatevoice-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ConversationServiceTestSuite defines the test suite for ConversationService
type ConversationServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *mocks.MockConversationRepositoryInterface
	mockLeadRepo *mocks.MockLeadRepositoryInterface
	mockTasks    *mocks.MockTaskEnqueuer
	service      *service.ConversationService
	tenantID     uuid.UUID
}

// SetupTest sets up the test suite
func (suite *ConversationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockConversationRepositoryInterface(suite.ctrl)
	suite.mockLeadRepo = mocks.NewMockLeadRepositoryInterface(suite.ctrl)
	suite.mockTasks = mocks.NewMockTaskEnqueuer(suite.ctrl)
	suite.tenantID = uuid.New()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	suite.service = service.NewConversationService(
		suite.mockRepo,
		suite.mockLeadRepo,
		suite.mockTasks,
		validator.New(),
		logger,
	)
}

// TearDownTest cleans up after each test
func (suite *ConversationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ConversationServiceTestSuite) newConversation(status models.ConversationStatus) *models.Conversation {
	conversation := &models.Conversation{
		TenantID:     suite.tenantID,
		VoiceAgentID: uuid.New(),
		Channel:      models.ConversationChannelVoice,
		Status:       status,
		StartedAt:    time.Now().UTC().Add(-10 * time.Minute),
	}
	conversation.ID = uuid.New()
	return conversation
}

// TestStartConversation tests opening a conversation
func (suite *ConversationServiceTestSuite) TestStartConversation() {
	req := &service.StartConversationRequest{VoiceAgentID: uuid.New()}

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(conversation *models.Conversation) error {
			assert.Equal(suite.T(), suite.tenantID, conversation.TenantID)
			assert.Equal(suite.T(), models.ConversationStatusActive, conversation.Status)
			assert.Equal(suite.T(), models.ConversationChannelVoice, conversation.Channel)
			conversation.ID = uuid.New()
			return nil
		}).
		Times(1)

	response, err := suite.service.StartConversation(suite.tenantID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "active", response.Status)
	assert.Equal(suite.T(), "voice", response.Channel)
}

// TestStartConversationWithLead tests the lead existence check
func (suite *ConversationServiceTestSuite) TestStartConversationWithLead() {
	leadID := uuid.New()
	req := &service.StartConversationRequest{VoiceAgentID: uuid.New(), LeadID: &leadID}

	suite.mockLeadRepo.EXPECT().
		GetByID(suite.tenantID, leadID).
		Return(nil, apperrors.ErrLeadNotFound).
		Times(1)

	response, err := suite.service.StartConversation(suite.tenantID, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrLeadNotFound)
}

// TestStartConversationMissingAgent tests struct validation
func (suite *ConversationServiceTestSuite) TestStartConversationMissingAgent() {
	response, err := suite.service.StartConversation(suite.tenantID, &service.StartConversationRequest{})

	assert.Nil(suite.T(), response)
	assert.Error(suite.T(), err)
}

// TestAppendTurn tests recording a caller turn and the running average update
func (suite *ConversationServiceTestSuite) TestAppendTurn() {
	conversation := suite.newConversation(models.ConversationStatusActive)
	conversation.TurnCount = 2
	conversation.CallerTurnCount = 1
	conversation.AvgTurnDurationMs = 2000

	suite.mockRepo.EXPECT().GetByID(suite.tenantID, conversation.ID).Return(conversation, nil).Times(1)
	suite.mockRepo.EXPECT().NextSequence(conversation.ID).Return(3, nil).Times(1)
	suite.mockRepo.EXPECT().
		AppendTurn(gomock.Any()).
		DoAndReturn(func(turn *models.ConversationTurn) error {
			assert.Equal(suite.T(), 3, turn.Sequence)
			assert.Equal(suite.T(), models.TurnRoleCaller, turn.Role)
			turn.ID = uuid.New()
			return nil
		}).
		Times(1)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(updated *models.Conversation) error {
			// (2000*1 + 5000) / 2 = 3500 across caller turns
			assert.Equal(suite.T(), 3, updated.TurnCount)
			assert.Equal(suite.T(), 2, updated.CallerTurnCount)
			assert.Equal(suite.T(), int64(3500), updated.AvgTurnDurationMs)
			return nil
		}).
		Times(1)

	response, err := suite.service.AppendTurn(suite.tenantID, conversation.ID, &service.AppendTurnRequest{
		Role:       "caller",
		Content:    "My budget is around 500k",
		DurationMs: 5000,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, response.Sequence)
}

// TestAppendAgentTurnKeepsAverage tests that agent turns, which carry no
// spoken duration, do not drag the caller average down
func (suite *ConversationServiceTestSuite) TestAppendAgentTurnKeepsAverage() {
	conversation := suite.newConversation(models.ConversationStatusActive)
	conversation.TurnCount = 3
	conversation.CallerTurnCount = 2
	conversation.AvgTurnDurationMs = 2500

	suite.mockRepo.EXPECT().GetByID(suite.tenantID, conversation.ID).Return(conversation, nil).Times(1)
	suite.mockRepo.EXPECT().NextSequence(conversation.ID).Return(4, nil).Times(1)
	suite.mockRepo.EXPECT().AppendTurn(gomock.Any()).Return(nil).Times(1)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(updated *models.Conversation) error {
			assert.Equal(suite.T(), 4, updated.TurnCount)
			assert.Equal(suite.T(), 2, updated.CallerTurnCount)
			assert.Equal(suite.T(), int64(2500), updated.AvgTurnDurationMs)
			return nil
		}).
		Times(1)

	_, err := suite.service.AppendTurn(suite.tenantID, conversation.ID, &service.AppendTurnRequest{
		Role:    "agent",
		Content: "What neighborhoods are you considering?",
	})

	assert.NoError(suite.T(), err)
}

// TestAppendTurnNotActive tests appending to a closed conversation
func (suite *ConversationServiceTestSuite) TestAppendTurnNotActive() {
	conversation := suite.newConversation(models.ConversationStatusCompleted)

	suite.mockRepo.EXPECT().GetByID(suite.tenantID, conversation.ID).Return(conversation, nil).Times(1)

	response, err := suite.service.AppendTurn(suite.tenantID, conversation.ID, &service.AppendTurnRequest{
		Role:    "caller",
		Content: "Hello?",
	})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrConversationNotActive)
}

// TestAppendTurnInvalidRole tests role validation
func (suite *ConversationServiceTestSuite) TestAppendTurnInvalidRole() {
	response, err := suite.service.AppendTurn(suite.tenantID, uuid.New(), &service.AppendTurnRequest{
		Role:    "narrator",
		Content: "Hello",
	})

	assert.Nil(suite.T(), response)
	assert.Error(suite.T(), err)
}

// TestRecordScore tests storing the latest qualification score
func (suite *ConversationServiceTestSuite) TestRecordScore() {
	conversation := suite.newConversation(models.ConversationStatusActive)

	suite.mockRepo.EXPECT().GetByID(suite.tenantID, conversation.ID).Return(conversation, nil).Times(1)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(updated *models.Conversation) error {
			assert.Equal(suite.T(), 65, updated.LastScore)
			return nil
		}).
		Times(1)

	err := suite.service.RecordScore(suite.tenantID, conversation.ID, 65)

	assert.NoError(suite.T(), err)
}

// TestEndConversation tests closing a conversation as completed
func (suite *ConversationServiceTestSuite) TestEndConversation() {
	conversation := suite.newConversation(models.ConversationStatusActive)

	suite.mockRepo.EXPECT().GetByID(suite.tenantID, conversation.ID).Return(conversation, nil).Times(1)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)
	suite.mockTasks.EXPECT().
		EnqueueConversationAnalytics(suite.tenantID, conversation.ID).
		Return(nil).
		Times(1)

	response, err := suite.service.EndConversation(suite.tenantID, conversation.ID, false)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "completed", response.Status)
	assert.NotNil(suite.T(), response.EndedAt)
}

// TestEndConversationAbandoned tests closing a conversation as abandoned
func (suite *ConversationServiceTestSuite) TestEndConversationAbandoned() {
	conversation := suite.newConversation(models.ConversationStatusActive)

	suite.mockRepo.EXPECT().GetByID(suite.tenantID, conversation.ID).Return(conversation, nil).Times(1)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)
	suite.mockTasks.EXPECT().
		EnqueueConversationAnalytics(suite.tenantID, conversation.ID).
		Return(nil).
		Times(1)

	response, err := suite.service.EndConversation(suite.tenantID, conversation.ID, true)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "abandoned", response.Status)
}

// TestEndConversationAlreadyEnded tests ending twice
func (suite *ConversationServiceTestSuite) TestEndConversationAlreadyEnded() {
	conversation := suite.newConversation(models.ConversationStatusCompleted)

	suite.mockRepo.EXPECT().GetByID(suite.tenantID, conversation.ID).Return(conversation, nil).Times(1)

	response, err := suite.service.EndConversation(suite.tenantID, conversation.ID, false)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrConversationNotActive)
}

// TestCallerTranscript tests assembling the caller-side transcript
func (suite *ConversationServiceTestSuite) TestCallerTranscript() {
	conversation := suite.newConversation(models.ConversationStatusCompleted)

	suite.mockRepo.EXPECT().GetByID(suite.tenantID, conversation.ID).Return(conversation, nil).Times(1)
	suite.mockRepo.EXPECT().
		GetTurns(conversation.ID).
		Return([]models.ConversationTurn{
			{Sequence: 1, Role: models.TurnRoleAgent, Content: "How can I help?"},
			{Sequence: 2, Role: models.TurnRoleCaller, Content: "Looking for a condo"},
			{Sequence: 3, Role: models.TurnRoleAgent, Content: "What is your budget?"},
			{Sequence: 4, Role: models.TurnRoleCaller, Content: "Around 500k"},
		}, nil).
		Times(1)

	transcript, err := suite.service.CallerTranscript(suite.tenantID, conversation.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Looking for a condo\nAround 500k", transcript)
}

// TestHistory tests mapping turns to chat messages
func (suite *ConversationServiceTestSuite) TestHistory() {
	conversation := suite.newConversation(models.ConversationStatusActive)

	suite.mockRepo.EXPECT().GetByID(suite.tenantID, conversation.ID).Return(conversation, nil).Times(1)
	suite.mockRepo.EXPECT().
		GetTurns(conversation.ID).
		Return([]models.ConversationTurn{
			{Sequence: 1, Role: models.TurnRoleAgent, Content: "How can I help?"},
			{Sequence: 2, Role: models.TurnRoleCaller, Content: "Looking for a condo"},
		}, nil).
		Times(1)

	messages, err := suite.service.History(suite.tenantID, conversation.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), messages, 2)
	assert.Equal(suite.T(), "assistant", messages[0].Role)
	assert.Equal(suite.T(), "user", messages[1].Role)
}

// TestRecomputeAnalytics tests rebuilding bookkeeping from stored turns
func (suite *ConversationServiceTestSuite) TestRecomputeAnalytics() {
	conversation := suite.newConversation(models.ConversationStatusCompleted)

	suite.mockRepo.EXPECT().GetByID(suite.tenantID, conversation.ID).Return(conversation, nil).Times(1)
	suite.mockRepo.EXPECT().
		GetTurns(conversation.ID).
		Return([]models.ConversationTurn{
			{Sequence: 1, Role: models.TurnRoleAgent, Content: "How can I help?", DurationMs: 1000},
			{Sequence: 2, Role: models.TurnRoleCaller, Content: "I'm pre-approved and my budget is $600k", DurationMs: 3000},
		}, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(updated *models.Conversation) error {
			assert.Equal(suite.T(), 2, updated.TurnCount)
			assert.Equal(suite.T(), 1, updated.CallerTurnCount)
			// The agent's 1000ms does not count toward the caller average.
			assert.Equal(suite.T(), int64(3000), updated.AvgTurnDurationMs)
			// budget + financing signals
			assert.Equal(suite.T(), 45, updated.LastScore)
			return nil
		}).
		Times(1)

	err := suite.service.RecomputeAnalytics(suite.tenantID, conversation.ID)

	assert.NoError(suite.T(), err)
}

// TestConversationServiceTestSuite runs the test suite
func TestConversationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConversationServiceTestSuite))
}
