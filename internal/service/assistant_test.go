package service_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"estatevoice-backend/internal/config"
	apperrors "estatevoice-backend/internal/errors"
	"estatevoice-backend/internal/service"
	"estatevoice-backend/internal/testutils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// AssistantServiceTestSuite defines the test suite for the LLM assistant client
type AssistantServiceTestSuite struct {
	suite.Suite
	logger *logrus.Logger
}

// SetupTest sets up the test suite
func (suite *AssistantServiceTestSuite) SetupTest() {
	suite.logger = logrus.New()
	suite.logger.SetLevel(logrus.FatalLevel)
}

func (suite *AssistantServiceTestSuite) newService(baseURL string) *service.AssistantService {
	return service.NewAssistantService(&config.Config{
		OpenAIAPIKey:  "llm-key",
		OpenAIBaseURL: baseURL,
	}, suite.logger)
}

// TestReply tests a non-streaming completion round trip
func (suite *AssistantServiceTestSuite) TestReply() {
	agent := testutils.NewVoiceAgentFactory().Create()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(suite.T(), "/v1/chat/completions", r.URL.Path)
		assert.Equal(suite.T(), "Bearer llm-key", r.Header.Get("Authorization"))

		var payload map[string]interface{}
		require.NoError(suite.T(), json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(suite.T(), agent.LLMModel, payload["model"])

		messages := payload["messages"].([]interface{})
		require.NotEmpty(suite.T(), messages)
		first := messages[0].(map[string]interface{})
		assert.Equal(suite.T(), "system", first["role"])
		assert.Equal(suite.T(), agent.SystemPrompt, first["content"])
		last := messages[len(messages)-1].(map[string]interface{})
		assert.Equal(suite.T(), "user", last["role"])
		assert.Equal(suite.T(), "Any homes near the beach?", last["content"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":    "cmpl-1",
			"model": agent.LLMModel,
			"choices": []map[string]interface{}{
				{"index": 0, "message": map[string]string{"role": "assistant", "content": "Two listings come to mind."}},
			},
		})
	}))
	defer server.Close()

	reply, err := suite.newService(server.URL).Reply(context.Background(), agent, nil, "Any homes near the beach?")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Two listings come to mind.", reply)
}

// TestReplyMissingKey tests that a missing API key is rejected before any request
func (suite *AssistantServiceTestSuite) TestReplyMissingKey() {
	svc := service.NewAssistantService(&config.Config{}, suite.logger)
	agent := testutils.NewVoiceAgentFactory().Create()

	_, err := svc.Reply(context.Background(), agent, nil, "hello")

	assert.ErrorIs(suite.T(), err, apperrors.ErrOpenAIKeyMissing)
}

// TestReplyUpstreamError tests that non-200 responses surface as request failures
func (suite *AssistantServiceTestSuite) TestReplyUpstreamError() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	agent := testutils.NewVoiceAgentFactory().Create()
	_, err := suite.newService(server.URL).Reply(context.Background(), agent, nil, "hello")

	assert.ErrorIs(suite.T(), err, apperrors.ErrLLMRequestFailed)
}

// TestStreamReply tests that streamed deltas are forwarded and assembled
func (suite *AssistantServiceTestSuite) TestStreamReply() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(suite.T(), "text/event-stream", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "text/event-stream")

		chunks := []string{"Two ", "listings ", "come to mind."}
		for _, chunk := range chunks {
			fmt.Fprintf(w, "data: {\"choices\":[{\"delta\":{\"content\":%q}}]}\n\n", chunk)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer server.Close()

	agent := testutils.NewVoiceAgentFactory().Create()
	var deltas []string
	full, err := suite.newService(server.URL).StreamReply(context.Background(), agent, nil, "hello", func(delta string) error {
		deltas = append(deltas, delta)
		return nil
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Two listings come to mind.", full)
	assert.Equal(suite.T(), []string{"Two ", "listings ", "come to mind."}, deltas)
}

// TestStreamReplyCallbackAborts tests that a callback error stops the stream
func (suite *AssistantServiceTestSuite) TestStreamReplyCallbackAborts() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"first\"}}]}\n\n")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"second\"}}]}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer server.Close()

	agent := testutils.NewVoiceAgentFactory().Create()
	abort := fmt.Errorf("caller hung up")
	calls := 0
	partial, err := suite.newService(server.URL).StreamReply(context.Background(), agent, nil, "hello", func(delta string) error {
		calls++
		return abort
	})

	assert.ErrorIs(suite.T(), err, abort)
	assert.Equal(suite.T(), 1, calls)
	assert.Equal(suite.T(), "first", partial)
}

// TestAssistantServiceTestSuite runs the test suite
func TestAssistantServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssistantServiceTestSuite))
}
