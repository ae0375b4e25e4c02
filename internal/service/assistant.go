package service

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"estatevoice-backend/internal/config"
	"estatevoice-backend/internal/database/models"
	"estatevoice-backend/internal/errors"

	"github.com/sirupsen/logrus"
)

const (
	defaultLLMModel      = "gpt-4o-mini"
	defaultMaxTokens     = 512
	maxHistoryTurns      = 20
	assistantHTTPTimeout = 60 * time.Second
)

// ChatMessage is a single message in a chat completion exchange
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionRequest is the payload for the OpenAI chat completions API
type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Stream      bool          `json:"stream,omitempty"`
}

// chatCompletionResponse is the non-streaming chat completions response
type chatCompletionResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int         `json:"index"`
		Message ChatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// chatCompletionChunk is a single streaming chunk from the chat completions API
type chatCompletionChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
		FinishReason *string `json:"finish_reason"`
	} `json:"choices"`
}

// AssistantService wraps the OpenAI chat completions API for voice agent replies
type AssistantService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewAssistantService creates a new assistant service
func NewAssistantService(cfg *config.Config, log *logrus.Logger) *AssistantService {
	return &AssistantService{
		apiKey:  cfg.OpenAIAPIKey,
		baseURL: strings.TrimRight(cfg.OpenAIBaseURL, "/"),
		httpClient: &http.Client{
			Timeout: assistantHTTPTimeout,
		},
		logger: log,
	}
}

// buildMessages assembles the prompt for an agent: system prompt first, then a
// bounded window of prior turns, then the current user utterance.
func buildMessages(agent *models.VoiceAgent, history []ChatMessage, userText string) []ChatMessage {
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}

	messages := make([]ChatMessage, 0, len(history)+2)
	if agent.SystemPrompt != "" {
		messages = append(messages, ChatMessage{Role: "system", Content: agent.SystemPrompt})
	}
	messages = append(messages, history...)
	if userText != "" {
		messages = append(messages, ChatMessage{Role: "user", Content: userText})
	}
	return messages
}

func (s *AssistantService) modelFor(agent *models.VoiceAgent) string {
	if agent.LLMModel != "" {
		return agent.LLMModel
	}
	return defaultLLMModel
}

func (s *AssistantService) newRequest(ctx context.Context, payload *chatCompletionRequest) (*http.Request, error) {
	if s.apiKey == "" {
		return nil, errors.ErrOpenAIKeyMissing
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// Reply generates a complete assistant reply for the given agent and history
func (s *AssistantService) Reply(ctx context.Context, agent *models.VoiceAgent, history []ChatMessage, userText string) (string, error) {
	payload := &chatCompletionRequest{
		Model:       s.modelFor(agent),
		Messages:    buildMessages(agent, history, userText),
		Temperature: agent.Temperature,
		MaxTokens:   defaultMaxTokens,
	}

	req, err := s.newRequest(ctx, payload)
	if err != nil {
		return "", err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrLLMRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		s.logger.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"model":  payload.Model,
		}).Error("Chat completion request failed")
		return "", fmt.Errorf("%w: status %d: %s", errors.ErrLLMRequestFailed, resp.StatusCode, string(body))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("failed to decode chat response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", errors.ErrLLMRequestFailed)
	}

	return completion.Choices[0].Message.Content, nil
}

// StreamReply generates an assistant reply via the streaming API, invoking
// onDelta for each content fragment as it arrives. It returns the assembled
// full reply. A non-nil error from onDelta aborts the stream.
func (s *AssistantService) StreamReply(ctx context.Context, agent *models.VoiceAgent, history []ChatMessage, userText string, onDelta func(delta string) error) (string, error) {
	payload := &chatCompletionRequest{
		Model:       s.modelFor(agent),
		Messages:    buildMessages(agent, history, userText),
		Temperature: agent.Temperature,
		MaxTokens:   defaultMaxTokens,
		Stream:      true,
	}

	req, err := s.newRequest(ctx, payload)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrLLMRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("%w: status %d: %s", errors.ErrLLMRequestFailed, resp.StatusCode, string(body))
	}

	var full strings.Builder
	reader := bufio.NewReader(resp.Body)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			if err == io.EOF {
				break
			}
			return full.String(), fmt.Errorf("error reading stream: %w", err)
		}

		line = bytes.TrimSpace(line)
		if len(line) == 0 || !bytes.HasPrefix(line, []byte("data: ")) {
			continue
		}

		data := bytes.TrimPrefix(line, []byte("data: "))
		if bytes.Equal(data, []byte("[DONE]")) {
			break
		}

		var chunk chatCompletionChunk
		if err := json.Unmarshal(data, &chunk); err != nil {
			s.logger.Warnf("Failed to parse stream chunk: %v", err)
			continue
		}
		if len(chunk.Choices) == 0 {
			continue
		}

		delta := chunk.Choices[0].Delta.Content
		if delta != "" {
			full.WriteString(delta)
			if err := onDelta(delta); err != nil {
				return full.String(), err
			}
		}
		if chunk.Choices[0].FinishReason != nil {
			break
		}
	}

	return full.String(), nil
}
