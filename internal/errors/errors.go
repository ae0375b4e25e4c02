package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in tenant"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTenantNotFound         = &NotFoundError{Entity: "tenant"}
	ErrUserNotFound           = &NotFoundError{Entity: "user"}
	ErrLeadNotFound           = &NotFoundError{Entity: "lead"}
	ErrPropertyNotFound       = &NotFoundError{Entity: "property"}
	ErrVoiceAgentNotFound     = &NotFoundError{Entity: "voice agent"}
	ErrConversationNotFound   = &NotFoundError{Entity: "conversation"}
	ErrMarketSnapshotNotFound = &NotFoundError{Entity: "market snapshot"}
)

// Already Exists Errors
var (
	ErrTenantExists     = &AlreadyExistsError{Entity: "tenant", Context: "with this name or domain"}
	ErrUserExists       = &AlreadyExistsError{Entity: "user", Context: "with this email in the tenant"}
	ErrPropertyExists   = &AlreadyExistsError{Entity: "property", Context: "with this MLS number in the tenant"}
	ErrVoiceAgentExists = &AlreadyExistsError{Entity: "voice agent", Context: "with this name in the tenant"}
)

// Business Logic Errors
var (
	ErrInvalidStatus           = errors.New("invalid status")
	ErrLeadAlreadyConverted    = errors.New("lead is already converted")
	ErrConversationNotActive   = errors.New("conversation is not active")
	ErrConversationHasNoTurns  = errors.New("conversation has no turns")
	ErrNoTranscript            = errors.New("no transcript available to score")
	ErrNoDefaultVoiceAgent     = errors.New("tenant has no default voice agent")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrInvalidPriceRange       = errors.New("invalid price range")
	ErrTenantSuspended         = errors.New("tenant is suspended")
)

// Authentication Errors
var (
	ErrInvalidCredentials  = &AuthenticationError{Message: "invalid email or password"}
	ErrAmbiguousEmail      = &AuthenticationError{Message: "email matches accounts in multiple workspaces"}
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")

	ErrTenantIDNotFound  = &AuthenticationError{Message: "tenant id not found in context"}
	ErrUserEmailNotFound = &AuthenticationError{Message: "user email not found in context"}
)

// External Service Errors
var (
	ErrTTSProviderUnavailable  = errors.New("all TTS providers are unavailable")
	ErrLLMRequestFailed        = errors.New("LLM completion request failed")
	ErrMLSRequestFailed        = errors.New("MLS API request failed")
	ErrCRMPushFailed           = errors.New("CRM lead push failed")
	ErrProviderNotConfigured   = errors.New("provider is not configured")

	ErrElevenLabsKeyMissing = &ConfigurationError{Message: "ELEVENLABS_API_KEY is not set"}
	ErrOpenAIKeyMissing     = &ConfigurationError{Message: "OPENAI_API_KEY is not set"}
	ErrMLSConfigMissing     = &ConfigurationError{Message: "MLS feed configuration missing: MLS_BASE_URL or MLS_API_KEY"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
