package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"estatevoice-backend/internal/config"
	"estatevoice-backend/internal/database/models"
	"estatevoice-backend/internal/errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2/clientcredentials"
)

// crmLeadPayload is the Salesforce Lead sObject body
type crmLeadPayload struct {
	FirstName   string `json:"FirstName,omitempty"`
	LastName    string `json:"LastName"`
	Email       string `json:"Email,omitempty"`
	Phone       string `json:"Phone,omitempty"`
	LeadSource  string `json:"LeadSource,omitempty"`
	Description string `json:"Description,omitempty"`
	Rating      string `json:"Rating,omitempty"`
}

type crmCreateResponse struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
}

// CRMService pushes qualified leads into Salesforce
type CRMService struct {
	instanceURL string
	httpClient  *http.Client
	configured  bool
	logger      *logrus.Logger
}

// NewCRMService creates a new CRM service. The oauth2 client handles token
// acquisition and refresh against the Salesforce token endpoint.
func NewCRMService(cfg *config.Config, log *logrus.Logger) *CRMService {
	svc := &CRMService{
		instanceURL: strings.TrimRight(cfg.SalesforceInstanceURL, "/"),
		logger:      log,
	}

	if cfg.SalesforceClientID == "" || cfg.SalesforceClientSecret == "" || cfg.SalesforceTokenURL == "" {
		svc.httpClient = http.DefaultClient
		return svc
	}

	oauthCfg := &clientcredentials.Config{
		ClientID:     cfg.SalesforceClientID,
		ClientSecret: cfg.SalesforceClientSecret,
		TokenURL:     cfg.SalesforceTokenURL,
	}
	svc.httpClient = oauthCfg.Client(context.Background())
	svc.configured = true
	return svc
}

// Configured reports whether Salesforce credentials are present
func (s *CRMService) Configured() bool {
	return s.configured
}

// splitName splits a lead's full name into first and last parts. Salesforce
// requires LastName, so a single-word name becomes the last name.
func splitName(fullName string) (string, string) {
	parts := strings.Fields(fullName)
	switch len(parts) {
	case 0:
		return "", "Unknown"
	case 1:
		return "", parts[0]
	default:
		return strings.Join(parts[:len(parts)-1], " "), parts[len(parts)-1]
	}
}

func crmRating(score int) string {
	switch {
	case score >= 80:
		return "Hot"
	case score >= 60:
		return "Warm"
	default:
		return "Cold"
	}
}

// PushLead creates a Lead record in Salesforce and returns its CRM ID
func (s *CRMService) PushLead(ctx context.Context, lead *models.Lead) (string, error) {
	if !s.configured {
		return "", fmt.Errorf("%w: salesforce credentials not configured", errors.ErrCRMPushFailed)
	}

	firstName, lastName := splitName(lead.FullName)
	payload := crmLeadPayload{
		FirstName:   firstName,
		LastName:    lastName,
		Email:       lead.Email,
		Phone:       lead.Phone,
		LeadSource:  string(lead.Source),
		Description: lead.Notes,
		Rating:      crmRating(lead.QualificationScore),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal CRM lead: %w", err)
	}

	endpoint := s.instanceURL + "/services/data/v59.0/sobjects/Lead"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create CRM request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrCRMPushFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		s.logger.WithFields(logrus.Fields{
			"status":  resp.StatusCode,
			"lead_id": lead.ID,
		}).Error("CRM lead push failed")
		return "", fmt.Errorf("%w: status %d: %s", errors.ErrCRMPushFailed, resp.StatusCode, string(respBody))
	}

	var created crmCreateResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("failed to decode CRM response: %w", err)
	}
	return created.ID, nil
}
