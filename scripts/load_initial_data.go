package main

import (
	"estatevoice-backend/internal/config"
	"estatevoice-backend/internal/database"
	"estatevoice-backend/internal/database/models"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TenantData struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name"`
	Domain      string `yaml:"domain"`
	Plan        string `yaml:"plan"`
}

type UserData struct {
	TenantName string `yaml:"tenant_name"`
	Email      string `yaml:"email"`
	Password   string `yaml:"password"`
	FullName   string `yaml:"full_name"`
	Role       string `yaml:"role"`
}

type VoiceAgentData struct {
	TenantName   string  `yaml:"tenant_name"`
	Name         string  `yaml:"name"`
	Greeting     string  `yaml:"greeting"`
	SystemPrompt string  `yaml:"system_prompt"`
	LLMModel     string  `yaml:"llm_model,omitempty"`
	Temperature  float64 `yaml:"temperature,omitempty"`
	TTSProvider  string  `yaml:"tts_provider,omitempty"`
	VoiceID      string  `yaml:"voice_id"`
	Language     string  `yaml:"language,omitempty"`
	IsDefault    bool    `yaml:"is_default"`
}

type LeadData struct {
	TenantName     string `yaml:"tenant_name"`
	FullName       string `yaml:"full_name"`
	Email          string `yaml:"email,omitempty"`
	Phone          string `yaml:"phone,omitempty"`
	Source         string `yaml:"source"`
	Status         string `yaml:"status,omitempty"`
	BudgetMin      int64  `yaml:"budget_min,omitempty"`
	BudgetMax      int64  `yaml:"budget_max,omitempty"`
	Timeline       string `yaml:"timeline,omitempty"`
	PreferredAreas string `yaml:"preferred_areas,omitempty"`
	Notes          string `yaml:"notes,omitempty"`
}

type PropertyData struct {
	TenantName   string  `yaml:"tenant_name"`
	MLSNumber    string  `yaml:"mls_number"`
	Address      string  `yaml:"address"`
	City         string  `yaml:"city"`
	State        string  `yaml:"state"`
	ZipCode      string  `yaml:"zip_code"`
	Price        int64   `yaml:"price"`
	Bedrooms     int     `yaml:"bedrooms,omitempty"`
	Bathrooms    float64 `yaml:"bathrooms,omitempty"`
	SquareFeet   int     `yaml:"square_feet,omitempty"`
	PropertyType string  `yaml:"property_type,omitempty"`
	Status       string  `yaml:"status,omitempty"`
	Description  string  `yaml:"description,omitempty"`
}

// File structures
type TenantsFile struct {
	Tenants []TenantData `yaml:"tenants"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type VoiceAgentsFile struct {
	VoiceAgents []VoiceAgentData `yaml:"voice_agents"`
}

type LeadsFile struct {
	Leads []LeadData `yaml:"leads"`
}

type PropertiesFile struct {
	Properties []PropertyData `yaml:"properties"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	tenants, err := loadTenants(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load tenants: %w", err)
	}

	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	voiceAgents, err := loadVoiceAgents(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load voice agents: %w", err)
	}

	leads, err := loadLeads(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load leads: %w", err)
	}

	properties, err := loadProperties(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load properties: %w", err)
	}

	// Create tenants first
	tenantMap := make(map[string]*models.Tenant)
	tenantCreated := 0
	for _, tenantData := range tenants {
		tenant, created, err := createTenant(db, tenantData)
		if err != nil {
			return fmt.Errorf("failed to create tenant %s: %w", tenantData.Name, err)
		}
		tenantMap[tenantData.Name] = tenant
		if created {
			tenantCreated++
		}
	}
	log.Printf("📋 Tenants: %d created, %d total", tenantCreated, len(tenants))

	// Create users
	userCreated := 0
	for _, userData := range users {
		_, created, err := createUser(db, userData, tenantMap)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(users))

	// Create voice agents
	agentCreated := 0
	for _, agentData := range voiceAgents {
		_, created, err := createVoiceAgent(db, agentData, tenantMap)
		if err != nil {
			return fmt.Errorf("failed to create voice agent %s: %w", agentData.Name, err)
		}
		if created {
			agentCreated++
		}
	}
	log.Printf("📋 Voice agents: %d created, %d total", agentCreated, len(voiceAgents))

	// Create leads
	leadCreated := 0
	for _, leadData := range leads {
		_, created, err := createLead(db, leadData, tenantMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create lead %s: %v", leadData.FullName, err)
			continue // Continue with other leads
		}
		if created {
			leadCreated++
		}
	}
	log.Printf("📋 Leads: %d created, %d total", leadCreated, len(leads))

	// Create properties
	propertyCreated := 0
	for _, propertyData := range properties {
		_, created, err := createProperty(db, propertyData, tenantMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create property %s: %v", propertyData.MLSNumber, err)
			continue // Continue with other properties
		}
		if created {
			propertyCreated++
		}
	}
	log.Printf("📋 Properties: %d created, %d total", propertyCreated, len(properties))

	return nil
}

func loadTenants(dataDir string) ([]TenantData, error) {
	var allTenants []TenantData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "tenants") {
			var file TenantsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTenants = append(allTenants, file.Tenants...)
		}
		return nil
	})

	return allTenants, err
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func loadVoiceAgents(dataDir string) ([]VoiceAgentData, error) {
	var allAgents []VoiceAgentData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "voice_agents") {
			var file VoiceAgentsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allAgents = append(allAgents, file.VoiceAgents...)
		}
		return nil
	})

	return allAgents, err
}

func loadLeads(dataDir string) ([]LeadData, error) {
	var allLeads []LeadData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "leads") {
			var file LeadsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allLeads = append(allLeads, file.Leads...)
		}
		return nil
	})

	return allLeads, err
}

func loadProperties(dataDir string) ([]PropertyData, error) {
	var allProperties []PropertyData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "properties") {
			var file PropertiesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allProperties = append(allProperties, file.Properties...)
		}
		return nil
	})

	return allProperties, err
}

func createTenant(db *gorm.DB, tenantData TenantData) (*models.Tenant, bool, error) {
	var tenant models.Tenant
	if err := db.Where("name = ?", tenantData.Name).First(&tenant).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			plan := models.TenantPlanTrial
			if tenantData.Plan != "" {
				plan = models.TenantPlan(tenantData.Plan)
			}

			tenant = models.Tenant{
				Name:        tenantData.Name,
				DisplayName: tenantData.DisplayName,
				Domain:      tenantData.Domain,
				Plan:        plan,
				Active:      true,
			}

			if err := db.Create(&tenant).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create tenant: %w", err)
			}
			return &tenant, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query tenant: %w", err)
		}
	}

	return &tenant, false, nil // created = false (existing)
}

func createUser(db *gorm.DB, userData UserData, tenantMap map[string]*models.Tenant) (*models.User, bool, error) {
	tenant := tenantMap[userData.TenantName]
	if tenant == nil {
		return nil, false, fmt.Errorf("tenant %s not found for user %s", userData.TenantName, userData.Email)
	}

	var user models.User
	if err := db.Where("email = ? AND tenant_id = ?", userData.Email, tenant.ID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hash, err := bcrypt.GenerateFromPassword([]byte(userData.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, false, fmt.Errorf("failed to hash password: %w", err)
			}

			role := models.UserRoleAgent
			if userData.Role != "" {
				role = models.UserRole(userData.Role)
			}

			user = models.User{
				TenantID:     tenant.ID,
				Email:        userData.Email,
				PasswordHash: string(hash),
				FullName:     userData.FullName,
				Role:         role,
				Active:       true,
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query user: %w", err)
		}
	}

	return &user, false, nil // created = false (existing)
}

func createVoiceAgent(db *gorm.DB, agentData VoiceAgentData, tenantMap map[string]*models.Tenant) (*models.VoiceAgent, bool, error) {
	tenant := tenantMap[agentData.TenantName]
	if tenant == nil {
		return nil, false, fmt.Errorf("tenant %s not found for voice agent %s", agentData.TenantName, agentData.Name)
	}

	var agent models.VoiceAgent
	if err := db.Where("name = ? AND tenant_id = ?", agentData.Name, tenant.ID).First(&agent).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			llmModel := "gpt-4o-mini"
			if agentData.LLMModel != "" {
				llmModel = agentData.LLMModel
			}

			temperature := 0.7
			if agentData.Temperature != 0 {
				temperature = agentData.Temperature
			}

			ttsProvider := models.TTSProviderElevenLabs
			if agentData.TTSProvider != "" {
				ttsProvider = models.TTSProvider(agentData.TTSProvider)
			}

			language := "en"
			if agentData.Language != "" {
				language = agentData.Language
			}

			agent = models.VoiceAgent{
				TenantID:     tenant.ID,
				Name:         agentData.Name,
				Greeting:     agentData.Greeting,
				SystemPrompt: agentData.SystemPrompt,
				LLMModel:     llmModel,
				Temperature:  temperature,
				TTSProvider:  ttsProvider,
				VoiceID:      agentData.VoiceID,
				Language:     language,
				IsDefault:    agentData.IsDefault,
				Active:       true,
			}

			if err := db.Create(&agent).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create voice agent: %w", err)
			}
			return &agent, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query voice agent: %w", err)
		}
	}

	return &agent, false, nil // created = false (existing)
}

func createLead(db *gorm.DB, leadData LeadData, tenantMap map[string]*models.Tenant) (*models.Lead, bool, error) {
	tenant := tenantMap[leadData.TenantName]
	if tenant == nil {
		return nil, false, fmt.Errorf("tenant %s not found for lead %s", leadData.TenantName, leadData.FullName)
	}

	var lead models.Lead
	if err := db.Where("full_name = ? AND tenant_id = ?", leadData.FullName, tenant.ID).First(&lead).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			source := models.LeadSourceWeb
			if leadData.Source != "" {
				source = models.LeadSource(leadData.Source)
			}

			status := models.LeadStatusNew
			if leadData.Status != "" {
				status = models.LeadStatus(leadData.Status)
			}

			lead = models.Lead{
				TenantID:       tenant.ID,
				FullName:       leadData.FullName,
				Email:          leadData.Email,
				Phone:          leadData.Phone,
				Source:         source,
				Status:         status,
				BudgetMin:      leadData.BudgetMin,
				BudgetMax:      leadData.BudgetMax,
				Timeline:       leadData.Timeline,
				PreferredAreas: leadData.PreferredAreas,
				Notes:          leadData.Notes,
			}

			if err := db.Create(&lead).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create lead: %w", err)
			}
			return &lead, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query lead: %w", err)
		}
	}

	return &lead, false, nil // created = false (existing)
}

func createProperty(db *gorm.DB, propertyData PropertyData, tenantMap map[string]*models.Tenant) (*models.Property, bool, error) {
	tenant := tenantMap[propertyData.TenantName]
	if tenant == nil {
		return nil, false, fmt.Errorf("tenant %s not found for property %s", propertyData.TenantName, propertyData.MLSNumber)
	}

	var property models.Property
	if err := db.Where("mls_number = ? AND tenant_id = ?", propertyData.MLSNumber, tenant.ID).First(&property).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			status := models.PropertyStatusActive
			if propertyData.Status != "" {
				status = models.PropertyStatus(propertyData.Status)
			}

			now := time.Now()
			property = models.Property{
				TenantID:     tenant.ID,
				MLSNumber:    propertyData.MLSNumber,
				Address:      propertyData.Address,
				City:         propertyData.City,
				State:        propertyData.State,
				ZipCode:      propertyData.ZipCode,
				Price:        propertyData.Price,
				Bedrooms:     propertyData.Bedrooms,
				Bathrooms:    propertyData.Bathrooms,
				SquareFeet:   propertyData.SquareFeet,
				PropertyType: propertyData.PropertyType,
				Status:       status,
				ListedAt:     &now,
				Description:  propertyData.Description,
			}

			if err := db.Create(&property).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create property: %w", err)
			}
			return &property, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query property: %w", err)
		}
	}

	return &property, false, nil // created = false (existing)
}
