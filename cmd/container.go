package main

import (
	"context"
	"os"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/jinhyuk-lee/resumate/internal/ai/provider"
	"github.com/jinhyuk-lee/resumate/pkg/logx"
	"github.com/jinhyuk-lee/resumate/wizard/company"
	"github.com/jinhyuk-lee/resumate/wizard/company/companyapi"
	"github.com/jinhyuk-lee/resumate/wizard/company/companysrv"
	"github.com/jinhyuk-lee/resumate/wizard/resume"
	"github.com/jinhyuk-lee/resumate/wizard/resume/resumeapi"
	"github.com/jinhyuk-lee/resumate/wizard/resume/resumesrv"
	"github.com/jinhyuk-lee/resumate/wizard/session"
	"github.com/jinhyuk-lee/resumate/wizard/session/sessionapi"
	"github.com/jinhyuk-lee/resumate/wizard/session/sessioninfra"
	"github.com/jinhyuk-lee/resumate/wizard/session/sessionsrv"
)

const (
	defaultModel      = "gpt-5"
	defaultSessionTTL = 24 * time.Hour

	// The placeholder key some deploy templates ship with. Treated the same
	// as no key at all: demo mode, no provider calls.
	dummyAPIKey = "dummy-key"
)

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	Redis *redis.Client

	// Domain Services
	CompanyService *companysrv.Service
	ResumeService  *resumesrv.Service
	SessionService *sessionsrv.Service

	// API Handlers
	CompanyHandlers *companyapi.Handlers
	ResumeHandlers  *resumeapi.Handlers
	SessionHandlers *sessionapi.Handlers
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initServices()
	return c
}

// Close releases held infrastructure connections
func (c *Container) Close() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logx.Warnf("Failed to close Redis client: %v", err)
		}
	}
}

func (c *Container) initServices() {
	// 1. LLM Provider
	// Missing or placeholder credentials put both proxies in demo mode.
	apiKey := os.Getenv("OPENAI_API_KEY")
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = defaultModel
	}

	var companyCompleter company.Completer
	var resumeCompleter resume.Completer
	if apiKey != "" && apiKey != dummyAPIKey {
		client := provider.NewClient(apiKey, model)
		companyCompleter = client
		resumeCompleter = client
		logx.Infof("LLM provider configured with model %s", model)
	} else {
		logx.Warn("OPENAI_API_KEY not set, running in demo mode")
	}

	// 2. Session Store
	store := c.initSessionStore()

	// 3. Domain Services
	c.CompanyService = companysrv.NewService(companyCompleter)
	c.ResumeService = resumesrv.NewService(resumeCompleter)
	c.SessionService = sessionsrv.NewService(store, c.CompanyService, c.ResumeService)

	// 4. Handlers
	c.CompanyHandlers = companyapi.NewHandlers(c.CompanyService)
	c.ResumeHandlers = resumeapi.NewHandlers(c.ResumeService)
	c.SessionHandlers = sessionapi.NewHandlers(c.SessionService)
}

func (c *Container) initSessionStore() session.Store {
	backend := os.Getenv("SESSION_BACKEND")
	if backend != "redis" {
		logx.Info("Using in-memory session store")
		return sessioninfra.NewMemoryStore()
	}

	c.Redis = redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASS"),
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	ttl := defaultSessionTTL
	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			logx.Warnf("Invalid SESSION_TTL %q, using default: %v", raw, err)
		} else {
			ttl = parsed
		}
	}

	logx.Infof("Using Redis session store (ttl %s)", ttl)
	return sessioninfra.NewRedisStore(c.Redis, ttl)
}
