// Package agentcfg holds the validated configuration for a single agent
// project: the stored fields collected by the wizard, the derived values
// computed from them, and the full dump used as a rendering context.
package agentcfg

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Defaults for every field the wizard can leave untouched.
const (
	DefaultAgentPort              = 8000
	DefaultHostingAddress         = "localhost"
	DefaultHostingPort            = 8080
	DefaultEnv                    = "development"
	DefaultDescription            = "An ASI1 compatible agent built using 'create-agentverse-agent'."
	DefaultMaxProcessedMessages   = 1000
	DefaultProcessedMessageTTLMin = 60
	DefaultCleanupIntervalSec     = 300
	DefaultRateLimitMaxRequests   = 30
	DefaultRateLimitWindowMin     = 60
)

// Config describes one agent project to be scaffolded. Fields are validated
// by New and remain independently settable afterwards; the scaffolder calls
// Validate again before it consumes the config, so a mutated-invalid config
// is caught at the point of consumption.
//
// The struct tags double as the context-key names used by templates.
type Config struct {
	AgentName                  string `json:"agent_name"                    yaml:"agent_name"                    toml:"agent_name"                    validate:"omitempty,min=1,max=100,name_chars"`
	AgentSeedPhrase            string `json:"agent_seed_phrase"             yaml:"agent_seed_phrase"             toml:"agent_seed_phrase"             validate:"required,min=1,max=500,alphanum"`
	AgentPort                  int    `json:"agent_port"                    yaml:"agent_port"                    toml:"agent_port"                    validate:"gte=1024,lte=65535"`
	AgentDescription           string `json:"agent_description"             yaml:"agent_description"             toml:"agent_description"             validate:"required,min=1,max=500"`
	HostingAddress             string `json:"hosting_address"               yaml:"hosting_address"               toml:"hosting_address"               validate:"required,min=1,max=255"`
	HostingPort                int    `json:"hosting_port"                  yaml:"hosting_port"                  toml:"hosting_port"                  validate:"gte=1024,lte=65535"`
	Env                        string `json:"env"                           yaml:"env"                           toml:"env"                           validate:"required"`
	AgentverseAPIKey           string `json:"agentverse_api_key"            yaml:"agentverse_api_key"            toml:"agentverse_api_key"            validate:"omitempty,min=20,max=1000,agentverse_jwt"`
	MaxProcessedMessages       int    `json:"max_processed_messages"        yaml:"max_processed_messages"        toml:"max_processed_messages"        validate:"gte=1"`
	ProcessedMessageTTLMinutes int    `json:"processed_message_ttl_minutes" yaml:"processed_message_ttl_minutes" toml:"processed_message_ttl_minutes" validate:"gte=1"`
	CleanupIntervalSeconds     int    `json:"cleanup_interval_seconds"      yaml:"cleanup_interval_seconds"      toml:"cleanup_interval_seconds"      validate:"gte=10"`
	RateLimitMaxRequests       int    `json:"rate_limit_max_requests"       yaml:"rate_limit_max_requests"       toml:"rate_limit_max_requests"       validate:"gte=1"`
	RateLimitWindowMinutes     int    `json:"rate_limit_window_minutes"     yaml:"rate_limit_window_minutes"     toml:"rate_limit_window_minutes"     validate:"gte=1"`

	// root is the directory the project directory is created under. It is
	// threaded in explicitly (WithRoot) rather than read from the process
	// working directory, so the core is testable without chdir games.
	root string
}

// New builds a Config from defaults plus the given options and validates it.
// A seed phrase is generated from a cryptographically secure source when none
// is supplied.
func New(opts ...Option) (*Config, error) {
	return finalize(newDefaults(), opts...)
}

func newDefaults() *Config {
	return &Config{
		AgentPort:                  DefaultAgentPort,
		AgentDescription:           DefaultDescription,
		HostingAddress:             DefaultHostingAddress,
		HostingPort:                DefaultHostingPort,
		Env:                        DefaultEnv,
		MaxProcessedMessages:       DefaultMaxProcessedMessages,
		ProcessedMessageTTLMinutes: DefaultProcessedMessageTTLMin,
		CleanupIntervalSeconds:     DefaultCleanupIntervalSec,
		RateLimitMaxRequests:       DefaultRateLimitMaxRequests,
		RateLimitWindowMinutes:     DefaultRateLimitWindowMin,
		root:                       ".",
	}
}

func finalize(cfg *Config, opts ...Option) (*Config, error) {
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.AgentSeedPhrase == "" {
		seed, err := generateSeed()
		if err != nil {
			return nil, err
		}
		cfg.AgentSeedPhrase = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// generateSeed returns 32 bytes of hex from crypto/rand, usable as a
// credential-like value.
func generateSeed() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating seed phrase: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// DisplayName is the agent name, or "Agent " plus the first 8 characters of
// the seed phrase when no name was given.
func (c *Config) DisplayName() string {
	if c.AgentName != "" {
		return c.AgentName
	}
	seed := c.AgentSeedPhrase
	if len(seed) > 8 {
		seed = seed[:8]
	}
	return "Agent " + seed
}

// SafeName is the display name lowercased with spaces and underscores turned
// into hyphens. It is used as the project directory name.
func (c *Config) SafeName() string {
	name := strings.ToLower(c.DisplayName())
	name = strings.ReplaceAll(name, " ", "-")
	name = strings.ReplaceAll(name, "_", "-")
	return name
}

// Root returns the directory the project directory is created under.
func (c *Config) Root() string {
	return c.root
}

// ProjectPath is the directory the project will be scaffolded into.
func (c *Config) ProjectPath() string {
	return filepath.Join(c.root, c.SafeName())
}

// Route is the URL route the agent is reachable at.
func (c *Config) Route() string {
	return "/" + c.SafeName()
}

// Endpoint is the full URL of the hosting service.
func (c *Config) Endpoint() string {
	return fmt.Sprintf("http://%s:%d", c.HostingAddress, c.HostingPort)
}

// HasAPIKey reports whether an Agentverse API key was supplied.
func (c *Config) HasAPIKey() bool {
	return c.AgentverseAPIKey != ""
}

// Dump returns every stored field plus the derived values, keyed by context
// name. This is the rendering context handed to templates, so it includes
// the secrets that String leaves out.
func (c *Config) Dump() map[string]any {
	return map[string]any{
		"agent_name":                    c.AgentName,
		"agent_seed_phrase":             c.AgentSeedPhrase,
		"agent_port":                    c.AgentPort,
		"agent_description":             c.AgentDescription,
		"hosting_address":               c.HostingAddress,
		"hosting_port":                  c.HostingPort,
		"env":                           c.Env,
		"agentverse_api_key":            c.AgentverseAPIKey,
		"max_processed_messages":        c.MaxProcessedMessages,
		"processed_message_ttl_minutes": c.ProcessedMessageTTLMinutes,
		"cleanup_interval_seconds":      c.CleanupIntervalSeconds,
		"rate_limit_max_requests":       c.RateLimitMaxRequests,
		"rate_limit_window_minutes":     c.RateLimitWindowMinutes,

		"display_name":     c.DisplayName(),
		"safe_name":        c.SafeName(),
		"project_path":     c.ProjectPath(),
		"agent_route":      c.Route(),
		"hosting_endpoint": c.Endpoint(),
	}
}

// redactedKeys never appear in the human-readable representation.
var redactedKeys = map[string]struct{}{
	"agent_seed_phrase":  {},
	"agentverse_api_key": {},
}

// String is a log-safe representation: everything Dump exposes except the
// seed phrase and API key.
func (c *Config) String() string {
	dump := c.Dump()

	keys := make([]string, 0, len(dump))
	for k := range dump {
		if _, secret := redactedKeys[k]; secret {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, dump[k]))
	}

	return "Config(" + strings.Join(parts, ", ") + ")"
}
