package agentcfg

// Option overrides one field at construction time.
type Option func(*Config)

func WithAgentName(name string) Option {
	return func(c *Config) { c.AgentName = name }
}

func WithSeedPhrase(seed string) Option {
	return func(c *Config) { c.AgentSeedPhrase = seed }
}

func WithAgentPort(port int) Option {
	return func(c *Config) { c.AgentPort = port }
}

func WithDescription(desc string) Option {
	return func(c *Config) { c.AgentDescription = desc }
}

func WithHostingAddress(addr string) Option {
	return func(c *Config) { c.HostingAddress = addr }
}

func WithHostingPort(port int) Option {
	return func(c *Config) { c.HostingPort = port }
}

func WithEnv(env string) Option {
	return func(c *Config) { c.Env = env }
}

func WithAPIKey(key string) Option {
	return func(c *Config) { c.AgentverseAPIKey = key }
}

func WithMaxProcessedMessages(n int) Option {
	return func(c *Config) { c.MaxProcessedMessages = n }
}

func WithProcessedMessageTTL(minutes int) Option {
	return func(c *Config) { c.ProcessedMessageTTLMinutes = minutes }
}

func WithCleanupInterval(seconds int) Option {
	return func(c *Config) { c.CleanupIntervalSeconds = seconds }
}

func WithRateLimit(maxRequests, windowMinutes int) Option {
	return func(c *Config) {
		c.RateLimitMaxRequests = maxRequests
		c.RateLimitWindowMinutes = windowMinutes
	}
}

// WithRoot sets the directory the project directory is created under.
func WithRoot(root string) Option {
	return func(c *Config) { c.root = root }
}
