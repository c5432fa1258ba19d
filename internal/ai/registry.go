package ai

// Credentials holds the per-provider API keys and model overrides the
// registry is built from. Read once at startup; never mutated afterwards.
type Credentials struct {
	OpenRouterKey string
	GoogleKey     string
	GroqKey       string
	TogetherKey   string
	AnthropicKey  string

	OpenRouterModel string
	GeminiModel     string
	GroqModel       string
	TogetherModel   string
	AnthropicModel  string

	DefaultProvider string
}

// descriptors is the fixed provider catalogue. Order matters: it is the
// suggestion order shown to callers, and mock always comes last.
var descriptors = []ProviderDescriptor{
	{ID: "openrouter", Name: "OpenRouter (DeepSeek)", Description: "Free: DeepSeek model", Requires: "OPENROUTER_API_KEY"},
	{ID: "gemini", Name: "Google Gemini", Description: "Free: 1,500 requests/day", Requires: "GOOGLE_API_KEY"},
	{ID: "groq", Name: "Groq (Llama 3.1)", Description: "Free: 14,400 requests/day", Requires: "GROQ_API_KEY"},
	{ID: "together", Name: "Together AI", Description: "Free: $1 credit on signup", Requires: "TOGETHER_API_KEY"},
	{ID: "anthropic", Name: "Anthropic Claude", Description: "Paid: Pay per token", Requires: "ANTHROPIC_API_KEY"},
	{ID: "mock", Name: "Demo Mode", Description: "No API key required"},
}

// Registry maps provider ids to callable providers. Built once at startup
// from the configured credentials and passed to the Generator explicitly.
type Registry struct {
	providers map[string]Provider
	defaultID string
}

// NewRegistry constructs the registry from the given credentials. Providers
// whose key is absent are simply not registered.
func NewRegistry(creds Credentials) *Registry {
	r := &Registry{
		providers: make(map[string]Provider),
		defaultID: creds.DefaultProvider,
	}
	if r.defaultID == "" {
		r.defaultID = "openrouter"
	}

	if creds.OpenRouterKey != "" {
		r.providers["openrouter"] = newOpenAICompat(creds.OpenRouterKey, openRouterBaseURL, orDefault(creds.OpenRouterModel, "deepseek/deepseek-chat-free"))
	}
	if creds.GoogleKey != "" {
		r.providers["gemini"] = newGemini(creds.GoogleKey, orDefault(creds.GeminiModel, "gemini-1.5-flash"))
	}
	if creds.GroqKey != "" {
		r.providers["groq"] = newOpenAICompat(creds.GroqKey, groqBaseURL, orDefault(creds.GroqModel, "llama-3.1-70b-versatile"))
	}
	if creds.TogetherKey != "" {
		r.providers["together"] = newOpenAICompat(creds.TogetherKey, togetherBaseURL, orDefault(creds.TogetherModel, "meta-llama/Llama-3-70b-chat-hf"))
	}
	if creds.AnthropicKey != "" {
		r.providers["anthropic"] = newAnthropic(creds.AnthropicKey, orDefault(creds.AnthropicModel, "claude-sonnet-4-20250514"))
	}
	return r
}

// Available lists the configured providers in fixed priority order. Mock is
// always present and always last; an empty environment yields just mock.
func (r *Registry) Available() []ProviderDescriptor {
	out := make([]ProviderDescriptor, 0, len(descriptors))
	for _, d := range descriptors {
		if d.ID == "mock" || r.providers[d.ID] != nil {
			out = append(out, d)
		}
	}
	return out
}

// Resolve returns the provider for id, or nil when the id is unknown, is
// "mock", or names a provider whose credential is not configured. A nil
// result means: use the mock generator.
func (r *Registry) Resolve(id string) Provider {
	return r.providers[id]
}

// Default returns the configured default provider id.
func (r *Registry) Default() string {
	return r.defaultID
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
