// README: Ordered provider registry; first available provider wins.
package ai

import "strings"

// Family identifies the request/response protocol a provider speaks.
type Family string

const (
	// FamilyGenerateContent covers Gemini-style single-turn content APIs.
	FamilyGenerateContent Family = "generate_content"
	// FamilyChatCompletion covers OpenAI-style chat completion APIs.
	FamilyChatCompletion Family = "chat_completion"
)

// Credential slots. A missing slot disables every spec that depends on it.
const (
	CredentialGemini = "gemini"
	CredentialOpenAI = "openai"
)

// ProviderSpec describes one backend the orchestrator may call.
// Registry order encodes preference and is significant.
type ProviderSpec struct {
	DisplayName   string
	ModelID       string
	Family        Family
	CredentialKey string
}

// Credentials maps credential slots to secrets. Empty values count as absent.
type Credentials map[string]string

// DefaultRegistry returns the fallback chain in preference order:
// Gemini models first (faster, cheaper in practice), chat-completion
// models as backup.
func DefaultRegistry() []ProviderSpec {
	return []ProviderSpec{
		{DisplayName: "Gemini 2.5 Flash", ModelID: "gemini-2.5-flash", Family: FamilyGenerateContent, CredentialKey: CredentialGemini},
		{DisplayName: "Gemini 2.0 Flash", ModelID: "gemini-2.0-flash", Family: FamilyGenerateContent, CredentialKey: CredentialGemini},
		{DisplayName: "GPT-4o Mini", ModelID: "gpt-4o-mini", Family: FamilyChatCompletion, CredentialKey: CredentialOpenAI},
		{DisplayName: "GPT-3.5 Turbo", ModelID: "gpt-3.5-turbo", Family: FamilyChatCompletion, CredentialKey: CredentialOpenAI},
	}
}

// isAvailable reports whether the spec's credential slot is populated.
// Skipping is a visible decision here, never a caught exception.
func isAvailable(spec ProviderSpec, creds Credentials) bool {
	return strings.TrimSpace(creds[spec.CredentialKey]) != ""
}
