package factory

import (
	"fmt"

	"invoxa-search-be/pkg/llm"
	"invoxa-search-be/pkg/llm/gemini"
	"invoxa-search-be/pkg/llm/ollama"
)

func NewProvider(providerType, modelName, baseURL, geminiApiKey string) (llm.Provider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case "gemini":
		return gemini.NewGeminiProvider(geminiApiKey, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
