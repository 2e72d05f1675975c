package openai

import "time"

// Flavours of OpenAI-compatible endpoints and their defaults.
const (
	FlavourOpenAI   = "openai"
	FlavourQwen     = "qwen"
	FlavourDeepSeek = "deepseek"
	FlavourLocal    = "local"

	QwenBaseURL     = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
	DeepSeekBaseURL = "https://api.deepseek.com/v1"
	LocalBaseURL    = "http://localhost:11434/v1"

	DefaultTimeout = 60 * time.Second
)

var defaultModels = map[string]string{
	FlavourOpenAI:   "gpt-4o-mini",
	FlavourQwen:     "qwen-plus",
	FlavourDeepSeek: "deepseek-chat",
	FlavourLocal:    "llama3.1",
}

var defaultBaseURLs = map[string]string{
	FlavourQwen:     QwenBaseURL,
	FlavourDeepSeek: DeepSeekBaseURL,
	FlavourLocal:    LocalBaseURL,
}
