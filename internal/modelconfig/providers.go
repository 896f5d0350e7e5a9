package modelconfig

// Provider describes a known chat-completion vendor
type Provider struct {
	ID          string
	DisplayName string
	BaseURL     string
	Models      []string
}

// Providers is the built-in vendor registry. A custom base URL on the
// stored config overrides the registry default.
var Providers = []Provider{
	{
		ID:          "openai",
		DisplayName: "OpenAI",
		BaseURL:     "https://api.openai.com/v1",
		Models:      []string{"gpt-4o", "gpt-4o-mini", "gpt-4-turbo", "gpt-3.5-turbo"},
	},
	{
		ID:          "moonshot",
		DisplayName: "Moonshot AI",
		BaseURL:     "https://api.moonshot.cn/v1",
		Models:      []string{"moonshot-v1-8k", "moonshot-v1-32k", "moonshot-v1-128k"},
	},
	{
		ID:          "azure",
		DisplayName: "Azure OpenAI",
		BaseURL:     "https://your-resource.openai.azure.com",
		Models:      []string{"gpt-4", "gpt-35-turbo"},
	},
	{
		ID:          "anyscale",
		DisplayName: "Anyscale",
		BaseURL:     "https://api.endpoints.anyscale.com/v1",
		Models:      []string{"meta-llama/Llama-2-7b-chat-hf", "meta-llama/Llama-2-13b-chat-hf", "mistralai/Mistral-7B-Instruct-v0.1"},
	},
	{
		ID:          "deepseek",
		DisplayName: "DeepSeek",
		BaseURL:     "https://api.deepseek.com/v1",
		Models:      []string{"deepseek-chat", "deepseek-coder"},
	},
	{
		ID:          "zhipu",
		DisplayName: "Zhipu AI",
		BaseURL:     "https://open.bigmodel.cn/api/paas/v4",
		Models:      []string{"glm-4", "glm-4-0520", "glm-3-turbo"},
	},
}

// LookupProvider returns the registry entry for an id
func LookupProvider(id string) (Provider, bool) {
	for _, p := range Providers {
		if p.ID == id {
			return p, true
		}
	}
	return Provider{}, false
}
