package config

import (
	"fmt"
	"strings"

	apperrors "ai-content-writer/pkg/errors"
)

// Validate 校验启动所需的配置项，失败时返回 CodeConfiguration 错误
func (c *Config) Validate() error {
	var problems []string

	name, provider, ok := c.LLM.Provider("")
	switch {
	case strings.TrimSpace(name) == "":
		problems = append(problems, "llm.default_provider is empty")
	case !ok:
		problems = append(problems, fmt.Sprintf("llm provider %q is not configured", name))
	default:
		if strings.TrimSpace(provider.APIKey) == "" {
			if name == DefaultProviderName {
				problems = append(problems, fmt.Sprintf("%s is not set", APIKeyEnv))
			} else {
				problems = append(problems, fmt.Sprintf("llm.providers.%s.api_key is empty", name))
			}
		}
		if strings.TrimSpace(provider.Model) == "" {
			problems = append(problems, fmt.Sprintf("llm.providers.%s.model is empty", name))
		}
		if provider.MaxTokens < 0 {
			problems = append(problems, fmt.Sprintf("llm.providers.%s.max_tokens must not be negative", name))
		}
	}

	if c.Server.HTTP.Port < 0 || c.Server.HTTP.Port > 65535 {
		problems = append(problems, fmt.Sprintf("server.http.port %d out of range", c.Server.HTTP.Port))
	}
	if c.Session.MaxSessions < 0 {
		problems = append(problems, "session.max_sessions must not be negative")
	}

	if len(problems) == 0 {
		return nil
	}
	return apperrors.ErrConfiguration.WithDetail(strings.Join(problems, "; "))
}
