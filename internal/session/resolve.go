package session

import "github.com/matheus3301/wppsearch/internal/config"

const DefaultSessionName = "main"

// Resolve determines the active session name using precedence:
// 1. flagOverride (--session flag)
// 2. config.toml default_session
// 3. "main"
// The result is validated.
func Resolve(flagOverride string) (string, error) {
	name := flagOverride
	if name == "" {
		if cfg, err := config.Load(ConfigPath()); err == nil && cfg.DefaultSession != "" {
			name = cfg.DefaultSession
		}
	}
	if name == "" {
		name = DefaultSessionName
	}
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return name, nil
}
