package bootstrap

import (
	"log/slog"

	"github.com/gigwire/identity-go/config"
	"github.com/gigwire/identity-go/internal/adapters/devauth"
	"github.com/gigwire/identity-go/internal/adapters/oidc"
	"github.com/gigwire/identity-go/internal/ports"
)

// BuildAuthProvider creates an auth provider based on the configured auth
// mode. Returns nil when auth is not configured or configuration is invalid;
// callers treat a nil provider as auth disabled.
//
//nolint:ireturn // the caller only sees the ports.AuthProvider contract.
func BuildAuthProvider(cfg config.AuthConfig, logger *slog.Logger) ports.AuthProvider {
	switch cfg.Mode {
	case config.AuthModeMock:
		prov, err := devauth.NewProvider(devauth.Config{
			PersonID: cfg.DevAuth.PersonID,
			Name:     cfg.DevAuth.Name,
			Email:    cfg.DevAuth.Email,
		})
		if err != nil {
			if logger != nil {
				logger.Warn("failed to create dev auth provider, auth disabled", "error", err)
			}
			return nil
		}
		return prov

	case config.AuthModeOAuth:
		oauth := cfg.OAuth
		if oauth.IssuerURL == "" || oauth.ClientID == "" || oauth.ClientSecret == "" {
			if logger != nil {
				logger.Warn("AuthModeOAuth selected but required config missing; auth disabled",
					"issuer_url_empty", oauth.IssuerURL == "",
					"client_id_empty", oauth.ClientID == "",
					"client_secret_empty", oauth.ClientSecret == "")
			}
			return nil
		}
		prov, err := oidc.NewProvider(oidc.ProviderConfig{
			ClientID:     oauth.ClientID,
			ClientSecret: oauth.ClientSecret,
			RedirectURL:  oauth.RedirectURL,
			Scope:        oauth.Scope,
			IssuerURL:    oauth.IssuerURL,
		})
		if err != nil {
			if logger != nil {
				logger.Warn("failed to create oidc provider, auth disabled", "error", err)
			}
			return nil
		}
		return prov

	default:
		return nil
	}
}
