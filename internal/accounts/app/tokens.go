package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/accounts/pkg/cryptox"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
)

// InitTokenIssuer builds the access/refresh token issuer from cfg.
//
// A missing secret is replaced by a random one that lives only as long as the
// process, so every token becomes invalid on restart. That is refused in
// production.
func InitTokenIssuer(cfg Config, logger *slog.Logger) (*jwtx.TokenIssuer, error) {
	accessSecret, err := secretOrEphemeral(cfg, cfg.JWT.Secret, "JWT_SECRET", logger)
	if err != nil {
		return nil, err
	}
	refreshSecret, err := secretOrEphemeral(cfg, cfg.JWT.RefreshSecret, "JWT_REFRESH_SECRET", logger)
	if err != nil {
		return nil, err
	}

	issuer, err := jwtx.NewTokenIssuer(jwtx.TokenIssuerOptions{
		AccessSecret:  []byte(accessSecret),
		RefreshSecret: []byte(refreshSecret),
		AccessTTL:     cfg.JWT.ExpiresIn,
		RefreshTTL:    cfg.JWT.RefreshExpiresIn,
		Issuer:        cfg.JWT.Issuer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create token issuer: %w", err)
	}

	logger.Info("token issuer ready",
		"issuer", cfg.JWT.Issuer,
		"access_ttl", issuer.AccessTTL(),
		"refresh_ttl", issuer.RefreshTTL(),
	)
	return issuer, nil
}

func secretOrEphemeral(cfg Config, secret, name string, logger *slog.Logger) (string, error) {
	if secret != "" {
		return secret, nil
	}
	if cfg.IsProduction() {
		return "", errors.New(name + " must be set in production")
	}

	secret, err := cryptox.GenerateSecret()
	if err != nil {
		return "", fmt.Errorf("failed to generate %s: %w", name, err)
	}
	logger.Warn("using ephemeral signing secret, tokens will not survive a restart", "setting", name)
	return secret, nil
}
