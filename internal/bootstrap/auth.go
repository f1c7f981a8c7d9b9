package bootstrap

import (
	"github.com/georgchimion-oss/fraud-scout-lite/internal/infrastructure/config"
	"github.com/georgchimion-oss/fraud-scout-lite/pkg/auth"
)

// NewJWTService builds the token service from cfg, reading RS256 key files
// when configured. Key files take precedence over JWT_SECRET.
func NewJWTService(cfg *config.Config) (*auth.JWTService, error) {
	jwtCfg := auth.JWTConfig{
		Secret:     cfg.JWTSecret,
		Issuer:     cfg.JWTIssuer,
		Expiration: cfg.JWTExpiration,
	}

	var err error
	if cfg.JWTPrivateKeyFile != "" {
		if jwtCfg.PrivateKeyPEM, err = auth.LoadKeyFromFile(cfg.JWTPrivateKeyFile); err != nil {
			return nil, err
		}
	}
	if cfg.JWTPublicKeyFile != "" {
		if jwtCfg.PublicKeyPEM, err = auth.LoadKeyFromFile(cfg.JWTPublicKeyFile); err != nil {
			return nil, err
		}
	}
	return auth.NewJWTService(jwtCfg)
}
