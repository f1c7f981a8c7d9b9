package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultExpiration applies when JWTConfig.Expiration is zero.
const DefaultExpiration = time.Hour

// ErrValidationOnly is returned by GenerateToken when only a public key is configured.
var ErrValidationOnly = errors.New("auth: validation-only mode, no signing key configured")

// JWTConfig selects the signing scheme. The first non-empty of PrivateKeyPEM,
// PublicKeyPEM and Secret wins.
type JWTConfig struct {
	// Secret is the HS256 key.
	Secret string
	// PrivateKeyPEM signs RS256 tokens; the public half validates them.
	PrivateKeyPEM string
	// PublicKeyPEM alone validates RS256 tokens minted elsewhere.
	PublicKeyPEM string

	Issuer     string
	Expiration time.Duration
}

// JWTService mints and validates bearer tokens carrying fraud scout roles.
type JWTService struct {
	issuer     string
	expiration time.Duration
	method     jwt.SigningMethod
	signKey    any
	verifyKey  any
}

func NewJWTService(cfg JWTConfig) (*JWTService, error) {
	svc := &JWTService{issuer: cfg.Issuer, expiration: cfg.Expiration}
	if svc.expiration == 0 {
		svc.expiration = DefaultExpiration
	}

	switch {
	case cfg.PrivateKeyPEM != "":
		key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cfg.PrivateKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("auth: parse RSA private key: %w", err)
		}
		svc.method, svc.signKey, svc.verifyKey = jwt.SigningMethodRS256, key, &key.PublicKey
	case cfg.PublicKeyPEM != "":
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.PublicKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("auth: parse RSA public key: %w", err)
		}
		svc.method, svc.verifyKey = jwt.SigningMethodRS256, key
	case cfg.Secret != "":
		secret := []byte(cfg.Secret)
		svc.method, svc.signKey, svc.verifyKey = jwt.SigningMethodHS256, secret, secret
	default:
		return nil, errors.New("auth: a JWT secret or RSA key is required")
	}
	return svc, nil
}

// Algorithm returns the JWS algorithm the service signs and accepts.
func (s *JWTService) Algorithm() string {
	return s.method.Alg()
}

// CanSign reports whether GenerateToken will succeed.
func (s *JWTService) CanSign() bool {
	return s.signKey != nil
}

// GenerateToken mints a token for subject with the given roles.
func (s *JWTService) GenerateToken(subject string, roles []string) (string, error) {
	if !s.CanSign() {
		return "", ErrValidationOnly
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
		Roles: roles,
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.signKey)
	if err != nil {
		return "", fmt.Errorf("auth: sign %s token: %w", s.method.Alg(), err)
	}
	return signed, nil
}

// ValidateToken checks signature, algorithm, expiry, issuer and subject.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{s.method.Alg()}), jwt.WithExpirationRequired()}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.verifyKey, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("auth: invalid token: %w", err)
	}
	if claims.Subject == "" {
		return nil, errors.New("auth: token has no subject")
	}
	return claims, nil
}

// LoadKeyFromFile reads a PEM key file and rejects files with no PEM block.
func LoadKeyFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("auth: read key file: %w", err)
	}
	if block, _ := pem.Decode(data); block == nil {
		return "", fmt.Errorf("auth: %s contains no PEM block", path)
	}
	return string(data), nil
}

// GenerateKeyPair returns a PKCS#8 private key and PKIX public key, both PEM
// encoded, for RS256 development setups.
func GenerateKeyPair() (privateKeyPEM, publicKeyPEM []byte, err error) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("auth: generate RSA key: %w", err)
	}

	privDER, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, nil, fmt.Errorf("auth: marshal private key: %w", err)
	}
	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return nil, nil, fmt.Errorf("auth: marshal public key: %w", err)
	}

	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privDER}),
		pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER}),
		nil
}
