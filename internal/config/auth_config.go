package config

import "time"

// CredentialScheme selects how passwords are stored in the account
// directory.
const (
	// CredentialSchemeBase64 stores a reversible encoding. Default,
	// for parity with existing directories.
	CredentialSchemeBase64 = "base64"
	// CredentialSchemeBcrypt stores salted hashes instead. Not compatible
	// with directories written under the base64 scheme.
	CredentialSchemeBcrypt = "bcrypt"
)

type AuthConfig interface {
	GetTokenSecret() string
	GetTokenIssuer() string
	GetTokenExpiry() time.Duration
	GetCredentialScheme() string
	GetSimulateLatency() bool
}

type Auth struct{}

var _ AuthConfig = Auth{}

func (Auth) GetTokenSecret() string {
	return GetEnv("TOKEN_SECRET", "genie-dev-secret-change-me")
}

func (Auth) GetTokenIssuer() string {
	return GetEnv("TOKEN_ISSUER", "genie-server")
}

func (Auth) GetTokenExpiry() time.Duration {
	if d, err := time.ParseDuration(GetEnv("TOKEN_EXPIRY", "")); err == nil && d > 0 {
		return d
	}
	return 24 * time.Hour
}

func (Auth) GetCredentialScheme() string {
	return GetEnv("CREDENTIAL_SCHEME", CredentialSchemeBase64)
}

func (Auth) GetSimulateLatency() bool {
	return GetEnv("SIMULATE_LATENCY", "true") != "false"
}
