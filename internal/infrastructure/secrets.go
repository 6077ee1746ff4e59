package infrastructure

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/zalando/go-keyring"
)

const (
	// KeyringService groups the service's secrets in the OS keychain.
	KeyringService = "jobboard-service"

	devSigningSecret = "dev_secret_key"
)

// ResolveSigningSecret looks up the token signing secret: keyring first when
// an account is configured, then the environment value, then a development
// default.
func ResolveSigningSecret(keyringAccount, envSecret string, log logrus.FieldLogger) string {
	if strings.TrimSpace(keyringAccount) != "" {
		secret, err := keyring.Get(KeyringService, keyringAccount)
		if err == nil && strings.TrimSpace(secret) != "" {
			return secret
		}
		log.WithError(err).WithField("account", keyringAccount).Warn("signing secret not found in keyring")
	}

	if strings.TrimSpace(envSecret) != "" {
		return envSecret
	}

	log.Warn("JWT_SECRET not set, using development signing secret")
	return devSigningSecret
}

// StoreSigningSecret writes the signing secret to the OS keychain.
func StoreSigningSecret(keyringAccount, secret string) error {
	return keyring.Set(KeyringService, keyringAccount, secret)
}
