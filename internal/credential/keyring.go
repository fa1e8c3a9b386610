// Package credential resolves secrets with an environment-first policy:
// an explicit environment value always wins, and the system keyring is
// consulted only as a fallback so deployments without one keep working.
package credential

import (
	"fmt"

	"github.com/99designs/keyring"
)

const serviceName = "jouliana"

// openKeyring returns a configured keyring instance.
func openKeyring() (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  "~/.config/jouliana/credentials",
		FilePasswordFunc:         keyring.FixedStringPrompt("jouliana-file-key"),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}
	return ring, nil
}

// Resolve returns envValue when set, otherwise the keyring entry for
// key. Keyring failures resolve to the empty string; the caller's
// config validation reports the missing secret.
func Resolve(envValue, key string) string {
	if envValue != "" {
		return envValue
	}
	value, err := Get(key)
	if err != nil {
		return ""
	}
	return value
}

// Get retrieves a credential value by key from the system keyring.
func Get(key string) (string, error) {
	ring, err := openKeyring()
	if err != nil {
		return "", err
	}

	item, err := ring.Get(key)
	if err != nil {
		return "", fmt.Errorf("getting credential %q: %w", key, err)
	}

	return string(item.Data), nil
}
