package auth

import (
	"fmt"
	"strings"
)

// Keyring resolves a bearer token to the caller's identity.
type Keyring interface {
	Lookup(token string) (identity string, ok bool)
}

// StaticKeyring is a fixed token-to-identity table, loaded from configuration.
type StaticKeyring struct {
	keys map[string]string
}

func NewStaticKeyring(keys map[string]string) *StaticKeyring {
	return &StaticKeyring{keys: keys}
}

func (k *StaticKeyring) Lookup(token string) (string, bool) {
	identity, ok := k.keys[token]
	return identity, ok
}

// ParseKeys reads "token:identity" pairs separated by commas, the format of
// the API_KEYS environment variable.
func ParseKeys(s string) (map[string]string, error) {
	keys := make(map[string]string)

	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		token, identity, ok := strings.Cut(pair, ":")
		token = strings.TrimSpace(token)
		identity = strings.TrimSpace(identity)
		if !ok || token == "" || identity == "" {
			return nil, fmt.Errorf("auth: malformed key pair %q", pair)
		}
		keys[token] = identity
	}

	if len(keys) == 0 {
		return nil, fmt.Errorf("auth: no key pairs configured")
	}
	return keys, nil
}
