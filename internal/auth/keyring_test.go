package auth

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestParseKeys(t *testing.T) {
	keys, err := ParseKeys("mysecretapikey123:test_user_1, anothersecretkeyabc:analyst_beta")
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(keys))
	assert.Equal(t, "test_user_1", keys["mysecretapikey123"])
	assert.Equal(t, "analyst_beta", keys["anothersecretkeyabc"])
}

func TestParseKeys_Malformed(t *testing.T) {
	for _, input := range []string{"", "justatoken", "token:", ":identity"} {
		_, err := ParseKeys(input)
		assert.NotEqual(t, nil, err)
	}
}

func TestStaticKeyring_Lookup(t *testing.T) {
	keyring := NewStaticKeyring(map[string]string{"tok-1": "u1"})

	identity, ok := keyring.Lookup("tok-1")
	assert.Equal(t, true, ok)
	assert.Equal(t, "u1", identity)

	_, ok = keyring.Lookup("unknown")
	assert.Equal(t, false, ok)
}
