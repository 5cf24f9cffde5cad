package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealOpen_RoundTrip(t *testing.T) {
	salt, err := MakeSalt()
	require.NoError(t, err)
	key := DeriveKey([]byte("passphrase"), salt)

	plaintext := []byte(`[{"id":1}]`)
	ciphertext, nonce, err := Seal(plaintext, key)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, ciphertext)

	got, err := Open(ciphertext, nonce, key)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestOpen_WrongKeyFails(t *testing.T) {
	salt, err := MakeSalt()
	require.NoError(t, err)

	key := DeriveKey([]byte("right"), salt)
	ciphertext, nonce, err := Seal([]byte("data"), key)
	require.NoError(t, err)

	wrong := DeriveKey([]byte("wrong"), salt)
	_, err = Open(ciphertext, nonce, wrong)
	assert.Error(t, err)
}

func TestDeriveKey_Deterministic(t *testing.T) {
	salt, err := MakeSalt()
	require.NoError(t, err)

	k1 := DeriveKey([]byte("p"), salt)
	k2 := DeriveKey([]byte("p"), salt)
	assert.Equal(t, k1, k2)
	assert.Len(t, k1, 32)

	other, err := MakeSalt()
	require.NoError(t, err)
	assert.NotEqual(t, k1, DeriveKey([]byte("p"), other))
}
