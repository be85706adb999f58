package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("espresso-forever")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	ok, err := VerifyPassword("espresso-forever", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("mauvais-mot-de-passe", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	_, err := VerifyPassword("whatever", "pas-un-hash")
	assert.Error(t, err)
}
