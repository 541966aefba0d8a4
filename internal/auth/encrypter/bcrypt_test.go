package encrypter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	dErrors "shiptrack/pkg/domain-errors"
)

func TestBcrypt(t *testing.T) {
	b := NewBcrypt(bcrypt.MinCost)

	hash, err := b.Hash("secret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-pass", hash)

	ok, err := b.Compare("secret-pass", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.Compare("wrong-pass", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcrypt_MalformedHash(t *testing.T) {
	_, err := NewBcrypt(bcrypt.MinCost).Compare("secret-pass", "not-a-hash")
	assert.Error(t, err)
}

func TestBcrypt_TooLong(t *testing.T) {
	_, err := NewBcrypt(bcrypt.MinCost).Hash(strings.Repeat("a", 73))
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestNewBcrypt_CostOutOfRange(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(99).cost)
	assert.Equal(t, 12, NewBcrypt(12).cost)
}
