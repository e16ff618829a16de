package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerify(t *testing.T) {
	hasher := NewHasher()

	hash, err := hasher.Hash("pw1")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2"))

	assert.True(t, hasher.Verify("pw1", hash))
	assert.False(t, hasher.Verify("pw2", hash))
}

func TestVerifyLegacyDigest(t *testing.T) {
	hasher := NewHasher()
	stored := LegacyHash("password123")

	assert.Len(t, stored, 64)
	assert.True(t, hasher.Verify("password123", stored))
	assert.False(t, hasher.Verify("wrong", stored))
}

func TestVerifyEmptyInputs(t *testing.T) {
	hasher := NewHasher()
	hash, err := hasher.Hash("pw1")
	assert.NoError(t, err)

	assert.False(t, hasher.Verify("", hash))
	assert.False(t, hasher.Verify("pw1", ""))
}

func TestHashIsSalted(t *testing.T) {
	hasher := NewHasher()

	first, err := hasher.Hash("pw1")
	assert.NoError(t, err)
	second, err := hasher.Hash("pw1")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("pw1", first))
	assert.True(t, hasher.Verify("pw1", second))
}
