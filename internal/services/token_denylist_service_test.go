package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDenylist(t *testing.T) {
	mr := setupPromptTestRedis()
	defer mr.Close()

	denied, err := IsDenylisted("some.jwt.token")
	assert.NoError(t, err)
	assert.False(t, denied)

	assert.NoError(t, AddToDenylist("some.jwt.token", time.Hour))

	denied, err = IsDenylisted("some.jwt.token")
	assert.NoError(t, err)
	assert.True(t, denied)

	// Other tokens stay valid.
	denied, err = IsDenylisted("another.jwt.token")
	assert.NoError(t, err)
	assert.False(t, denied)
}

func TestDenylistEntryExpires(t *testing.T) {
	mr := setupPromptTestRedis()
	defer mr.Close()

	assert.NoError(t, AddToDenylist("short.lived.token", time.Minute))
	mr.FastForward(2 * time.Minute)

	denied, err := IsDenylisted("short.lived.token")
	assert.NoError(t, err)
	assert.False(t, denied)
}
