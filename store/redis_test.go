package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedisProviderUnreachableReportsAbsent(t *testing.T) {
	t.Parallel()

	// Nothing listens on port 1; the read fails without a redis.Nil. The
	// provider must still satisfy the two-value contract and not panic.
	p := NewRedis("127.0.0.1:1")
	defer p.Close()

	v, ok := p.Get("leads")
	assert.False(t, ok)
	assert.Equal(t, "", v)
}
