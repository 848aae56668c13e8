package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCache_NilClientIsNoop(t *testing.T) {
	cache := NewCache(nil)
	ctx := context.Background()

	cache.set(ctx, subjectListCacheKey, []string{"math"}, subjectListTTL)
	var got []string
	assert.False(t, cache.get(ctx, subjectListCacheKey, &got))
	assert.Nil(t, got)

	assert.NotPanics(t, func() { cache.del(ctx, subjectListCacheKey, platformStatsKey) })
}
