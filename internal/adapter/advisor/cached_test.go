package advisor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-health/internal/core/port/mocks"
)

const testModel = "openai/gpt-4"

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestCachedAdvisor_HitSkipsNext(t *testing.T) {
	mr, rdb := newTestRedis(t)
	next := mocks.NewMockAdvisor(t)
	next.EXPECT().Advise(mock.Anything, sampleRequest).Return("Reduce bids.", nil).Once()

	c := NewCachedAdvisor(next, testModel, rdb, time.Minute, nil)

	first, err := c.Advise(context.Background(), sampleRequest)
	require.NoError(t, err)
	second, err := c.Advise(context.Background(), sampleRequest)
	require.NoError(t, err)

	assert.Equal(t, "Reduce bids.", first)
	assert.Equal(t, first, second)

	ttl := mr.TTL(cacheKey(testModel, sampleRequest))
	assert.Equal(t, time.Minute, ttl)
}

func TestCachedAdvisor_KeyDependsOnRequest(t *testing.T) {
	other := sampleRequest
	other.Prompt = "campaign c2 spent 10"
	assert.NotEqual(t, cacheKey(testModel, sampleRequest), cacheKey(testModel, other))

	warmer := sampleRequest
	warmer.Temperature = 0.9
	assert.NotEqual(t, cacheKey(testModel, sampleRequest), cacheKey(testModel, warmer))
}

func TestCachedAdvisor_ModelSwitchMisses(t *testing.T) {
	_, rdb := newTestRedis(t)

	oldNext := mocks.NewMockAdvisor(t)
	oldNext.EXPECT().Advise(mock.Anything, sampleRequest).Return("old model answer", nil).Once()
	newNext := mocks.NewMockAdvisor(t)
	newNext.EXPECT().Advise(mock.Anything, sampleRequest).Return("new model answer", nil).Once()

	_, err := NewCachedAdvisor(oldNext, "openai/gpt-4", rdb, time.Minute, nil).Advise(context.Background(), sampleRequest)
	require.NoError(t, err)

	text, err := NewCachedAdvisor(newNext, "openai/gpt-4o", rdb, time.Minute, nil).Advise(context.Background(), sampleRequest)
	require.NoError(t, err)
	assert.Equal(t, "new model answer", text)
	assert.NotEqual(t, cacheKey("openai/gpt-4", sampleRequest), cacheKey("openai/gpt-4o", sampleRequest))
}

func TestCachedAdvisor_ErrorsAreNotCached(t *testing.T) {
	mr, rdb := newTestRedis(t)
	next := mocks.NewMockAdvisor(t)
	next.EXPECT().Advise(mock.Anything, mock.Anything).Return("", errors.New("boom")).Twice()

	c := NewCachedAdvisor(next, testModel, rdb, time.Minute, nil)

	for range 2 {
		_, err := c.Advise(context.Background(), sampleRequest)
		require.Error(t, err)
	}
	assert.False(t, mr.Exists(cacheKey(testModel, sampleRequest)))
}

func TestCachedAdvisor_BlankIsNotCached(t *testing.T) {
	mr, rdb := newTestRedis(t)
	next := mocks.NewMockAdvisor(t)
	next.EXPECT().Advise(mock.Anything, mock.Anything).Return("  ", nil).Once()

	c := NewCachedAdvisor(next, testModel, rdb, time.Minute, nil)

	text, err := c.Advise(context.Background(), sampleRequest)
	require.NoError(t, err)
	assert.Equal(t, "  ", text)
	assert.False(t, mr.Exists(cacheKey(testModel, sampleRequest)))
}

func TestCachedAdvisor_RedisDownFallsThrough(t *testing.T) {
	mr, rdb := newTestRedis(t)
	mr.Close()

	next := mocks.NewMockAdvisor(t)
	next.EXPECT().Advise(mock.Anything, mock.Anything).Return("still works", nil).Once()

	c := NewCachedAdvisor(next, testModel, rdb, time.Minute, nil)

	text, err := c.Advise(context.Background(), sampleRequest)
	require.NoError(t, err)
	assert.Equal(t, "still works", text)
}

func TestNew_ProviderSelection(t *testing.T) {
	_, rdb := newTestRedis(t)

	a, err := New(context.Background(), configsFor("none", 0), rdb, nil)
	require.NoError(t, err)
	assert.Nil(t, a)

	a, err = New(context.Background(), configsFor("OpenAI", 0), nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &OpenAIAdvisor{}, a)

	a, err = New(context.Background(), configsFor("openai", time.Minute), rdb, nil)
	require.NoError(t, err)
	assert.IsType(t, &CachedAdvisor{}, a)

	a, err = New(context.Background(), configsFor("openai", time.Minute), nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &OpenAIAdvisor{}, a)

	a, err = New(context.Background(), configsFor("", 0), nil, nil)
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestNew_UnknownProvider(t *testing.T) {
	a, err := New(context.Background(), configsFor("opneai", 0), nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"opneai"`)
	assert.Nil(t, a)
}
