package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakheim/blog-comments/domain"
	redisRepo "github.com/oakheim/blog-comments/internal/repository/redis"
)

func TestGetPost_CacheMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := redisRepo.NewPostCache(client)

	mock.ExpectGet("post:7").RedisNil()

	_, err := cache.GetPost(context.Background(), 7)

	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPost_CacheHit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := redisRepo.NewPostCache(client)

	post := domain.Post{ID: 7, Title: "Title", Body: "Body"}
	data, err := json.Marshal(post)
	require.NoError(t, err)

	mock.ExpectGet("post:7").SetVal(string(data))

	res, err := cache.GetPost(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, post, res)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetPost(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := redisRepo.NewPostCache(client)

	post := domain.Post{ID: 7, Title: "Title"}
	data, err := json.Marshal(&post)
	require.NoError(t, err)

	mock.ExpectSet("post:7", data, 10*time.Minute).SetVal("OK")

	require.NoError(t, cache.SetPost(context.Background(), &post))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetHome_CacheMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := redisRepo.NewPostCache(client)

	mock.ExpectGet(redisRepo.KeyHome).RedisNil()

	_, err := cache.GetHome(context.Background())

	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestHomeRoundTrip(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := redisRepo.NewPostCache(client)

	posts := []domain.Post{{ID: 1, Title: "First"}, {ID: 2, Title: "Second"}}
	data, err := json.Marshal(posts)
	require.NoError(t, err)

	mock.ExpectSet(redisRepo.KeyHome, data, 30*time.Second).SetVal("OK")
	mock.ExpectGet(redisRepo.KeyHome).SetVal(string(data))

	require.NoError(t, cache.SetHome(context.Background(), posts))

	res, err := cache.GetHome(context.Background())
	require.NoError(t, err)
	assert.Equal(t, posts, res)
	assert.NoError(t, mock.ExpectationsWereMet())
}
