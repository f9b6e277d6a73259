package cache_test

import (
	"testing"
	"time"

	"github.com/nikolayk812/bnpl-checkout/internal/cache"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

type redisCacheSuite struct {
	suite.Suite

	container *tcredis.RedisContainer
	client    *redis.Client
	cache     cache.Cache
}

func TestRedisCacheSuite(t *testing.T) {
	suite.Run(t, new(redisCacheSuite))
}

func (suite *redisCacheSuite) SetupSuite() {
	ctx := suite.T().Context()

	container, err := tcredis.Run(ctx, "redis:7.4-alpine")
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx)
	suite.Require().NoError(err)

	opts, err := redis.ParseURL(connStr)
	suite.Require().NoError(err)

	suite.client = redis.NewClient(opts)
	suite.cache = cache.NewRedisCache(suite.client, "checkout-api")
}

func (suite *redisCacheSuite) TearDownSuite() {
	if suite.client != nil {
		suite.NoError(suite.client.Close())
	}
	if suite.container != nil {
		suite.NoError(testcontainers.TerminateContainer(suite.container))
	}
}

func (suite *redisCacheSuite) TestSetGet() {
	t := suite.T()
	ctx := t.Context()

	key := suite.cache.GenerateKey("cost", "set-get")
	require.NoError(t, suite.cache.Set(ctx, key, []byte(`{"vat":22}`), time.Minute))

	value, found, err := suite.cache.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"vat":22}`, string(value))
}

func (suite *redisCacheSuite) TestGet_Miss() {
	t := suite.T()

	value, found, err := suite.cache.Get(t.Context(), suite.cache.GenerateKey("cost", "never-set"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, value)
}

func (suite *redisCacheSuite) TestSet_Expires() {
	t := suite.T()
	ctx := t.Context()

	key := suite.cache.GenerateKey("cost", "expires")
	require.NoError(t, suite.cache.Set(ctx, key, []byte("x"), 100*time.Millisecond))

	require.Eventually(t, func() bool {
		_, found, err := suite.cache.Get(ctx, key)
		return err == nil && !found
	}, 5*time.Second, 50*time.Millisecond)
}

func TestGenerateKey(t *testing.T) {
	c := cache.NewRedisCache(nil, "checkout-api")
	assert.Equal(t, "checkout-api:cost:abc", c.GenerateKey("cost", "abc"))
}
