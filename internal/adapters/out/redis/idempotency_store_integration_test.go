package redis_test

import (
	"context"
	"testing"
	"time"

	"dietrack/internal/adapters/out/redis"
	"dietrack/internal/core/ports"

	goredis "github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type IdempotencyStoreIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *goredis.Client
	store     *redis.IdempotencyStore
}

func (suite *IdempotencyStoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.container = container
	suite.Require().NoError(err)

	endpoint, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)

	client, err := redis.NewClient(ctx, endpoint, "", 0)
	suite.Require().NoError(err)
	suite.client = client
}

func (suite *IdempotencyStoreIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushDB(context.Background()).Err())
	suite.store = redis.NewIdempotencyStore(suite.client, time.Minute)
}

func (suite *IdempotencyStoreIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		_ = suite.client.Close()
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *IdempotencyStoreIntegrationTestSuite) TestReserve_FirstRequestWins() {
	ctx := context.Background()

	stored, err := suite.store.Reserve(ctx, "movement-1")
	suite.Require().NoError(err)
	suite.Nil(stored)

	_, err = suite.store.Reserve(ctx, "movement-1")
	suite.Require().ErrorIs(err, ports.ErrIdempotencyKeyInFlight)
}

func (suite *IdempotencyStoreIntegrationTestSuite) TestComplete_ReplaysResponse() {
	ctx := context.Background()
	_, err := suite.store.Reserve(ctx, "movement-1")
	suite.Require().NoError(err)

	response := ports.StoredResponse{StatusCode: 201, ContentType: "application/json", Body: []byte(`{"id":"1"}`)}
	suite.Require().NoError(suite.store.Complete(ctx, "movement-1", response))

	stored, err := suite.store.Reserve(ctx, "movement-1")
	suite.Require().NoError(err)
	suite.Require().NotNil(stored)
	suite.Equal(response, *stored)

	ttl, err := suite.client.TTL(ctx, "idempotency:movement-1").Result()
	suite.Require().NoError(err)
	suite.Positive(ttl)
}

func (suite *IdempotencyStoreIntegrationTestSuite) TestRelease_AllowsRetry() {
	ctx := context.Background()
	_, err := suite.store.Reserve(ctx, "movement-1")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.store.Release(ctx, "movement-1"))

	stored, err := suite.store.Reserve(ctx, "movement-1")
	suite.Require().NoError(err)
	suite.Nil(stored)
}

func TestIdempotencyStoreIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IdempotencyStoreIntegrationTestSuite))
}
