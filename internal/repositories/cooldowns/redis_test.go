package cooldowns

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	zerr "github.com/KirkDiggler/zodiac-skill-engine/internal/errors"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = NewRedis(s.mockClient)
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()

	s.mock.ExpectHGet("cooldowns:p1", "golden_touch").SetVal("3")
	turns, err := s.repo.Get(ctx, "p1", "golden_touch")
	s.NoError(err)
	s.Equal(3, turns)

	// Missing field means ready
	s.mock.ExpectHGet("cooldowns:p1", "wanderer").RedisNil()
	turns, err = s.repo.Get(ctx, "p1", "wanderer")
	s.NoError(err)
	s.Zero(turns)

	// Dependency error
	s.mock.ExpectHGet("cooldowns:p1", "iron_wall").SetErr(errors.New("redis error"))
	_, err = s.repo.Get(ctx, "p1", "iron_wall")
	s.Error(err)

	// Input validation
	_, err = s.repo.Get(ctx, "", "iron_wall")
	s.Equal(zerr.CodeInvalidArgument, zerr.GetCode(err))
}

func (s *RedisRepoTestSuite) TestSet() {
	ctx := context.Background()

	s.mock.ExpectHSet("cooldowns:p1", "golden_touch", 3).SetVal(1)
	s.NoError(s.repo.Set(ctx, "p1", "golden_touch", 3))

	s.mock.ExpectHDel("cooldowns:p1", "golden_touch").SetVal(1)
	s.NoError(s.repo.Set(ctx, "p1", "golden_touch", 0))

	s.mock.ExpectHSet("cooldowns:p1", "golden_touch", 2).SetErr(errors.New("redis error"))
	s.Error(s.repo.Set(ctx, "p1", "golden_touch", 2))
}

func (s *RedisRepoTestSuite) TestList() {
	ctx := context.Background()

	s.mock.ExpectHGetAll("cooldowns:p1").SetVal(map[string]string{"golden_touch": "2", "wanderer": "1"})
	listed, err := s.repo.List(ctx, "p1")
	s.NoError(err)
	s.Equal(map[string]int{"golden_touch": 2, "wanderer": 1}, listed)

	s.mock.ExpectHGetAll("cooldowns:p2").SetVal(map[string]string{"golden_touch": "soon"})
	_, err = s.repo.List(ctx, "p2")
	s.Equal(zerr.CodeInternal, zerr.GetCode(err))
}

func (s *RedisRepoTestSuite) TestTick() {
	ctx := context.Background()

	s.mock.ExpectHGetAll("cooldowns:p1").SetVal(map[string]string{"golden_touch": "3", "wanderer": "1"})
	s.mock.ExpectHSet("cooldowns:p1", "golden_touch", 2).SetVal(0)
	s.mock.ExpectHDel("cooldowns:p1", "wanderer").SetVal(1)

	s.NoError(s.repo.Tick(ctx, "p1"))
}

func (s *RedisRepoTestSuite) TestTick_Empty() {
	s.mock.ExpectHGetAll("cooldowns:p1").SetVal(map[string]string{})
	s.NoError(s.repo.Tick(context.Background(), "p1"))
}

func (s *RedisRepoTestSuite) TestTick_Error() {
	s.mock.ExpectHGetAll("cooldowns:p1").SetErr(errors.New("redis error"))
	s.Error(s.repo.Tick(context.Background(), "p1"))
}
