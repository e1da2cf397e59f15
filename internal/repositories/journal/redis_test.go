package journal

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = NewRedisRepository(&RedisRepoConfig{Client: s.mockClient, TTL: time.Hour})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) entry(id string) *Entry {
	return &Entry{
		ID:          id,
		GameID:      "g1",
		CasterID:    "p1",
		SkillID:     "golden_paw",
		Kind:        "money_gain",
		Source:      "primary",
		TargetIDs:   []string{"p1"},
		Value:       110,
		Success:     true,
		Description: "gained 110",
		Turn:        4,
		CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func (s *RedisRepoTestSuite) TestAppend() {
	ctx := context.Background()
	first, second := s.entry("j1"), s.entry("j2")

	firstData, err := json.Marshal(first)
	s.Require().NoError(err)
	secondData, err := json.Marshal(second)
	s.Require().NoError(err)

	// Happy path
	s.mock.ExpectRPush("journal:g1", string(firstData), string(secondData)).SetVal(2)
	s.mock.ExpectExpire("journal:g1", time.Hour).SetVal(true)
	s.NoError(s.repo.Append(ctx, "g1", first, second))

	// Dependency error
	s.mock.ExpectRPush("journal:g1", string(firstData)).SetErr(errors.New("redis error"))
	s.Error(s.repo.Append(ctx, "g1", first))

	// Nothing to write
	s.NoError(s.repo.Append(ctx, "g1"))

	// Input validation
	s.Error(s.repo.Append(ctx, "", first))
}

func (s *RedisRepoTestSuite) TestList() {
	ctx := context.Background()
	e := s.entry("j1")
	data, err := json.Marshal(e)
	s.Require().NoError(err)

	s.mock.ExpectLRange("journal:g1", 0, -1).SetVal([]string{string(data)})
	entries, err := s.repo.List(ctx, "g1")
	s.NoError(err)
	s.Require().Len(entries, 1)
	s.Equal(e, entries[0])

	s.mock.ExpectLRange("journal:g2", 0, -1).SetVal([]string{"{not json"})
	_, err = s.repo.List(ctx, "g2")
	s.Error(err)

	s.mock.ExpectLRange("journal:g3", 0, -1).SetErr(errors.New("redis error"))
	_, err = s.repo.List(ctx, "g3")
	s.Error(err)
}
