//go:build integration

package statscache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"kleingarten/internal/plot/models"
	"kleingarten/internal/plot/store/statscache"
	id "kleingarten/pkg/domain"
	"kleingarten/pkg/testutil/containers"
)

type RedisCacheSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	cache *statscache.RedisCache
}

func TestRedisCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.cache = statscache.New(s.redis.Client, time.Minute)
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisCacheSuite) TestMissReturnsNil() {
	stats, err := s.cache.Get(context.Background(), nil)
	s.Require().NoError(err)
	s.Nil(stats)
}

func (s *RedisCacheSuite) TestRoundTripPerScope() {
	ctx := context.Background()
	districtID := id.NewDistrictID()

	global := &models.PlotStatistics{Total: 12}
	scoped := &models.PlotStatistics{Total: 4, ScopeDistrictID: &districtID}

	s.Require().NoError(s.cache.Set(ctx, nil, global))
	s.Require().NoError(s.cache.Set(ctx, &districtID, scoped))

	gotGlobal, err := s.cache.Get(ctx, nil)
	s.Require().NoError(err)
	s.Require().NotNil(gotGlobal)
	s.Equal(12, gotGlobal.Total)

	gotScoped, err := s.cache.Get(ctx, &districtID)
	s.Require().NoError(err)
	s.Require().NotNil(gotScoped)
	s.Equal(4, gotScoped.Total)
	s.Require().NotNil(gotScoped.ScopeDistrictID)
	s.Equal(districtID, *gotScoped.ScopeDistrictID)
}

func (s *RedisCacheSuite) TestInvalidateDropsScopeAndGlobal() {
	ctx := context.Background()
	mutated := id.NewDistrictID()
	untouched := id.NewDistrictID()

	s.Require().NoError(s.cache.Set(ctx, nil, &models.PlotStatistics{Total: 12}))
	s.Require().NoError(s.cache.Set(ctx, &mutated, &models.PlotStatistics{Total: 4}))
	s.Require().NoError(s.cache.Set(ctx, &untouched, &models.PlotStatistics{Total: 8}))

	s.Require().NoError(s.cache.Invalidate(ctx, mutated))

	global, err := s.cache.Get(ctx, nil)
	s.Require().NoError(err)
	s.Nil(global)

	dropped, err := s.cache.Get(ctx, &mutated)
	s.Require().NoError(err)
	s.Nil(dropped)

	kept, err := s.cache.Get(ctx, &untouched)
	s.Require().NoError(err)
	s.Require().NotNil(kept)
	s.Equal(8, kept.Total)
}

func (s *RedisCacheSuite) TestEntriesExpire() {
	ctx := context.Background()
	shortLived := statscache.New(s.redis.Client, 50*time.Millisecond)

	s.Require().NoError(shortLived.Set(ctx, nil, &models.PlotStatistics{Total: 3}))
	time.Sleep(100 * time.Millisecond)

	stats, err := shortLived.Get(ctx, nil)
	s.Require().NoError(err)
	s.Nil(stats)
}
