package sessions_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/pocketrpg/battle-core/internal/engine"
	"github.com/pocketrpg/battle-core/internal/engine/ai"
	"github.com/pocketrpg/battle-core/internal/entities"
	"github.com/pocketrpg/battle-core/internal/errors"
	"github.com/pocketrpg/battle-core/internal/pkg/clock"
	"github.com/pocketrpg/battle-core/internal/pkg/rng"
	"github.com/pocketrpg/battle-core/internal/repositories/sessions"
	"github.com/pocketrpg/battle-core/internal/testutils"
)

type RegistryTestSuite struct {
	suite.Suite
	repo *sessions.InMemoryRepository
	ctx  context.Context
}

func (s *RegistryTestSuite) SetupTest() {
	s.repo = sessions.NewInMemory()
	s.ctx = context.Background()
}

func (s *RegistryTestSuite) newSession(id string) *engine.Session {
	roller := rng.NewScripted(21)
	session, err := engine.NewSession(&engine.Config{
		ID:      id,
		Players: []*entities.Player{testutils.CreateTestPlayer("user_123")},
		Enemies: []*entities.Enemy{testutils.CreateTestEnemy("enc-1-goblin")},
		Roller:  roller,
		Clock:   &clock.Fixed{Time: time.Unix(1700000000, 0)},
		Policy:  ai.New(roller),
	})
	s.Require().NoError(err)
	return session
}

func (s *RegistryTestSuite) TestRegisterAndGet() {
	session := s.newSession("battle-1")

	_, err := s.repo.Register(s.ctx, sessions.RegisterInput{ChannelID: "chan-1", Session: session})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, sessions.GetInput{ChannelID: "chan-1"})
	s.Require().NoError(err)
	s.Same(session, out.Session)
}

func (s *RegistryTestSuite) TestSecondRegistrationRejected() {
	_, err := s.repo.Register(s.ctx, sessions.RegisterInput{ChannelID: "chan-1", Session: s.newSession("battle-1")})
	s.Require().NoError(err)

	_, err = s.repo.Register(s.ctx, sessions.RegisterInput{ChannelID: "chan-1", Session: s.newSession("battle-2")})
	s.Error(err)
	s.True(errors.IsAlreadyExists(err))

	// A different channel is free to start its own battle
	_, err = s.repo.Register(s.ctx, sessions.RegisterInput{ChannelID: "chan-2", Session: s.newSession("battle-3")})
	s.NoError(err)
}

func (s *RegistryTestSuite) TestRemoveReleasesChannel() {
	_, err := s.repo.Register(s.ctx, sessions.RegisterInput{ChannelID: "chan-1", Session: s.newSession("battle-1")})
	s.Require().NoError(err)

	_, err = s.repo.Remove(s.ctx, sessions.RemoveInput{ChannelID: "chan-1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, sessions.GetInput{ChannelID: "chan-1"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Register(s.ctx, sessions.RegisterInput{ChannelID: "chan-1", Session: s.newSession("battle-2")})
	s.NoError(err)
}

func (s *RegistryTestSuite) TestValidation() {
	_, err := s.repo.Register(s.ctx, sessions.RegisterInput{Session: s.newSession("battle-1")})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Register(s.ctx, sessions.RegisterInput{ChannelID: "chan-1"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, sessions.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Remove(s.ctx, sessions.RemoveInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}
