package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lingualearn/linguaflash/internal/db"
	"github.com/lingualearn/linguaflash/internal/models"
	"github.com/lingualearn/linguaflash/internal/repository"
	"github.com/lingualearn/linguaflash/internal/repository/sqlite"
	"github.com/lingualearn/linguaflash/internal/testutil"
)

type SettingsRepositorySuite struct {
	suite.Suite
	db   *db.DB
	repo repository.SettingsRepository
}

func (s *SettingsRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewSettingsRepository(s.db)
}

func (s *SettingsRepositorySuite) TestGetMissingReturnsNil() {
	got, err := s.repo.Get(context.Background(), "u1")
	s.Require().NoError(err)
	s.Assert().Nil(got)
}

func (s *SettingsRepositorySuite) TestSaveAndGet() {
	ctx := context.Background()
	settings := models.DefaultSettings("u1")
	settings.Theme = "dark"
	settings.DailyGoal = 10
	settings.NotificationsEnabled = true

	s.Require().NoError(s.repo.Save(ctx, settings))

	got, err := s.repo.Get(ctx, "u1")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal("dark", got.Theme)
	s.Assert().Equal(10, got.DailyGoal)
	s.Assert().True(got.NotificationsEnabled)
	s.Assert().Equal("uk", got.NativeLanguage)

	settings.TargetLanguage = "de"
	s.Require().NoError(s.repo.Save(ctx, settings))

	got, err = s.repo.Get(ctx, "u1")
	s.Require().NoError(err)
	s.Assert().Equal("de", got.TargetLanguage)
}

func TestSettingsRepositorySuite(t *testing.T) {
	suite.Run(t, new(SettingsRepositorySuite))
}
