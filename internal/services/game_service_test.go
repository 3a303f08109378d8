package services_test

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/lingualearn/linguaflash/internal/db"
	"github.com/lingualearn/linguaflash/internal/models"
	"github.com/lingualearn/linguaflash/internal/repository"
	"github.com/lingualearn/linguaflash/internal/repository/sqlite"
	"github.com/lingualearn/linguaflash/internal/services"
	"github.com/lingualearn/linguaflash/internal/session"
	"github.com/lingualearn/linguaflash/internal/testutil"
	"github.com/lingualearn/linguaflash/internal/xp"
)

// GameServiceSuite wires the games against a real in-memory store so session
// flows exercise the same persistence path production uses.
type GameServiceSuite struct {
	suite.Suite
	db       *db.DB
	words    repository.WordRepository
	progress services.ProgressService
	games    services.GameService
}

func (s *GameServiceSuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.words = sqlite.NewWordRepository(s.db)
	s.progress = services.NewProgressService(sqlite.NewProgressRepository(s.db))
	reviews := services.NewReviewService(s.words, s.progress)
	s.games = services.NewGameService(s.words, reviews, s.progress, func() *rand.Rand {
		return rand.New(rand.NewSource(11))
	})
}

func (s *GameServiceSuite) seedWords(n int) {
	ctx := context.Background()
	for i := 0; i < n; i++ {
		_, err := s.words.Upsert(ctx, models.Word{
			ID:          string(rune('a' + i)),
			UserID:      "u1",
			Term:        "term" + string(rune('a'+i)),
			Translation: "translation" + string(rune('a'+i)),
			Category:    "General",
			Type:        models.WordTypeWord,
			CreatedAt:   time.Now().UnixMilli(),
		})
		s.Require().NoError(err)
	}
}

func (s *GameServiceSuite) TestFlashcardFlow() {
	ctx := context.Background()
	s.seedWords(3)

	view, err := s.games.StartFlashcards(ctx, "u1")
	s.Require().NoError(err)
	s.Assert().Equal(3, view.Total)
	s.Require().NotNil(view.Word)

	answer, err := s.games.AnswerFlashcard(ctx, "u1", view.SessionID, true)
	s.Require().NoError(err)
	s.Assert().Equal(xp.RewardFlashcardCorrect, answer.Outcome.XPAwarded)
	s.Assert().False(answer.Done)

	// The review was persisted.
	word, err := s.words.Get(ctx, "u1", answer.Outcome.Word.ID)
	s.Require().NoError(err)
	s.Assert().Equal(1, word.MasteryLevel)

	// A wrong answer earns nothing.
	answer, err = s.games.AnswerFlashcard(ctx, "u1", view.SessionID, false)
	s.Require().NoError(err)
	s.Assert().Equal(0, answer.Outcome.XPAwarded)

	answer, err = s.games.AnswerFlashcard(ctx, "u1", view.SessionID, true)
	s.Require().NoError(err)
	s.Assert().True(answer.Done)

	// The finished session is gone.
	_, err = s.games.AnswerFlashcard(ctx, "u1", view.SessionID, true)
	s.Require().Error(err)
}

func (s *GameServiceSuite) TestFlashcards_SessionsAreScopedToUser() {
	ctx := context.Background()
	s.seedWords(3)

	view, err := s.games.StartFlashcards(ctx, "u1")
	s.Require().NoError(err)

	_, err = s.games.AnswerFlashcard(ctx, "someone-else", view.SessionID, true)
	s.Require().Error(err, "session ids are not transferable between users")
}

func (s *GameServiceSuite) TestFlashcards_ConcurrentAnswersResolveDistinctCards() {
	ctx := context.Background()
	s.seedWords(8)

	view, err := s.games.StartFlashcards(ctx, "u1")
	s.Require().NoError(err)

	const answers = 4
	results := make(chan *services.FlashcardAnswerView, answers)
	errs := make(chan error, answers)
	var wg sync.WaitGroup
	for i := 0; i < answers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			answer, err := s.games.AnswerFlashcard(ctx, "u1", view.SessionID, true)
			if err != nil {
				errs <- err
				return
			}
			results <- answer
		}()
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		s.Require().NoError(err)
	}

	// Each answer must have resolved its own card, never the same one twice.
	seen := map[string]bool{}
	for answer := range results {
		s.Assert().False(seen[answer.Outcome.Word.ID], "card %s answered twice", answer.Outcome.Word.ID)
		seen[answer.Outcome.Word.ID] = true
	}
	s.Assert().Len(seen, answers)
}

func (s *GameServiceSuite) TestBattleWinAwardsBossXPAndRecordsLevel() {
	ctx := context.Background()
	s.seedWords(6)

	view, err := s.games.StartBattle(ctx, "u1", 1)
	s.Require().NoError(err)
	s.Assert().Equal(session.BattleStatePlaying, view.State)
	s.Require().NotNil(view.Turn)

	// 100 HP at level 1, 25 per correct answer.
	turn := view.Turn
	var last *services.BattleAnswerView
	for i := 0; i < 4; i++ {
		last, err = s.games.AnswerBattle(ctx, "u1", view.SessionID, turn.Word.Translation)
		s.Require().NoError(err)
		turn = last.Turn
	}

	s.Assert().Equal(session.BattleStateWon, last.State)

	p, err := s.progress.GetProgress(ctx, "u1")
	s.Require().NoError(err)
	s.Assert().True(p.HasCompletedLevel(1))
	s.Assert().GreaterOrEqual(p.XP, xp.RewardBossDefeated)
}

func (s *GameServiceSuite) TestMatchFlow() {
	ctx := context.Background()
	s.seedWords(6)

	start, err := s.games.StartMatch(ctx, "u1")
	s.Require().NoError(err)
	s.Require().Len(start.Cards, session.MatchPairCount*2)

	// Pair up every card by PairID and win the board.
	var last *services.MatchFlipView
	pairs := map[string][]string{}
	for _, c := range start.Cards {
		pairs[c.PairID] = append(pairs[c.PairID], c.ID)
	}
	for _, ids := range pairs {
		s.Require().Len(ids, 2)
		_, err = s.games.FlipCard(ctx, "u1", start.SessionID, ids[0])
		s.Require().NoError(err)
		last, err = s.games.FlipCard(ctx, "u1", start.SessionID, ids[1])
		s.Require().NoError(err)
	}

	s.Require().True(last.Result.Won)
	s.Assert().Equal(xp.RewardMatchComplete, last.XPAwarded)

	p, err := s.progress.GetProgress(ctx, "u1")
	s.Require().NoError(err)
	s.Assert().Equal(xp.RewardMatchComplete, p.XP)
}

func (s *GameServiceSuite) TestMatchTickAndResolve() {
	ctx := context.Background()
	s.seedWords(6)

	start, err := s.games.StartMatch(ctx, "u1")
	s.Require().NoError(err)

	view, err := s.games.TickMatch(ctx, "u1", start.SessionID)
	s.Require().NoError(err)
	s.Assert().Equal(1, view.Seconds)

	// Flip two cards from different pairs, then resolve the mismatch.
	first := start.Cards[0]
	var second session.Card
	for _, c := range start.Cards[1:] {
		if c.PairID != first.PairID {
			second = c
			break
		}
	}
	_, err = s.games.FlipCard(ctx, "u1", start.SessionID, first.ID)
	s.Require().NoError(err)
	flip, err := s.games.FlipCard(ctx, "u1", start.SessionID, second.ID)
	s.Require().NoError(err)
	s.Require().True(flip.Result.Resolved)
	s.Require().False(flip.Result.Matched)

	resolved, err := s.games.ResolveMismatch(ctx, "u1", start.SessionID)
	s.Require().NoError(err)
	for _, c := range resolved.Cards {
		s.Assert().False(c.IsFlipped)
	}
}

func (s *GameServiceSuite) TestBuilderFlow() {
	ctx := context.Background()
	s.seedWords(2)

	view, err := s.games.StartBuilder(ctx, "u1")
	s.Require().NoError(err)
	s.Require().NotEmpty(view.Scrambled)
	s.Assert().NotEmpty(view.Clue)

	// Drain the scrambled pool; the attempt need not be correct here.
	current := view
	for len(current.Scrambled) > 0 {
		current, err = s.games.SelectLetter(ctx, "u1", view.SessionID, current.Scrambled[0].ID)
		s.Require().NoError(err)
	}

	result, err := s.games.CheckBuilder(ctx, "u1", view.SessionID)
	s.Require().NoError(err)
	s.Assert().NotEmpty(result.Term)
	s.Assert().False(result.Next.Done)
}

func (s *GameServiceSuite) TestAbandon() {
	ctx := context.Background()
	s.seedWords(3)

	view, err := s.games.StartFlashcards(ctx, "u1")
	s.Require().NoError(err)

	s.Require().NoError(s.games.Abandon(ctx, "u1", view.SessionID))
	s.Require().Error(s.games.Abandon(ctx, "u1", view.SessionID), "abandoning twice must fail")
}

func TestGameServiceSuite(t *testing.T) {
	suite.Run(t, new(GameServiceSuite))
}
