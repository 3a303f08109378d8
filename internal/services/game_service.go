package services

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lingualearn/linguaflash/internal/errors"
	"github.com/lingualearn/linguaflash/internal/logger"
	"github.com/lingualearn/linguaflash/internal/models"
	"github.com/lingualearn/linguaflash/internal/repository"
	"github.com/lingualearn/linguaflash/internal/session"
	"github.com/lingualearn/linguaflash/internal/xp"
)

// View types returned to the API layer. Terms under review are only exposed
// where the mode reveals them anyway.

type FlashcardView struct {
	SessionID string       `json:"session_id"`
	Word      *models.Word `json:"word,omitempty"`
	Index     int          `json:"index"`
	Total     int          `json:"total"`
	Done      bool         `json:"done"`
}

type FlashcardAnswerView struct {
	Outcome ReviewOutcome `json:"outcome"`
	Next    *models.Word  `json:"next,omitempty"`
	Index   int           `json:"index"`
	Total   int           `json:"total"`
	Done    bool          `json:"done"`
}

type BattleView struct {
	SessionID    string              `json:"session_id"`
	Level        int                 `json:"level"`
	State        session.BattleState `json:"state"`
	PlayerHP     int                 `json:"player_hp"`
	MonsterHP    int                 `json:"monster_hp"`
	MaxMonsterHP int                 `json:"max_monster_hp"`
	Turn         *session.Turn       `json:"turn,omitempty"`
}

type BattleAnswerView struct {
	BattleView
	Correct     bool `json:"correct"`
	MasteredNow bool `json:"mastered_now"`
	XPAwarded   int  `json:"xp_awarded"`
	LeveledUp   bool `json:"leveled_up"`
}

type MatchView struct {
	SessionID string             `json:"session_id"`
	Cards     []session.Card     `json:"cards"`
	Moves     int                `json:"moves"`
	Matches   int                `json:"matches"`
	Seconds   int                `json:"seconds"`
	State     session.MatchState `json:"state"`
}

type MatchFlipView struct {
	MatchView
	Result    session.FlipResult `json:"result"`
	XPAwarded int                `json:"xp_awarded"`
	LeveledUp bool               `json:"leveled_up"`
}

type BuilderView struct {
	SessionID string           `json:"session_id"`
	Clue      string           `json:"clue,omitempty"` // translation of the hidden term
	Scrambled []session.Letter `json:"scrambled"`
	Selected  []session.Letter `json:"selected"`
	Index     int              `json:"index"`
	Total     int              `json:"total"`
	Done      bool             `json:"done"`
}

type BuilderAnswerView struct {
	Outcome ReviewOutcome `json:"outcome"`
	Correct bool          `json:"correct"`
	Term    string        `json:"term"`
	Next    BuilderView   `json:"next"`
}

// GameService runs the game sessions. Sessions live in memory only: words are
// read at session start, mutated through the session's local copy, and written
// back per review, so partial progress survives an abandoned session while
// session-level aggregates do not.
type GameService interface {
	StartFlashcards(ctx context.Context, userID string) (*FlashcardView, error)
	AnswerFlashcard(ctx context.Context, userID, sessionID string, wasCorrect bool) (*FlashcardAnswerView, error)

	StartBattle(ctx context.Context, userID string, level int) (*BattleView, error)
	AnswerBattle(ctx context.Context, userID, sessionID, option string) (*BattleAnswerView, error)

	StartMatch(ctx context.Context, userID string) (*MatchView, error)
	FlipCard(ctx context.Context, userID, sessionID, cardID string) (*MatchFlipView, error)
	ResolveMismatch(ctx context.Context, userID, sessionID string) (*MatchView, error)
	TickMatch(ctx context.Context, userID, sessionID string) (*MatchView, error)

	StartBuilder(ctx context.Context, userID string) (*BuilderView, error)
	SelectLetter(ctx context.Context, userID, sessionID, letterID string) (*BuilderView, error)
	UndoLetter(ctx context.Context, userID, sessionID, letterID string) (*BuilderView, error)
	CheckBuilder(ctx context.Context, userID, sessionID string) (*BuilderAnswerView, error)

	Abandon(ctx context.Context, userID, sessionID string) error
}

// gameSession pairs an FSM with its owner. mu serializes turn resolution so
// overlapping requests on one session id cannot answer the same turn twice.
type gameSession struct {
	userID    string
	flashcard *session.FlashcardSession
	battle    *session.Battle
	match     *session.MatchBoard
	builder   *session.BuilderSession

	mu sync.Mutex
}

type gameService struct {
	words    repository.WordRepository
	reviews  ReviewService
	progress ProgressService
	newRand  func() *rand.Rand

	mu       sync.Mutex
	sessions map[string]*gameSession
}

// NewGameService creates a new GameService. newRand may be nil, in which case
// sessions get a time-seeded source; tests inject a fixed seed.
func NewGameService(words repository.WordRepository, reviews ReviewService, progress ProgressService, newRand func() *rand.Rand) GameService {
	if newRand == nil {
		newRand = func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}
	return &gameService{
		words:    words,
		reviews:  reviews,
		progress: progress,
		newRand:  newRand,
		sessions: make(map[string]*gameSession),
	}
}

func (s *gameService) loadWords(ctx context.Context, userID string) ([]models.Word, error) {
	words, err := s.words.List(ctx, userID, models.WordFilter{})
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return words, nil
}

func (s *gameService) register(userID string, gs *gameSession) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = gs
	s.mu.Unlock()
	return id
}

func (s *gameService) lookup(userID, sessionID string) (*gameSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs, ok := s.sessions[sessionID]
	if !ok || gs.userID != userID {
		return nil, errors.NewNotFoundError("session", sessionID)
	}
	return gs, nil
}

func (s *gameService) drop(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

// Flashcards

func (s *gameService) StartFlashcards(ctx context.Context, userID string) (*FlashcardView, error) {
	words, err := s.loadWords(ctx, userID)
	if err != nil {
		return nil, err
	}
	fc, err := session.NewFlashcardSession(words)
	if err != nil {
		return nil, err
	}

	// Snapshot the view before register publishes the session.
	current, _ := fc.Current()
	view := &FlashcardView{
		Word:  &current,
		Index: fc.Index,
		Total: len(fc.Words),
	}
	view.SessionID = s.register(userID, &gameSession{userID: userID, flashcard: fc})
	logger.FromContext(ctx).Info("flashcard session started: id=%s, words=%d", view.SessionID, len(fc.Words))
	return view, nil
}

func (s *gameService) AnswerFlashcard(ctx context.Context, userID, sessionID string, wasCorrect bool) (*FlashcardAnswerView, error) {
	gs, err := s.lookup(userID, sessionID)
	if err != nil {
		return nil, err
	}
	if gs.flashcard == nil {
		return nil, errors.NewBadRequestError("session is not a flashcard session")
	}

	gs.mu.Lock()
	defer gs.mu.Unlock()

	result, err := gs.flashcard.Answer(wasCorrect, time.Now())
	if err != nil {
		return nil, err
	}

	extraXP := 0
	if wasCorrect {
		extraXP = xp.RewardFlashcardCorrect
	}
	outcome, err := s.reviews.CommitReview(ctx, userID, result.Word, result.MasteredNow, extraXP)
	if err != nil {
		return nil, err
	}

	view := &FlashcardAnswerView{
		Outcome: *outcome,
		Index:   gs.flashcard.Index,
		Total:   len(gs.flashcard.Words),
		Done:    result.Done,
	}
	if next, ok := gs.flashcard.Current(); ok {
		view.Next = &next
	}
	if result.Done {
		s.drop(sessionID)
	}
	return view, nil
}

// Battle

func (s *gameService) StartBattle(ctx context.Context, userID string, level int) (*BattleView, error) {
	words, err := s.loadWords(ctx, userID)
	if err != nil {
		return nil, err
	}
	battle, err := session.NewBattle(words, level, s.newRand())
	if err != nil {
		return nil, err
	}
	if err := battle.Begin(); err != nil {
		return nil, err
	}

	view := s.battleView("", battle)
	view.SessionID = s.register(userID, &gameSession{userID: userID, battle: battle})
	logger.FromContext(ctx).Info("battle started: id=%s, level=%d, monster_hp=%d", view.SessionID, level, battle.MaxMonsterHP)
	return view, nil
}

func (s *gameService) battleView(sessionID string, b *session.Battle) *BattleView {
	return &BattleView{
		SessionID:    sessionID,
		Level:        b.Level,
		State:        b.State,
		PlayerHP:     b.PlayerHP,
		MonsterHP:    b.MonsterHP,
		MaxMonsterHP: b.MaxMonsterHP,
		Turn:         b.Current,
	}
}

func (s *gameService) AnswerBattle(ctx context.Context, userID, sessionID, option string) (*BattleAnswerView, error) {
	log := logger.FromContext(ctx)

	gs, err := s.lookup(userID, sessionID)
	if err != nil {
		return nil, err
	}
	if gs.battle == nil {
		return nil, errors.NewBadRequestError("session is not a battle session")
	}

	gs.mu.Lock()
	defer gs.mu.Unlock()

	outcome, err := gs.battle.Answer(option, time.Now())
	if err != nil {
		return nil, err
	}

	reviewOutcome, err := s.reviews.CommitReview(ctx, userID, outcome.Word, outcome.MasteredNow, 0)
	if err != nil {
		return nil, err
	}

	view := &BattleAnswerView{
		BattleView:  *s.battleView(sessionID, gs.battle),
		Correct:     outcome.Correct,
		MasteredNow: outcome.MasteredNow,
		XPAwarded:   reviewOutcome.XPAwarded,
		LeveledUp:   reviewOutcome.LeveledUp,
	}

	switch outcome.State {
	case session.BattleStateWon:
		log.Info("battle won: level=%d", gs.battle.Level)
		if _, leveledUp, err := s.progress.AwardXP(ctx, userID, xp.RewardBossDefeated); err != nil {
			log.Warn("failed to award boss XP: %v", err)
		} else {
			view.XPAwarded += xp.RewardBossDefeated
			view.LeveledUp = view.LeveledUp || leveledUp
		}
		if err := s.progress.CompleteDungeonLevel(ctx, userID, gs.battle.Level); err != nil {
			log.Warn("failed to record completed level: %v", err)
		}
		s.drop(sessionID)
	case session.BattleStateLost:
		// A loss carries no penalty beyond the attempt.
		log.Info("battle lost: level=%d", gs.battle.Level)
		s.drop(sessionID)
	}
	return view, nil
}

// Matching pairs

func (s *gameService) StartMatch(ctx context.Context, userID string) (*MatchView, error) {
	words, err := s.loadWords(ctx, userID)
	if err != nil {
		return nil, err
	}
	board, err := session.NewMatchBoard(words, s.newRand())
	if err != nil {
		return nil, err
	}

	view := s.matchView("", board)
	view.SessionID = s.register(userID, &gameSession{userID: userID, match: board})
	logger.FromContext(ctx).Info("match session started: id=%s", view.SessionID)
	return view, nil
}

func (s *gameService) matchView(sessionID string, m *session.MatchBoard) *MatchView {
	return &MatchView{
		SessionID: sessionID,
		Cards:     m.Cards,
		Moves:     m.Moves,
		Matches:   m.Matches,
		Seconds:   m.Seconds,
		State:     m.State,
	}
}

func (s *gameService) matchSession(userID, sessionID string) (*gameSession, *session.MatchBoard, error) {
	gs, err := s.lookup(userID, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if gs.match == nil {
		return nil, nil, errors.NewBadRequestError("session is not a match session")
	}
	return gs, gs.match, nil
}

func (s *gameService) FlipCard(ctx context.Context, userID, sessionID, cardID string) (*MatchFlipView, error) {
	log := logger.FromContext(ctx)

	gs, board, err := s.matchSession(userID, sessionID)
	if err != nil {
		return nil, err
	}

	gs.mu.Lock()
	defer gs.mu.Unlock()

	result := board.Flip(cardID)
	view := &MatchFlipView{
		MatchView: *s.matchView(sessionID, board),
		Result:    result,
	}

	if result.Won {
		log.Info("match won: moves=%d, seconds=%d", board.Moves, board.Seconds)
		if _, leveledUp, err := s.progress.AwardXP(ctx, userID, xp.RewardMatchComplete); err != nil {
			log.Warn("failed to award match XP: %v", err)
		} else {
			view.XPAwarded = xp.RewardMatchComplete
			view.LeveledUp = leveledUp
		}
		s.drop(sessionID)
	}
	return view, nil
}

func (s *gameService) ResolveMismatch(ctx context.Context, userID, sessionID string) (*MatchView, error) {
	gs, board, err := s.matchSession(userID, sessionID)
	if err != nil {
		return nil, err
	}
	gs.mu.Lock()
	defer gs.mu.Unlock()
	board.ResolveMismatch()
	return s.matchView(sessionID, board), nil
}

func (s *gameService) TickMatch(ctx context.Context, userID, sessionID string) (*MatchView, error) {
	gs, board, err := s.matchSession(userID, sessionID)
	if err != nil {
		return nil, err
	}
	gs.mu.Lock()
	defer gs.mu.Unlock()
	board.Tick()
	return s.matchView(sessionID, board), nil
}

// Word builder

func (s *gameService) StartBuilder(ctx context.Context, userID string) (*BuilderView, error) {
	words, err := s.loadWords(ctx, userID)
	if err != nil {
		return nil, err
	}
	builder, err := session.NewBuilderSession(words, s.newRand())
	if err != nil {
		return nil, err
	}

	view := s.builderView("", builder)
	view.SessionID = s.register(userID, &gameSession{userID: userID, builder: builder})
	logger.FromContext(ctx).Info("builder session started: id=%s, words=%d", view.SessionID, len(builder.Words))
	return view, nil
}

func (s *gameService) builderView(sessionID string, b *session.BuilderSession) *BuilderView {
	view := &BuilderView{
		SessionID: sessionID,
		Scrambled: b.Scrambled,
		Selected:  b.Selected,
		Index:     b.Index,
		Total:     len(b.Words),
		Done:      b.Index >= len(b.Words),
	}
	if current, ok := b.Current(); ok {
		view.Clue = current.Translation
	}
	return view
}

func (s *gameService) builderSession(userID, sessionID string) (*gameSession, *session.BuilderSession, error) {
	gs, err := s.lookup(userID, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if gs.builder == nil {
		return nil, nil, errors.NewBadRequestError("session is not a builder session")
	}
	return gs, gs.builder, nil
}

func (s *gameService) SelectLetter(ctx context.Context, userID, sessionID, letterID string) (*BuilderView, error) {
	gs, builder, err := s.builderSession(userID, sessionID)
	if err != nil {
		return nil, err
	}
	gs.mu.Lock()
	defer gs.mu.Unlock()
	builder.Select(letterID)
	return s.builderView(sessionID, builder), nil
}

func (s *gameService) UndoLetter(ctx context.Context, userID, sessionID, letterID string) (*BuilderView, error) {
	gs, builder, err := s.builderSession(userID, sessionID)
	if err != nil {
		return nil, err
	}
	gs.mu.Lock()
	defer gs.mu.Unlock()
	builder.Undo(letterID)
	return s.builderView(sessionID, builder), nil
}

func (s *gameService) CheckBuilder(ctx context.Context, userID, sessionID string) (*BuilderAnswerView, error) {
	gs, builder, err := s.builderSession(userID, sessionID)
	if err != nil {
		return nil, err
	}

	gs.mu.Lock()
	defer gs.mu.Unlock()

	term, _ := builder.Current()
	correct := strings.EqualFold(builder.Attempt(), term.Term)
	result, err := builder.Check(time.Now())
	if err != nil {
		return nil, err
	}

	outcome, err := s.reviews.CommitReview(ctx, userID, result.Word, result.MasteredNow, 0)
	if err != nil {
		return nil, err
	}

	view := &BuilderAnswerView{
		Outcome: *outcome,
		Correct: correct,
		Term:    term.Term,
		Next:    *s.builderView(sessionID, builder),
	}
	if result.Done {
		s.drop(sessionID)
	}
	return view, nil
}

// Abandon discards an in-progress session. Per-review word updates already
// written stay; session aggregates are simply dropped.
func (s *gameService) Abandon(ctx context.Context, userID, sessionID string) error {
	if _, err := s.lookup(userID, sessionID); err != nil {
		return err
	}
	s.drop(sessionID)
	logger.FromContext(ctx).Info("session abandoned: id=%s", sessionID)
	return nil
}
