// Package game runs the word game: the bot shows a slang word, the player
// guesses, then reveals the meaning. Rounds live in memory only.
package game

import (
	"log/slog"
	"math/rand"
	"sync"

	"github.com/raolabs/raobot/internal/user"
)

// Round is one word with its meaning.
type Round struct {
	Word    string
	Meaning string
}

// words is the fixed round pool.
var words = []Round{
	{Word: "Jugadu", Meaning: "Smart solution nikalne wala 😄"},
	{Word: "Bakchod", Meaning: "Masti + talks mode ON 🤣"},
	{Word: "Funda", Meaning: "Idea / concept 💡"},
	{Word: "Khatarnak", Meaning: "Super dangerous but cool 😎"},
	{Word: "Mast", Meaning: "Very good / awesome 🔥"},
}

type roundState struct {
	round    Round
	revealed bool
}

// Service tracks the active round per user.
type Service struct {
	mu     sync.Mutex
	active map[int64]*roundState
	users  *user.Service
	log    *slog.Logger
	pick   func(n int) int
}

// NewService constructs a game service. users may be nil when score tracking
// is not wanted.
func NewService(users *user.Service, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}

	return &Service{
		active: make(map[int64]*roundState),
		users:  users,
		log:    log,
		pick:   rand.Intn,
	}
}

// SetPicker overrides the random round picker. Test hook.
func (s *Service) SetPicker(pick func(n int) int) {
	s.pick = pick
}

// Start begins a new round for the user, replacing any active one.
func (s *Service) Start(userID int64) Round {
	round := words[s.pick(len(words))]

	s.mu.Lock()
	s.active[userID] = &roundState{round: round}
	s.mu.Unlock()

	return round
}

// Reveal returns the user's active round. The first reveal of a round awards
// one point; the round stays active so the meaning can be shown again.
func (s *Service) Reveal(userID int64) (Round, bool) {
	s.mu.Lock()
	st, ok := s.active[userID]
	if !ok {
		s.mu.Unlock()
		return Round{}, false
	}
	first := !st.revealed
	st.revealed = true
	round := st.round
	s.mu.Unlock()

	if first && s.users != nil {
		if _, err := s.users.AddGamePoints(userID, 1); err != nil {
			s.log.Warn("game score update failed",
				slog.Int64("user_id", userID),
				slog.Any("error", err),
			)
		}
	}

	return round, true
}
