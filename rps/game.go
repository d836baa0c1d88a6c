// Package rps implements the rock-paper-scissors round logic and the
// running score for one session.
package rps

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

// Choice is one of the three throwable hands.
type Choice uint8

const (
	Rock Choice = iota
	Paper
	Scissors
)

// NumChoices is the size of the Choice domain.
const NumChoices = 3

func (c Choice) Valid() bool { return c < NumChoices }

func (c Choice) String() string {
	switch c {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	}
	return fmt.Sprintf("choice(%d)", uint8(c))
}

// Title returns the capitalized display form, e.g. "Rock".
func (c Choice) Title() string {
	s := c.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseChoice maps a choice name (any case) to its Choice.
func ParseChoice(s string) (Choice, error) {
	switch strings.ToLower(s) {
	case "rock":
		return Rock, nil
	case "paper":
		return Paper, nil
	case "scissors":
		return Scissors, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidChoice, s)
}

// Outcome is the result of one round from the player's perspective.
type Outcome uint8

const (
	Tie Outcome = iota
	Win
	Lose
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Lose:
		return "lose"
	}
	return "tie"
}

// beats maps each choice to the choice it defeats.
var beats = [NumChoices]Choice{
	Rock:     Scissors,
	Paper:    Rock,
	Scissors: Paper,
}

// DecideWinner applies the fixed dominance rule: equal choices tie,
// otherwise exactly one side wins. Pure over its inputs.
func DecideWinner(player, computer Choice) Outcome {
	if player == computer {
		return Tie
	}
	if beats[player] == computer {
		return Win
	}
	return Lose
}

// ErrInvalidChoice reports a player choice outside the three valid
// values. Nothing is mutated when it is returned.
var ErrInvalidChoice = errors.New("invalid choice")

// Score holds the running tallies for one session. TotalRounds always
// equals the sum of the other three counters.
type Score struct {
	PlayerWins   int
	ComputerWins int
	Ties         int
	TotalRounds  int
}

// Summary is the headline score line.
func (s Score) Summary() string {
	return fmt.Sprintf("Player: %d   Computer: %d", s.PlayerWins, s.ComputerWins)
}

// Detail reports every counter plus the win rate with one decimal.
// With no rounds played the rate reads 0.0%.
func (s Score) Detail() string {
	if s.TotalRounds == 0 {
		return "Wins: 0 | Losses: 0 | Ties: 0 | Total: 0 | Win Rate: 0.0%"
	}
	rate := float64(s.PlayerWins) / float64(s.TotalRounds) * 100
	return fmt.Sprintf("Wins: %d | Losses: %d | Ties: %d | Total: %d | Win Rate: %.1f%%",
		s.PlayerWins, s.ComputerWins, s.Ties, s.TotalRounds, rate)
}

// Round records one completed round.
type Round struct {
	Player   Choice
	Computer Choice
	Outcome  Outcome
}

// Result is the round-result line shown to the player.
func (r Round) Result() string {
	switch r.Outcome {
	case Win:
		return "You win this round!"
	case Lose:
		return "You lose this round."
	}
	return "It's a tie."
}

// ComputerLine reports the computer's move.
func (r Round) ComputerLine() string {
	return "Computer chose: " + r.Computer.Title()
}

// Initial display placeholders, restored on reset.
const (
	InitialResult   = "Make your move!"
	ResetResult     = "Scores reset. Make your move!"
	InitialComputer = "Computer hasn't played yet."
)

// Game owns one session's score and the computer's random moves.
type Game struct {
	rng   *rand.Rand
	score Score
}

// NewGame returns a zero-score game. A nil rng falls back to the
// shared top-level source; tests pass a seeded one.
func NewGame(rng *rand.Rand) *Game {
	return &Game{rng: rng}
}

func (g *Game) Score() Score { return g.score }

// ComputerMove draws uniformly from the three choices. Each draw is
// independent of past rounds.
func (g *Game) ComputerMove() Choice {
	if g.rng != nil {
		return Choice(g.rng.IntN(NumChoices))
	}
	return Choice(rand.IntN(NumChoices))
}

// Play runs one round against a fresh computer move and updates the
// score. An invalid choice returns ErrInvalidChoice with no mutation.
func (g *Game) Play(player Choice) (Round, error) {
	if !player.Valid() {
		return Round{}, fmt.Errorf("%w: %s", ErrInvalidChoice, player)
	}
	r := Round{Player: player, Computer: g.ComputerMove()}
	r.Outcome = DecideWinner(r.Player, r.Computer)

	g.score.TotalRounds++
	switch r.Outcome {
	case Win:
		g.score.PlayerWins++
	case Lose:
		g.score.ComputerWins++
	default:
		g.score.Ties++
	}
	return r, nil
}

// Reset zeroes the score.
func (g *Game) Reset() {
	g.score = Score{}
}
