// internal/game/types.go
//
// Core type definitions for the Word Raider game engine.
// Defines:
//   - Mark: result of evaluating one guess (hit/miss).
//   - State: coarse lifecycle of a game (playing/won/lost).
//   - Game: state for a single in-progress or finished game.
//   - Sentinel errors returned by guess validation.

package game

import "errors"

// Mark represents the evaluation result for a guess.
//   - "hit":  the letter occurs in the secret, or the word equals it.
//   - "miss": anything else; costs one attempt.
type Mark string

const (
	MarkHit  Mark = "hit"
	MarkMiss Mark = "miss"
)

// State is the derived outcome of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Placeholder is shown in the progress display for unrevealed letters.
const Placeholder = "_"

// DefaultMaxAttempts is the number of incorrect guesses allowed when the
// caller does not configure one.
const DefaultMaxAttempts = 6

var (
	ErrInvalidInput       = errors.New("guess must contain letters only")
	ErrDuplicateGuess     = errors.New("letter already guessed")
	ErrGameFinished       = errors.New("game finished")
	ErrInvalidSecret      = errors.New("secret must be a non-empty word of letters a-z")
	ErrInvalidMaxAttempts = errors.New("max attempts must be at least 1")
)

// Game holds the state of a single Word Raider session.
type Game struct {
	Secret      string   // The word to guess (always lowercase a–z).
	MaxAttempts int      // Incorrect guesses allowed before the game is lost.
	Attempts    int      // Incorrect guesses made so far.
	Guesses     []string // Accepted guesses in order, letters and words alike.
	Solved      bool     // True once a whole-word guess matched the secret.
}
