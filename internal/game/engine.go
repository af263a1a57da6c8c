// internal/game/engine.go
//
// Core game engine for a single Word Raider session.
// Responsibilities:
//   - Create new games from a chosen secret and an attempt bound.
//   - Validate guesses (alphabetic, single letters not repeated).
//   - Evaluate guesses: letters by membership, words by equality.
//   - Render the masked progress line and derive playing → won/lost.
//
// Notes:
//   - Only single-letter guesses reveal letters. A wrong whole-word guess
//     costs one attempt and leaves the progress line untouched.
//   - Whole-word guesses are never deduplicated.
package game

import (
	"fmt"
	"strings"
)

// New constructs a game for secret with the given attempt bound.
// A maxAttempts of zero selects DefaultMaxAttempts.
func New(secret string, maxAttempts int) (*Game, error) {
	secret = strings.ToLower(strings.TrimSpace(secret))
	if secret == "" || !isAlpha(secret) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSecret, secret)
	}
	if maxAttempts == 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if maxAttempts < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxAttempts, maxAttempts)
	}
	return &Game{
		Secret:      secret,
		MaxAttempts: maxAttempts,
		Guesses:     []string{},
	}, nil
}

// AcceptGuess normalizes token and validates it against history.
//
// Validation rules:
//   - Surrounding whitespace is trimmed and the token lowercased first.
//   - The token must be non-empty and purely ASCII a–z; accented and
//     other non-ASCII letters are rejected with ErrInvalidInput, the same
//     alphabet New enforces for the secret.
//   - A single letter must not already appear in history.
func AcceptGuess(token string, history []string) (string, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" || !isAlpha(token) {
		return "", ErrInvalidInput
	}
	if len(token) == 1 && contains(history, token) {
		return "", fmt.Errorf("%w: %q", ErrDuplicateGuess, token)
	}
	return token, nil
}

// Evaluate scores a validated token against secret.
// A single letter hits if it occurs anywhere in secret; a longer token hits
// only on an exact match.
func Evaluate(token, secret string) Mark {
	if len(token) == 1 {
		if strings.Contains(secret, token) {
			return MarkHit
		}
		return MarkMiss
	}
	if token == secret {
		return MarkHit
	}
	return MarkMiss
}

// RenderProgress shows each letter of secret that is in revealed and the
// placeholder for the rest, separated by single spaces.
func RenderProgress(secret string, revealed []string) string {
	cells := make([]string, 0, len(secret))
	for _, r := range secret {
		c := string(r)
		if contains(revealed, c) {
			cells = append(cells, c)
		} else {
			cells = append(cells, Placeholder)
		}
	}
	return strings.Join(cells, " ")
}

// IsComplete reports whether every letter of secret is in revealed.
func IsComplete(secret string, revealed []string) bool {
	for _, r := range secret {
		if !contains(revealed, string(r)) {
			return false
		}
	}
	return true
}

// Guess validates, evaluates and applies one raw player guess.
// Returns the mark or an error; rejected guesses leave the game untouched.
//
// State transitions:
//   - letter hit   → recorded, may complete the secret (won).
//   - letter miss  → recorded, attempts +1.
//   - word hit     → recorded, won immediately.
//   - word miss    → recorded as a word, attempts +1, progress unchanged.
func (g *Game) Guess(raw string) (Mark, error) {
	if g.State() != StatePlaying {
		return "", ErrGameFinished
	}
	token, err := AcceptGuess(raw, g.Guesses)
	if err != nil {
		return "", err
	}

	mark := Evaluate(token, g.Secret)
	g.Guesses = append(g.Guesses, token)
	switch {
	case mark == MarkHit && len(token) > 1:
		g.Solved = true
	case mark == MarkMiss:
		g.Attempts++
	}
	return mark, nil
}

// Revealed returns the single-letter guesses in the order they were made.
func (g *Game) Revealed() []string {
	out := make([]string, 0, len(g.Guesses))
	for _, t := range g.Guesses {
		if len(t) == 1 {
			out = append(out, t)
		}
	}
	return out
}

// Misses returns the single-letter guesses that are not in the secret.
func (g *Game) Misses() []string {
	var out []string
	for _, t := range g.Revealed() {
		if !strings.Contains(g.Secret, t) {
			out = append(out, t)
		}
	}
	return out
}

// Progress renders the masked secret for the current guesses.
func (g *Game) Progress() string { return RenderProgress(g.Secret, g.Revealed()) }

// Remaining reports how many incorrect guesses are left.
func (g *Game) Remaining() int {
	if n := g.MaxAttempts - g.Attempts; n > 0 {
		return n
	}
	return 0
}

// State derives the outcome. A win takes precedence over an exhausted
// attempt counter.
func (g *Game) State() State {
	if g.Solved || IsComplete(g.Secret, g.Revealed()) {
		return StateWon
	}
	if g.Attempts >= g.MaxAttempts {
		return StateLost
	}
	return StatePlaying
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
