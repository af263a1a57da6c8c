package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T, secret string, max int) *Game {
	t.Helper()
	g, err := New(secret, max)
	require.NoError(t, err)
	return g
}

func TestNew(t *testing.T) {
	t.Run("normalizes secret and defaults attempts", func(t *testing.T) {
		g := newGame(t, "  Raider ", 0)
		assert.Equal(t, "raider", g.Secret)
		assert.Equal(t, DefaultMaxAttempts, g.MaxAttempts)
		assert.Equal(t, StatePlaying, g.State())
		assert.Empty(t, g.Guesses)
	})

	t.Run("rejects empty and non-alphabetic secrets", func(t *testing.T) {
		for _, s := range []string{"", "   ", "ice cream", "r2d2", "café"} {
			_, err := New(s, 6)
			assert.ErrorIs(t, err, ErrInvalidSecret, "secret %q", s)
		}
	})

	t.Run("rejects negative attempt bound", func(t *testing.T) {
		_, err := New("dog", -1)
		assert.ErrorIs(t, err, ErrInvalidMaxAttempts)
	})
}

func TestAcceptGuess(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		history []string
		want    string
		wantErr error
	}{
		{name: "lowercases letter", token: "A", want: "a"},
		{name: "trims whitespace", token: "  b \n", want: "b"},
		{name: "word", token: "Raider", want: "raider"},
		{name: "empty", token: "", wantErr: ErrInvalidInput},
		{name: "blank", token: "   ", wantErr: ErrInvalidInput},
		{name: "digit", token: "a1", wantErr: ErrInvalidInput},
		{name: "punctuation", token: "?", wantErr: ErrInvalidInput},
		{name: "inner space", token: "ra ider", wantErr: ErrInvalidInput},
		{name: "accented letter", token: "é", wantErr: ErrInvalidInput},
		{name: "non-ascii word", token: "straße", wantErr: ErrInvalidInput},
		{name: "repeated letter", token: "E", history: []string{"e"}, wantErr: ErrDuplicateGuess},
		{name: "repeated word allowed", token: "puzzle", history: []string{"puzzle"}, want: "puzzle"},
		{name: "letter inside earlier word is new", token: "p", history: []string{"puzzle"}, want: "p"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AcceptGuess(tt.token, tt.history)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate(t *testing.T) {
	assert.Equal(t, MarkHit, Evaluate("a", "raider"))
	assert.Equal(t, MarkMiss, Evaluate("z", "raider"))
	assert.Equal(t, MarkHit, Evaluate("raider", "raider"))
	assert.Equal(t, MarkMiss, Evaluate("puzzle", "raider"))
	assert.Equal(t, MarkMiss, Evaluate("raid", "raider"), "prefix is not a match")
}

func TestRenderProgress(t *testing.T) {
	assert.Equal(t, "d _ g", RenderProgress("dog", []string{"d", "g"}))
	assert.Equal(t, "_ _ _", RenderProgress("dog", nil))
	assert.Equal(t, "b a n a n a", RenderProgress("banana", []string{"n", "b", "a"}))
	assert.Equal(t, "_ a _ a _ a", RenderProgress("banana", []string{"a", "z"}))
}

func TestIsComplete(t *testing.T) {
	assert.True(t, IsComplete("aba", []string{"a", "b"}))
	assert.False(t, IsComplete("abc", []string{"a", "b"}))
	assert.False(t, IsComplete("abc", nil))
}

func TestIsCompleteAfterEveryDistinctLetter(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	secrets := []string{"a", "dog", "banana", "mississippi", "raider", "puzzle", "abcdefghij"}

	for _, secret := range secrets {
		distinct := distinctLetters(secret)
		for round := 0; round < 20; round++ {
			order := append([]string(nil), distinct...)
			rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

			var revealed []string
			for i, l := range order {
				assert.False(t, IsComplete(secret, revealed), "%s complete too early", secret)
				revealed = append(revealed, l)
				if i == len(order)-1 {
					assert.True(t, IsComplete(secret, revealed), "%s after %v", secret, revealed)
				}
			}
			assert.LessOrEqual(t, len(revealed), len(distinct))
		}
	}
}

func TestGameGuess(t *testing.T) {
	t.Run("letter hit reveals without cost", func(t *testing.T) {
		g := newGame(t, "dog", 6)
		mark, err := g.Guess("d")
		require.NoError(t, err)
		assert.Equal(t, MarkHit, mark)
		assert.Equal(t, 0, g.Attempts)
		assert.Equal(t, "d _ _", g.Progress())
	})

	t.Run("letter miss costs one attempt", func(t *testing.T) {
		g := newGame(t, "dog", 6)
		mark, err := g.Guess("x")
		require.NoError(t, err)
		assert.Equal(t, MarkMiss, mark)
		assert.Equal(t, 1, g.Attempts)
		assert.Equal(t, 5, g.Remaining())
		assert.Equal(t, []string{"x"}, g.Misses())
	})

	t.Run("invalid and duplicate guesses are free", func(t *testing.T) {
		g := newGame(t, "dog", 6)
		_, err := g.Guess("x")
		require.NoError(t, err)

		_, err = g.Guess("X")
		assert.ErrorIs(t, err, ErrDuplicateGuess)
		_, err = g.Guess("d0g")
		assert.ErrorIs(t, err, ErrInvalidInput)

		assert.Equal(t, 1, g.Attempts)
		assert.Equal(t, []string{"x"}, g.Guesses)
	})

	t.Run("correct word wins regardless of attempts used", func(t *testing.T) {
		g := newGame(t, "raider", 3)
		for _, l := range []string{"x", "y"} {
			_, err := g.Guess(l)
			require.NoError(t, err)
		}
		require.Equal(t, 2, g.Attempts)

		mark, err := g.Guess("RAIDER")
		require.NoError(t, err)
		assert.Equal(t, MarkHit, mark)
		assert.Equal(t, StateWon, g.State())
		assert.Equal(t, 2, g.Attempts)
	})

	t.Run("wrong word costs exactly one attempt and reveals nothing", func(t *testing.T) {
		g := newGame(t, "raider", 6)
		_, err := g.Guess("r")
		require.NoError(t, err)
		before := g.Revealed()

		mark, err := g.Guess("raided")
		require.NoError(t, err)
		assert.Equal(t, MarkMiss, mark)
		assert.Equal(t, 1, g.Attempts)
		assert.Equal(t, before, g.Revealed())
		assert.Equal(t, "r _ _ _ _ r", g.Progress())
		assert.Equal(t, StatePlaying, g.State())
	})

	t.Run("wrong word may be repeated", func(t *testing.T) {
		g := newGame(t, "raider", 6)
		for i := 0; i < 2; i++ {
			_, err := g.Guess("puzzle")
			require.NoError(t, err)
		}
		assert.Equal(t, 2, g.Attempts)
	})

	t.Run("revealing every letter wins", func(t *testing.T) {
		g := newGame(t, "aba", 6)
		for _, l := range []string{"a", "b"} {
			_, err := g.Guess(l)
			require.NoError(t, err)
		}
		assert.Equal(t, StateWon, g.State())
		assert.Equal(t, "a b a", g.Progress())
	})

	t.Run("max incorrect letters loses", func(t *testing.T) {
		g := newGame(t, "dog", 6)
		for _, l := range []string{"a", "b", "c", "e", "f", "h"} {
			require.Equal(t, StatePlaying, g.State())
			_, err := g.Guess(l)
			require.NoError(t, err)
		}
		assert.Equal(t, StateLost, g.State())
		assert.Equal(t, 0, g.Remaining())
	})

	t.Run("finished game rejects guesses", func(t *testing.T) {
		g := newGame(t, "dog", 1)
		_, err := g.Guess("z")
		require.NoError(t, err)
		require.Equal(t, StateLost, g.State())

		_, err = g.Guess("d")
		assert.ErrorIs(t, err, ErrGameFinished)
		assert.Equal(t, 1, g.Attempts)
	})
}

func distinctLetters(s string) []string {
	var out []string
	for _, r := range s {
		if !contains(out, string(r)) {
			out = append(out, string(r))
		}
	}
	return out
}
