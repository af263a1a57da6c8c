package main

import (
	"errors"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordraider/internal/console"
	"github.com/robalobadob/wordraider/internal/game"
	"github.com/robalobadob/wordraider/internal/words"
)

// CLI holds the command-line parameters. Both may also come from the
// environment or a .env file.
type CLI struct {
	Words       string `kong:"short='w',default='words.txt',env='WORDRAIDER_WORDS',help='Path to the word bank, one word per line.'"`
	MaxAttempts int    `kong:"short='m',default='6',env='WORDRAIDER_MAX_ATTEMPTS',help='Incorrect guesses allowed before the game is lost.'"`
}

// Validate is called by kong after parsing.
func (c *CLI) Validate() error {
	if c.MaxAttempts < 1 {
		return game.ErrInvalidMaxAttempts
	}
	if strings.TrimSpace(c.Words) == "" {
		return errors.New("word bank path must not be empty")
	}
	return nil
}

func main() {
	_ = godotenv.Load()
	log.Logger = newLogger(os.Stderr, getEnv("LOG_LEVEL", "warn"))

	var cli CLI
	kong.Parse(&cli,
		kong.Name("wordraider"),
		kong.Description("Guess the secret word one letter at a time, or all at once."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	seed := seedFromEnv(time.Now().UnixNano())

	g, err := newGame(cli, rand.New(rand.NewSource(seed)))
	if err != nil {
		log.Fatal().Err(err).Str("words", cli.Words).Msg("failed to start game")
	}
	log.Debug().Int64("seed", seed).Int("max_attempts", g.MaxAttempts).Msg("game started")

	state, err := console.New(os.Stdin, os.Stdout, log.Logger).Run(g)
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
	log.Debug().Str("state", string(state)).Int("attempts", g.Attempts).Msg("game over")
}

// newGame loads the word bank and starts a game on a randomly chosen word.
func newGame(cli CLI, rng *rand.Rand) (*game.Game, error) {
	list, err := words.Load(cli.Words)
	if err != nil {
		return nil, err
	}
	secret, err := words.Choose(rng, list)
	if err != nil {
		return nil, err
	}
	return game.New(secret, cli.MaxAttempts)
}

// newLogger builds a console logger at the named level, falling back to warn.
func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().Timestamp().Logger()
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// seedFromEnv returns WORDRAIDER_SEED as an int64, or def when it is unset
// or not a number.
func seedFromEnv(def int64) int64 {
	v := os.Getenv("WORDRAIDER_SEED")
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		log.Warn().Str("seed", v).Msg("ignoring invalid WORDRAIDER_SEED")
		return def
	}
	return n
}
