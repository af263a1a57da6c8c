// internal/console/session.go
//
// Console front end for a single Word Raider game.
// Responsibilities:
//   - Drive the turn loop: show progress, prompt, read one line, apply it.
//   - Re-prompt on invalid or repeated guesses without costing an attempt.
//   - Report the outcome and reveal the secret once the game ends.
//
// Notes:
//   - Styling goes through a lipgloss renderer bound to the output writer,
//     so it degrades to plain text when the writer is not a terminal.
//   - Diagnostics go to the injected zerolog logger, never to the game output.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordraider/internal/game"
)

// ErrInputClosed is returned when input ends before the game does.
var ErrInputClosed = errors.New("input closed before the game ended")

const prompt = "Guess a letter or the whole word:"

// Session plays one game over a line-oriented reader and a writer.
type Session struct {
	in       *bufio.Reader
	out      io.Writer
	log      zerolog.Logger
	renderer *lipgloss.Renderer
	styles   styles
}

// Option configures a Session.
type Option func(*Session)

// WithColorProfile forces the colour profile instead of detecting it from
// the output writer.
func WithColorProfile(p termenv.Profile) Option {
	return func(s *Session) { s.renderer.SetColorProfile(p) }
}

// New creates a session reading guesses from in and writing to out.
func New(in io.Reader, out io.Writer, logger zerolog.Logger, opts ...Option) *Session {
	s := &Session{
		in:       bufio.NewReader(in),
		out:      out,
		log:      logger,
		renderer: lipgloss.NewRenderer(out),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.styles = newStyles(s.renderer)
	return s
}

// Run plays g until it is won or lost and returns the final state.
// An error is returned only when input fails or ends early.
func (s *Session) Run(g *game.Game) (game.State, error) {
	s.println(s.styles.title.Render("Welcome to Word Raider!"))
	s.println(fmt.Sprintf("The secret word has %d letters. You may make %d incorrect guesses.",
		len(g.Secret), g.MaxAttempts))

	for g.State() == game.StatePlaying {
		s.println(s.statusLine(g))
		fmt.Fprint(s.out, s.styles.prompt.Render(prompt)+" ")

		raw, err := s.readLine()
		if err != nil {
			fmt.Fprintln(s.out)
			return g.State(), err
		}

		mark, err := g.Guess(raw)
		if err != nil {
			s.log.Debug().Err(err).Str("input", raw).Msg("guess rejected")
			if !s.reject(raw, err) {
				return g.State(), err
			}
			continue
		}

		token := strings.ToLower(strings.TrimSpace(raw))
		s.log.Debug().
			Str("guess", token).
			Str("mark", string(mark)).
			Int("attempts", g.Attempts).
			Int("max_attempts", g.MaxAttempts).
			Msg("guess applied")
		s.feedback(token, mark)
	}

	s.report(g)
	return g.State(), nil
}

// readLine returns the next input line without its line ending. Lines have
// no length limit. A final line without a newline is still returned; ending
// with nothing left to read yields ErrInputClosed.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read guess: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// statusLine renders the masked secret with attempts left and missed letters.
func (s *Session) statusLine(g *game.Game) string {
	line := s.styles.progress.Render(g.Progress()) +
		fmt.Sprintf("   attempts left: %d", g.Remaining())
	if misses := g.Misses(); len(misses) > 0 {
		line += "   missed: " + s.styles.miss.Render(strings.Join(misses, " "))
	}
	return line
}

// reject prints the message for a recoverable guess error.
// Returns false for errors the loop cannot recover from.
func (s *Session) reject(raw string, err error) bool {
	switch {
	case errors.Is(err, game.ErrInvalidInput):
		s.println(s.styles.warn.Render("Please enter letters only."))
	case errors.Is(err, game.ErrDuplicateGuess):
		letter := strings.ToLower(strings.TrimSpace(raw))
		s.println(s.styles.warn.Render(fmt.Sprintf("You already guessed '%s'. Try another letter.", letter)))
	default:
		return false
	}
	return true
}

func (s *Session) feedback(token string, mark game.Mark) {
	switch {
	case len(token) > 1 && mark == game.MarkHit:
		// reported by the outcome
	case len(token) > 1:
		s.println(s.styles.miss.Render(fmt.Sprintf("Sorry, '%s' is not the word.", token)))
	case mark == game.MarkHit:
		s.println(s.styles.hit.Render(fmt.Sprintf("Good guess! '%s' is in the word.", token)))
	default:
		s.println(s.styles.miss.Render(fmt.Sprintf("Sorry, '%s' is not in the word.", token)))
	}
}

func (s *Session) report(g *game.Game) {
	secret := s.styles.secret.Render(g.Secret)
	if g.State() == game.StateWon {
		s.println(s.styles.hit.Render("Congratulations! You guessed the word:") + " " + secret)
		return
	}
	s.println(s.styles.miss.Render("Out of attempts. Better luck next time! The word was:") + " " + secret)
}

func (s *Session) println(line string) { fmt.Fprintln(s.out, line) }
