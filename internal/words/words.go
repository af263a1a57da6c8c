// internal/words/words.go
//
// Provides the word bank for the game engine.
//
// Responsibilities:
//   - Load candidate words from a line-delimited file (default words.txt).
//   - Choose one entry at random from an injected, seedable source.
//
// Word bank format:
//   - One entry per line; surrounding whitespace is trimmed.
//   - Blank lines are skipped.
//   - Case is preserved here; the game engine lowercases the chosen secret.
//
// A bank without entries is an error: there is nothing to play.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
)

// DefaultPath is the word bank used when none is configured.
const DefaultPath = "words.txt"

// maxLine bounds a single word bank line.
const maxLine = 1 << 20

var ErrEmptyBank = errors.New("words: word bank is empty")

// Load reads a word bank from path.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word bank: %w", err)
	}
	defer f.Close()

	out, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

// Read parses one entry per line from r, trimming whitespace and skipping
// blank lines.
func Read(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLine)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" {
			continue
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrEmptyBank
	}
	return out, nil
}

// Choose returns a uniformly random entry of list using rng.
func Choose(rng *rand.Rand, list []string) (string, error) {
	if len(list) == 0 {
		return "", ErrEmptyBank
	}
	return list[rng.Intn(len(list))], nil
}
