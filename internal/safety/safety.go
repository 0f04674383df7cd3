// Package safety detects dangerous content in publication text using a
// dictionary of words and phrases.
package safety

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"sync"
)

//go:embed dictionary.txt
var defaultDictionary string

// Detector matches text against a case-insensitive dictionary. It is safe for
// concurrent use and the dictionary can be reloaded at runtime.
type Detector struct {
	mu       sync.RWMutex
	words    []string
	patterns []*regexp.Regexp
}

// New returns a Detector loaded with the embedded dictionary.
func New() *Detector {
	d := &Detector{}
	// the embedded dictionary is plain text and always loads
	_ = d.Load(strings.NewReader(defaultDictionary))

	return d
}

// NewFromFile returns a Detector loaded from a newline separated file. An
// empty path falls back to the embedded dictionary.
func NewFromFile(path string) (*Detector, error) {
	if path == "" {
		return New(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open dictionary: %w", err)
	}
	defer f.Close() //nolint: errcheck

	d := &Detector{}
	if err := d.Load(f); err != nil {
		return nil, err
	}

	return d, nil
}

// Load replaces the dictionary with the non-empty lines of r.
func (d *Detector) Load(r io.Reader) error {
	var (
		words    []string
		patterns []*regexp.Regexp
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}

		words = append(words, word)
		patterns = append(patterns, regexp.MustCompile("(?i)"+regexp.QuoteMeta(word)))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("could not read dictionary: %w", err)
	}

	d.mu.Lock()
	d.words, d.patterns = words, patterns
	d.mu.Unlock()

	return nil
}

// ContainsDangerousContent reports whether any dictionary entry occurs in text.
func (d *Detector) ContainsDangerousContent(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, p := range d.patterns {
		if p.MatchString(text) {
			return true
		}
	}

	return false
}

// FindDangerousWords returns the dictionary entries found in text, in
// dictionary order.
func (d *Detector) FindDangerousWords(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	var found []string
	for i, p := range d.patterns {
		if p.MatchString(text) {
			found = append(found, d.words[i])
		}
	}

	return found
}
