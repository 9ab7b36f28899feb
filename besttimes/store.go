package besttimes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"regexp"
	"strings"
)

// Unset is the in-memory value of a level with no recorded time.
var Unset = math.Inf(1)

// Older save files wrote bare Infinity tokens, which are not valid JSON.
var legacyInfinity = regexp.MustCompile(`-?\bInfinity\b`)

// Store holds the best completion time per level, in seconds.
type Store struct {
	path     string
	maxLevel int
	times    map[int]float64
}

// New returns an empty store for levels 1..maxLevel saved at path.
func New(path string, maxLevel int) *Store {
	s := &Store{path: path, maxLevel: maxLevel, times: make(map[int]float64, maxLevel)}
	for n := 1; n <= maxLevel; n++ {
		s.times[n] = Unset
	}
	return s
}

// Load reads the store at path. A missing or unreadable file yields an empty
// store; load problems are logged, never returned.
func Load(path string, maxLevel int) *Store {
	s := New(path, maxLevel)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("besttimes: read %s: %v", path, err)
		}
		return s
	}
	if err := s.decode(data); err != nil {
		log.Printf("besttimes: parse %s: %v", path, err)
		return New(path, maxLevel)
	}
	return s
}

func (s *Store) decode(data []byte) error {
	data = legacyInfinity.ReplaceAll(data, []byte("null"))
	var raw map[string]*float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for n := 1; n <= s.maxLevel; n++ {
		v, ok := raw[Key(n)]
		if !ok || v == nil || math.IsNaN(*v) || *v < 0 {
			continue
		}
		s.times[n] = *v
	}
	return nil
}

// Key is the persisted key for level n.
func Key(n int) string {
	return fmt.Sprintf("level_%d", n)
}

// Path is the file the store saves to.
func (s *Store) Path() string {
	return s.path
}

// Best returns the best time for level n, or Unset.
func (s *Store) Best(n int) float64 {
	if s == nil {
		return Unset
	}
	if v, ok := s.times[n]; ok {
		return v
	}
	return Unset
}

// Record stores t for level n when it beats the current best and saves the
// file. It reports whether t was a new record. The in-memory record stands
// even when the save fails.
func (s *Store) Record(n int, t float64) (bool, error) {
	if s == nil || n < 1 || n > s.maxLevel || math.IsNaN(t) {
		return false, nil
	}
	if !(t < s.Best(n)) {
		return false, nil
	}
	s.times[n] = t
	if err := s.Save(); err != nil {
		return true, err
	}
	return true, nil
}

// Total sums the best times of all levels. It is Unset when any level has
// no record.
func (s *Store) Total() float64 {
	total := 0.0
	for n := 1; n <= s.maxLevel; n++ {
		total += s.Best(n)
	}
	return total
}

// Save overwrites the file with every level, unset ones as null.
func (s *Store) Save() error {
	out := make(map[string]*float64, s.maxLevel)
	for n := 1; n <= s.maxLevel; n++ {
		v := s.Best(n)
		if math.IsInf(v, 1) {
			out[Key(n)] = nil
			continue
		}
		out[Key(n)] = &v
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("besttimes: encode: %w", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("besttimes: write %s: %w", s.path, err)
	}
	return nil
}

// FormatTime renders seconds with two decimals, or N/A when unset.
func FormatTime(seconds float64) string {
	if math.IsInf(seconds, 1) {
		return "N/A"
	}
	return fmt.Sprintf("%.2fs", seconds)
}

// Summary is a plain-text leaderboard, one level per line plus the total.
func (s *Store) Summary(title string) string {
	var b strings.Builder
	if title != "" {
		b.WriteString(title)
		b.WriteByte('\n')
	}
	for n := 1; n <= s.maxLevel; n++ {
		fmt.Fprintf(&b, "Level %d: %s\n", n, FormatTime(s.Best(n)))
	}
	fmt.Fprintf(&b, "Total: %s\n", FormatTime(s.Total()))
	return b.String()
}
