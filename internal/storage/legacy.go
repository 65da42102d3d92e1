package storage

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// LegacyEntry is one record of the plain-text score file, stored as
// "name:score;" pairs.
type LegacyEntry struct {
	Name  string
	Score int
}

// ParseLegacyScores decodes a score file. Records without a ':' are
// skipped, unparsable scores count as zero, zero scores are dropped, and
// the result is sorted best first and cut to limit entries.
func ParseLegacyScores(data string, limit int) []LegacyEntry {
	if data == "" || !strings.Contains(data, ";") {
		return nil
	}

	var entries []LegacyEntry
	for _, record := range strings.Split(data, ";") {
		parts := strings.Split(record, ":")
		if len(parts) < 2 {
			continue
		}
		score, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 32)
		if err != nil || score == 0 {
			continue
		}
		entries = append(entries, LegacyEntry{
			Name:  strings.TrimSpace(parts[0]),
			Score: int(score),
		})
	}

	sortLegacy(entries)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// FormatLegacyScores encodes entries best first, at most limit of them.
func FormatLegacyScores(entries []LegacyEntry, limit int) string {
	sorted := slices.Clone(entries)
	sortLegacy(sorted)

	var sb strings.Builder
	for i, e := range sorted {
		if limit > 0 && i == limit {
			break
		}
		fmt.Fprintf(&sb, "%s:%d;", strings.TrimSpace(e.Name), e.Score)
	}
	return sb.String()
}

func sortLegacy(entries []LegacyEntry) {
	slices.SortStableFunc(entries, func(a, b LegacyEntry) int {
		return cmp.Compare(b.Score, a.Score)
	})
}

// ImportLegacy reads a score file and saves its entries for gameID.
// Entries with names that are blank after normalization are skipped.
// Returns the number of imported entries.
func (s *Store) ImportLegacy(gameID string, r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read score file: %w", err)
	}

	imported := 0
	for _, e := range ParseLegacyScores(string(data), s.maxEntries) {
		if _, err := s.SaveScore(gameID, e.Name, e.Score); err != nil {
			if errors.Is(err, ErrEmptyName) {
				continue
			}
			return imported, err
		}
		imported++
	}
	return imported, nil
}

// ExportLegacy writes the top scores of gameID in the score file format.
func (s *Store) ExportLegacy(gameID string, w io.Writer) error {
	top, err := s.TopScores(gameID, s.maxEntries)
	if err != nil {
		return err
	}

	entries := make([]LegacyEntry, len(top))
	for i, e := range top {
		entries[i] = LegacyEntry{Name: e.Name, Score: e.Score}
	}
	if _, err := io.WriteString(w, FormatLegacyScores(entries, s.maxEntries)); err != nil {
		return fmt.Errorf("storage: cannot write score file: %w", err)
	}
	return nil
}
