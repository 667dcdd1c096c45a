package storage

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// ExportCSV writes every score for gameID to w as CSV with a header row,
// best first.
func (s *Store) ExportCSV(gameID string, w io.Writer) (int, error) {
	entries, err := s.AllScores(gameID)
	if err != nil {
		return 0, err
	}
	if entries == nil {
		entries = []ScoreEntry{}
	}
	if err := gocsv.Marshal(&entries, w); err != nil {
		return 0, fmt.Errorf("storage: cannot write csv: %w", err)
	}
	return len(entries), nil
}
