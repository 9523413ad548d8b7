// Package corpus seeds an analytics engine from plain-text corpus files,
// one sentence per line.
package corpus

import (
	"bufio"
	"os"

	"github.com/bastiangx/lexiserve/pkg/analyze"
	"github.com/charmbracelet/log"
)

// LoadStats reports what a seeding pass did
type LoadStats struct {
	Lines   int
	Words   int
	Skipped int
}

// Loader streams sentences from corpus files into an engine
type Loader struct {
	maxLines   int
	maxLineLen int
}

// NewLoader creates a loader. maxLines caps how many sentences a pass
// ingests, maxLineLen skips oversized lines; 0 disables either limit.
func NewLoader(maxLines, maxLineLen int) *Loader {
	return &Loader{
		maxLines:   maxLines,
		maxLineLen: maxLineLen,
	}
}

// LoadFile ingests every line of the file at path as one sentence.
// Blank and oversized lines are counted as skipped, not errors.
func (l *Loader) LoadFile(path string, engine analyze.IAnalyzer) (LoadStats, error) {
	var stats LoadStats

	file, err := os.Open(path)
	if err != nil {
		return stats, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Errorf("Closing corpus file: %v", err)
		}
	}()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if l.maxLines > 0 && stats.Lines >= l.maxLines {
			log.Debugf("Seed line cap of %d reached, stopping", l.maxLines)
			break
		}

		line := scanner.Text()
		if l.maxLineLen > 0 && len(line) > l.maxLineLen {
			stats.Skipped++
			continue
		}

		n := engine.Ingest(line)
		if n == 0 {
			stats.Skipped++
			continue
		}
		stats.Lines++
		stats.Words += n
	}
	if err := scanner.Err(); err != nil {
		return stats, err
	}

	log.Debugf("Seeded %d sentences (%d words, %d skipped) from %s",
		stats.Lines, stats.Words, stats.Skipped, path)
	return stats, nil
}
