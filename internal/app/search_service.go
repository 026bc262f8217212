package app

import (
	"errors"
	"strings"
)

var (
	ErrConfiguration    = errors.New("configuration error")
	ErrSourceUnreadable = errors.New("source unreadable")
)

// SearchConfig is the resolved search request. It is built once by the
// argument resolver and only read afterwards.
type SearchConfig struct {
	Query         string
	Source        Source
	CaseSensitive bool
}

type Grep struct {
	config SearchConfig
	lines  []string
}

func NewGrep(config SearchConfig, lines []string) *Grep {
	return &Grep{
		config: config,
		lines:  lines,
	}
}

// Matches returns the matching lines in input order.
func (g *Grep) Matches() []string {
	return Search(g.config, g.lines)
}

// Search returns every line that contains cfg.Query as a substring.
// Without CaseSensitive both sides are lowercased for the check, but the
// original line is what ends up in the result. An empty query matches
// every line.
func Search(cfg SearchConfig, lines []string) []string {
	results := make([]string, 0)

	query := cfg.Query
	if !cfg.CaseSensitive {
		query = strings.ToLower(query)
	}

	for _, line := range lines {
		candidate := line
		if !cfg.CaseSensitive {
			candidate = strings.ToLower(line)
		}
		if strings.Contains(candidate, query) {
			results = append(results, line)
		}
	}
	return results
}
