package cli

import (
	"fmt"
	"sort"

	"github.com/atomicstack/tmux-ui/internal/tmux"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// withSuggestion decorates err with the closest existing session name when
// name does not exist. The original error is returned untouched otherwise.
func (rt *runtime) withSuggestion(name string, err error) error {
	sessions, listErr := rt.client.ListSessions()
	if listErr != nil {
		return err
	}
	names := tmux.SessionNames(sessions)
	for _, existing := range names {
		if existing == name {
			return err
		}
	}
	if best := suggest(name, names); best != "" {
		return fmt.Errorf("%w (did you mean %q?)", err, best)
	}
	return err
}

// suggest returns the best fuzzy match for query among names. Names that
// contain the query rank first; otherwise names contained in the query are
// tried, so a typo with extra characters still finds its session.
func suggest(query string, names []string) string {
	if query == "" || len(names) == 0 {
		return ""
	}
	if ranks := fuzzy.RankFindNormalizedFold(query, names); len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}
	best, bestDistance := "", -1
	for _, name := range names {
		if !fuzzy.MatchNormalizedFold(name, query) {
			continue
		}
		distance := fuzzy.LevenshteinDistance(name, query)
		if bestDistance < 0 || distance < bestDistance {
			best, bestDistance = name, distance
		}
	}
	return best
}
