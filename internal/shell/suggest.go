package shell

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// suggester ranks known command names against a mistyped one. The candidate
// list is built lazily on the first miss and cached for the shell's lifetime;
// the search path is fixed at startup so the set only drifts if files are
// added to those directories later.
type suggester struct {
	shell      *Shell
	candidates []string
}

func newSuggester(s *Shell) *suggester {
	return &suggester{shell: s}
}

func (sg *suggester) closest(name string) (string, bool) {
	if sg.candidates == nil {
		sg.candidates = sg.shell.KnownCommands()
	}

	ranks := fuzzy.RankFindFold(name, sg.candidates)
	if len(ranks) == 0 {
		return "", false
	}

	sort.Sort(ranks)
	return ranks[0].Target, true
}
