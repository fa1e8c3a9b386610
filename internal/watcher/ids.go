package watcher

import "github.com/jaredsdml/JoulIAna-AI-Assistant/internal/email"

// idSet is the watcher's working memory: the message identifiers
// observed as of the last successful poll.
type idSet map[email.ID]struct{}

// collect builds an idSet from a server listing.
func collect(refs []email.Ref) idSet {
	s := make(idSet, len(refs))
	for _, r := range refs {
		s[r.ID] = struct{}{}
	}
	return s
}

// newRefs returns the refs whose identifiers are not in known,
// preserving listing order.
func newRefs(refs []email.Ref, known idSet) []email.Ref {
	var fresh []email.Ref
	for _, r := range refs {
		if _, ok := known[r.ID]; !ok {
			fresh = append(fresh, r)
		}
	}
	return fresh
}
