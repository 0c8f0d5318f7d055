package catalog

// TitleTracker records the titles accepted for each vendor during a run and
// answers the per-vendor uniqueness checks of the generation loop. Entries
// are created lazily, append-only, and discarded with the tracker at the end
// of the run.
//
// TitleTracker is not safe for concurrent use; the batch is sequential.
type TitleTracker struct {
	titles map[string][]string
}

// NewTitleTracker creates an empty tracker.
func NewTitleTracker() *TitleTracker {
	return &TitleTracker{
		titles: make(map[string][]string),
	}
}

// ExclusionsFor returns all titles previously accepted for the vendor, in
// acceptance order. The returned slice is a copy; mutating it does not affect
// the tracker. An unseen vendor yields an empty slice.
func (t *TitleTracker) ExclusionsFor(vendor string) []string {
	accepted := t.titles[vendor]
	exclusions := make([]string, len(accepted))
	copy(exclusions, accepted)
	return exclusions
}

// IsDuplicate reports whether title exactly matches an entry already recorded
// for the vendor. The comparison is case-sensitive; near-duplicates are
// deliberately not detected.
func (t *TitleTracker) IsDuplicate(vendor, title string) bool {
	for _, accepted := range t.titles[vendor] {
		if accepted == title {
			return true
		}
	}
	return false
}

// Record appends title to the vendor's accepted list. It must be called
// exactly once per accepted record, immediately upon acceptance.
func (t *TitleTracker) Record(vendor, title string) {
	t.titles[vendor] = append(t.titles[vendor], title)
}
