package view

// Selection tracks the identifiers of selected rows. The tracked set may
// momentarily contain ids that fell out of the queried view; reads go
// through Selected, which reconciles lazily against the ids currently
// visible, so stale members are never reported.
type Selection struct {
	ids map[string]struct{}
}

func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// Toggle adds id when absent and removes it when present.
func (s *Selection) Toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

// Has reports raw membership, without reconciliation.
func (s *Selection) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// SelectAllVisible replaces the tracked set with exactly ids. Prior
// selections outside ids are dropped, not unioned.
func (s *Selection) SelectAllVisible(ids []string) {
	s.ids = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

// DeselectAll empties the tracked set.
func (s *Selection) DeselectAll() {
	s.ids = make(map[string]struct{})
}

// Remove drops the given ids from the tracked set. Called as part of the
// same transition that removes the records from the store.
func (s *Selection) Remove(ids ...string) {
	for _, id := range ids {
		delete(s.ids, id)
	}
}

// AllVisibleSelected reports whether visible is non-empty and every member
// is tracked.
func (s *Selection) AllVisibleSelected(visible []string) bool {
	if len(visible) == 0 {
		return false
	}
	for _, id := range visible {
		if _, ok := s.ids[id]; !ok {
			return false
		}
	}
	return true
}

// Selected returns the tracked ids that are present in viewIDs, in view
// order. Members no longer in the view are not reported.
func (s *Selection) Selected(viewIDs []string) []string {
	out := make([]string, 0, len(s.ids))
	for _, id := range viewIDs {
		if _, ok := s.ids[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
