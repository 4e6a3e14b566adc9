// Package view implements the panel's collection view engine: deriving a
// filtered and sorted view from the record snapshot, slicing it into pages,
// and tracking row selection. Everything here is synchronous, single-threaded
// state driven by discrete UI events.
package view

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Mystogan321/useradmin/internal/users"
)

// SortDirection of the active sort.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// SortField names a sortable column. Only fields registered in
// sortAccessors take part in ordering; anything else leaves the view in
// insertion order.
type SortField string

const (
	SortByName   SortField = "name"
	SortByEmail  SortField = "email"
	SortByRole   SortField = "role"
	SortByStatus SortField = "status"
	SortByDOB    SortField = "dob"
	SortByGender SortField = "gender"
)

// sortAccessors maps each sortable field to a typed accessor. The bool
// result reports whether the record has a comparable value; absent optional
// fields compare equal to everything, which keeps the stable order intact.
var sortAccessors = map[SortField]func(u users.PublicUser) (string, bool){
	SortByName:   func(u users.PublicUser) (string, bool) { return u.Name, true },
	SortByEmail:  func(u users.PublicUser) (string, bool) { return u.Email, true },
	SortByRole:   func(u users.PublicUser) (string, bool) { return string(u.Role), true },
	SortByStatus: func(u users.PublicUser) (string, bool) { return string(u.Status), true },
	SortByDOB:    func(u users.PublicUser) (string, bool) { return u.DOB, u.DOB != "" },
	SortByGender: func(u users.PublicUser) (string, bool) { return string(u.Gender), u.Gender != "" },
}

// ParseSortField validates a caller-supplied field name at the boundary.
func ParseSortField(name string) (SortField, bool) {
	f := SortField(strings.ToLower(strings.TrimSpace(name)))
	_, ok := sortAccessors[f]
	return f, ok
}

// QueryState is the transient filter/sort state of the view.
type QueryState struct {
	Search    string
	Role      users.Role // empty means no role filter
	SortField SortField
	SortDir   SortDirection
}

// Query derives the filtered and sorted view of records. The input slice is
// never modified; filtering keeps insertion order and the sort is stable, so
// records comparing equal stay in insertion order too.
func Query(records []users.PublicUser, state QueryState) []users.PublicUser {
	result := make([]users.PublicUser, 0, len(records))

	term := strings.ToLower(state.Search)
	for _, u := range records {
		if term != "" &&
			!strings.Contains(strings.ToLower(u.Name), term) &&
			!strings.Contains(strings.ToLower(u.Email), term) {
			continue
		}
		if state.Role != "" && u.Role != state.Role {
			continue
		}
		result = append(result, u)
	}

	accessor, ok := sortAccessors[state.SortField]
	if !ok {
		return result
	}

	coll := collate.New(language.English)
	sort.SliceStable(result, func(i, j int) bool {
		a, okA := accessor(result[i])
		b, okB := accessor(result[j])
		if !okA || !okB {
			return false // treat as equal, stable sort keeps order
		}
		cmp := coll.CompareString(a, b)
		if state.SortDir == Descending {
			return cmp > 0
		}
		return cmp < 0
	})

	return result
}
