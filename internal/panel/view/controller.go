package view

import "github.com/Mystogan321/useradmin/internal/users"

// DefaultPerPage matches the reference table size.
const DefaultPerPage = 10

// Controller is the view state machine: it owns the record snapshot, the
// query state, the pagination state and the selection, and keeps the derived
// view consistent whenever any of them changes.
//
// All methods must be called from the single event-processing goroutine;
// the controller does no locking of its own.
type Controller struct {
	records []users.PublicUser
	view    []users.PublicUser

	query     QueryState
	page      int
	perPage   int
	selection *Selection
}

func NewController(perPage int) *Controller {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	return &Controller{
		query:     QueryState{SortField: SortByName, SortDir: Ascending},
		page:      1,
		perPage:   perPage,
		selection: NewSelection(),
	}
}

// recompute refreshes the derived view and clamps the current page into
// [1, TotalPages].
func (c *Controller) recompute() {
	c.view = Query(c.records, c.query)
	if total := c.TotalPages(); c.page > total {
		c.page = total
	}
	if c.page < 1 {
		c.page = 1
	}
}

// SetRecords replaces the snapshot, e.g. after a refresh from the backend.
func (c *Controller) SetRecords(records []users.PublicUser) {
	c.records = records
	c.recompute()
}

// --- query state -----------------------------------------------------------

// SetSearch updates the search term and resets to the first page.
func (c *Controller) SetSearch(term string) {
	c.query.Search = term
	c.page = 1
	c.recompute()
}

// SetRoleFilter updates the role filter and resets to the first page.
// An empty role clears the filter.
func (c *Controller) SetRoleFilter(role users.Role) {
	c.query.Role = role
	c.page = 1
	c.recompute()
}

// SetSortField sorts by the named field. Selecting the active field flips
// the direction; a new field starts ascending. Unknown field names are
// rejected and leave the state untouched.
func (c *Controller) SetSortField(name string) bool {
	field, ok := ParseSortField(name)
	if !ok {
		return false
	}

	if c.query.SortField == field {
		if c.query.SortDir == Ascending {
			c.query.SortDir = Descending
		} else {
			c.query.SortDir = Ascending
		}
	} else {
		c.query.SortField = field
		c.query.SortDir = Ascending
	}
	c.page = 1
	c.recompute()
	return true
}

func (c *Controller) Query() QueryState {
	return c.query
}

// --- pagination state ------------------------------------------------------

// SetPage moves to the given page, clamped into [1, TotalPages].
func (c *Controller) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	if total := c.TotalPages(); page > total {
		page = total
	}
	c.page = page
}

// SetPerPage changes the page size and resets to the first page. Sizes
// below one are ignored.
func (c *Controller) SetPerPage(n int) {
	if n < 1 {
		return
	}
	c.perPage = n
	c.page = 1
}

func (c *Controller) Page() int {
	return c.page
}

func (c *Controller) PerPage() int {
	return c.perPage
}

func (c *Controller) TotalPages() int {
	return TotalPages(len(c.view), c.perPage)
}

// --- derived views ---------------------------------------------------------

// View returns the full queried (filtered+sorted) view.
func (c *Controller) View() []users.PublicUser {
	return c.view
}

// VisibleRows returns the current page of the queried view.
func (c *Controller) VisibleRows() []users.PublicUser {
	return Page(c.view, c.page, c.perPage)
}

func (c *Controller) visibleIDs() []string {
	rows := c.VisibleRows()
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	return ids
}

func (c *Controller) viewIDs() []string {
	ids := make([]string, 0, len(c.view))
	for _, r := range c.view {
		ids = append(ids, r.ID)
	}
	return ids
}

// --- selection -------------------------------------------------------------

// ToggleSelect flips the selection state of a single row.
func (c *Controller) ToggleSelect(id string) {
	c.selection.Toggle(id)
}

// SetAllVisibleSelected selects exactly the rows of the current page, or
// clears the selection entirely.
func (c *Controller) SetAllVisibleSelected(selected bool) {
	if selected {
		c.selection.SelectAllVisible(c.visibleIDs())
		return
	}
	c.selection.DeselectAll()
}

// AllVisibleSelected reports whether every row of the current page is
// selected. False for an empty page.
func (c *Controller) AllVisibleSelected() bool {
	return c.selection.AllVisibleSelected(c.visibleIDs())
}

// SelectedIDs returns the selected identifiers reconciled against the
// current queried view: ids that fell out of the view are not reported.
func (c *Controller) SelectedIDs() []string {
	return c.selection.Selected(c.viewIDs())
}

// IsSelected reports raw selection membership for rendering checkboxes.
func (c *Controller) IsSelected(id string) bool {
	return c.selection.Has(id)
}

// --- confirmed mutations ---------------------------------------------------
//
// The Apply methods fold a backend-confirmed mutation into the snapshot.
// Each is a single transition: the record change, the selection fix-up and
// the view recompute happen before the method returns.

// ApplyCreate appends a confirmed new record.
func (c *Controller) ApplyCreate(u users.PublicUser) {
	c.records = append(c.records, u)
	c.recompute()
}

// ApplyUpdate replaces the record with the same id.
func (c *Controller) ApplyUpdate(u users.PublicUser) {
	for i := range c.records {
		if c.records[i].ID == u.ID {
			c.records[i] = u
			break
		}
	}
	c.recompute()
}

// ApplyDelete removes the record and drops its id from the selection in the
// same transition.
func (c *Controller) ApplyDelete(id string) {
	kept := make([]users.PublicUser, 0, len(c.records))
	for _, u := range c.records {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	c.records = kept
	c.selection.Remove(id)
	c.recompute()
}

// ApplyDeleteMany removes all listed records and clears the selection
// entirely in the same transition.
func (c *Controller) ApplyDeleteMany(ids []string) {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	kept := make([]users.PublicUser, 0, len(c.records))
	for _, u := range c.records {
		if _, ok := drop[u.ID]; !ok {
			kept = append(kept, u)
		}
	}
	c.records = kept
	c.selection.DeselectAll()
	c.recompute()
}
