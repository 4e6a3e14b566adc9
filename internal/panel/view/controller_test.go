package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mystogan321/useradmin/internal/users"
)

func newSeededController(t *testing.T) *Controller {
	t.Helper()
	c := NewController(10)
	c.SetRecords(seedPublic())
	return c
}

func TestControllerDefaults(t *testing.T) {
	c := NewController(0)

	assert.Equal(t, 1, c.Page())
	assert.Equal(t, DefaultPerPage, c.PerPage())
	assert.Equal(t, SortByName, c.Query().SortField)
	assert.Equal(t, Ascending, c.Query().SortDir)
	assert.Equal(t, 1, c.TotalPages())
	assert.Empty(t, c.VisibleRows())
}

func TestControllerSearchResetsPage(t *testing.T) {
	c := newSeededController(t)
	c.SetPage(2)
	require.Equal(t, 2, c.Page())

	c.SetSearch("jane")
	assert.Equal(t, 1, c.Page())

	rows := c.VisibleRows()
	require.Len(t, rows, 1)
	assert.Equal(t, "4", rows[0].ID)
	assert.Equal(t, 1, c.TotalPages())
}

func TestControllerRoleFilterResetsPage(t *testing.T) {
	c := newSeededController(t)
	c.SetPage(2)

	c.SetRoleFilter(users.RoleAdmin)
	assert.Equal(t, 1, c.Page())
	assert.Len(t, c.View(), 5)

	c.SetRoleFilter("")
	assert.Len(t, c.View(), 20)
}

func TestControllerSortFieldToggle(t *testing.T) {
	c := newSeededController(t)
	c.SetPage(2)

	require.True(t, c.SetSortField("email"))
	assert.Equal(t, SortByEmail, c.Query().SortField)
	assert.Equal(t, Ascending, c.Query().SortDir)
	assert.Equal(t, 1, c.Page())

	// same field again flips direction
	require.True(t, c.SetSortField("email"))
	assert.Equal(t, Descending, c.Query().SortDir)

	// switching fields starts ascending again
	require.True(t, c.SetSortField("dob"))
	assert.Equal(t, SortByDOB, c.Query().SortField)
	assert.Equal(t, Ascending, c.Query().SortDir)
}

func TestControllerSortFieldRejectsUnknown(t *testing.T) {
	c := newSeededController(t)
	before := c.Query()

	assert.False(t, c.SetSortField("password"))
	assert.Equal(t, before, c.Query())
}

func TestControllerSetPageClamps(t *testing.T) {
	c := newSeededController(t)
	require.Equal(t, 2, c.TotalPages())

	c.SetPage(99)
	assert.Equal(t, 2, c.Page())

	c.SetPage(-3)
	assert.Equal(t, 1, c.Page())
}

func TestControllerSetPerPage(t *testing.T) {
	c := newSeededController(t)
	c.SetPage(2)

	c.SetPerPage(5)
	assert.Equal(t, 1, c.Page())
	assert.Equal(t, 4, c.TotalPages())
	assert.Len(t, c.VisibleRows(), 5)

	c.SetPerPage(0)
	assert.Equal(t, 5, c.PerPage(), "invalid size must be ignored")
}

func TestControllerSelectAllVisibleThenSearch(t *testing.T) {
	c := newSeededController(t)

	c.SetSearch("jane")
	c.SetAllVisibleSelected(true)
	assert.True(t, c.AllVisibleSelected())
	assert.Equal(t, []string{"4"}, c.SelectedIDs())

	c.SetAllVisibleSelected(false)
	assert.False(t, c.AllVisibleSelected())
	assert.Empty(t, c.SelectedIDs())

	c.SetAllVisibleSelected(true)
	c.SetSearch("")
	// the selection survives widening the view
	assert.Equal(t, []string{"4"}, c.SelectedIDs())
	assert.False(t, c.AllVisibleSelected())
}

func TestControllerSelectionHiddenByFilterNotReported(t *testing.T) {
	c := newSeededController(t)

	c.ToggleSelect("3")
	c.ToggleSelect("4")
	require.ElementsMatch(t, []string{"3", "4"}, c.SelectedIDs())

	// "3" is inactive; filtering to admins hides both
	c.SetRoleFilter(users.RoleAdmin)
	assert.Empty(t, c.SelectedIDs())

	// clearing the filter brings them back
	c.SetRoleFilter("")
	assert.Equal(t, []string{"3", "4"}, c.SelectedIDs())
}

func TestControllerApplyCreate(t *testing.T) {
	c := newSeededController(t)

	c.ApplyCreate(users.PublicUser{ID: "21", Name: "Zed Newman", Email: "zed@gmail.com", Role: users.RoleCustomer, Status: users.StatusActive})
	assert.Len(t, c.View(), 21)
	assert.Equal(t, 3, c.TotalPages())
}

func TestControllerApplyUpdate(t *testing.T) {
	c := newSeededController(t)

	c.ApplyUpdate(users.PublicUser{ID: "4", Name: "Jane Updated", Email: "janesmith@gmail.com", Role: users.RoleCustomer, Status: users.StatusInactive})

	c.SetSearch("jane updated")
	rows := c.VisibleRows()
	require.Len(t, rows, 1)
	assert.Equal(t, "4", rows[0].ID)
	assert.Equal(t, users.StatusInactive, rows[0].Status)
}

func TestControllerApplyDeleteRemovesSelection(t *testing.T) {
	c := newSeededController(t)
	c.ToggleSelect("4")
	c.ToggleSelect("5")

	c.ApplyDelete("4")
	assert.Len(t, c.View(), 19)
	assert.Equal(t, []string{"5"}, c.SelectedIDs())
	assert.False(t, c.IsSelected("4"))
}

func TestControllerApplyDeleteManyClearsSelection(t *testing.T) {
	c := newSeededController(t)
	c.ToggleSelect("3")
	c.ToggleSelect("7")
	c.ToggleSelect("11")

	c.ApplyDeleteMany([]string{"3", "7", "11"})
	assert.Len(t, c.View(), 17)
	assert.Empty(t, c.SelectedIDs())
	assert.Equal(t, 2, c.TotalPages())
}

func TestControllerPageClampedAfterShrinkingMutation(t *testing.T) {
	c := newSeededController(t)
	c.SetPage(2)

	// delete the whole second page; the current page must fall back to 1
	c.ApplyDeleteMany([]string{"11", "12", "13", "14", "15", "16", "17", "18", "19", "20"})
	assert.Equal(t, 1, c.Page())
	assert.Equal(t, 1, c.TotalPages())
	assert.Len(t, c.VisibleRows(), 10)
}

func TestControllerEmptyViewHasOnePage(t *testing.T) {
	c := newSeededController(t)

	c.SetSearch("no such person")
	assert.Empty(t, c.VisibleRows())
	assert.Equal(t, 1, c.TotalPages())
	assert.Equal(t, 1, c.Page())
	assert.False(t, c.AllVisibleSelected())
}
