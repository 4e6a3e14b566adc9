package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Mystogan321/useradmin/internal/common"
	"github.com/Mystogan321/useradmin/internal/panel/export"
	"github.com/Mystogan321/useradmin/internal/users"
)

func (a *App) List(ctx context.Context) error {
	renderTable(os.Stdout, a.view)
	return nil
}

// Search sets (or with an empty term clears) the search filter.
func (a *App) Search(ctx context.Context, term string) error {
	a.view.SetSearch(term)
	return a.List(ctx)
}

// Role sets (or with an empty argument clears) the role filter.
func (a *App) Role(ctx context.Context, arg string) error {
	role, ok := parseRole(arg)
	if !ok {
		printlnFn("Unknown role:", arg, "(use admin, subadmin or customer)")
		return nil
	}
	a.view.SetRoleFilter(role)
	return a.List(ctx)
}

// Sort orders the view by the named column, flipping direction on repeat.
func (a *App) Sort(ctx context.Context, field string) error {
	if !a.view.SetSortField(field) {
		printlnFn("Unknown sort field:", field)
		return nil
	}
	q := a.view.Query()
	printlnFn(fmt.Sprintf("Sorting by %s (%s)", q.SortField, q.SortDir))
	return a.List(ctx)
}

func (a *App) Page(ctx context.Context, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		printlnFn("Usage: page <n>")
		return nil
	}
	a.view.SetPage(n)
	return a.List(ctx)
}

func (a *App) PageSize(ctx context.Context, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		printlnFn("Usage: pagesize <n>")
		return nil
	}
	a.view.SetPerPage(n)
	return a.List(ctx)
}

func (a *App) Select(ctx context.Context, id string) error {
	a.view.ToggleSelect(id)
	return a.List(ctx)
}

func (a *App) SelectAll(ctx context.Context) error {
	a.view.SetAllVisibleSelected(!a.view.AllVisibleSelected())
	return a.List(ctx)
}

func (a *App) ClearSelection(ctx context.Context) error {
	a.view.SetAllVisibleSelected(false)
	return a.List(ctx)
}

// promptInput collects the fields of a user record interactively. When
// updating, current holds the existing record and blank answers keep the
// stored value.
func (a *App) promptInput(current *users.PublicUser) (users.Input, error) {
	var in users.Input

	hint := ""
	if current != nil {
		hint = " (leave blank to keep current)"
	}

	name, err := getSimpleText(a.reader, "Name"+hint, os.Stdout)
	if err != nil {
		return in, err
	}
	email, err := getSimpleText(a.reader, "Email"+hint, os.Stdout)
	if err != nil {
		return in, err
	}
	roleStr, err := getSimpleText(a.reader, "Role (admin, subadmin, customer)"+hint, os.Stdout)
	if err != nil {
		return in, err
	}
	dob, err := getSimpleText(a.reader, "Date of birth (YYYY-MM-DD, optional)"+hint, os.Stdout)
	if err != nil {
		return in, err
	}
	genderStr, err := getSimpleText(a.reader, "Gender (Male, Female, Other, optional)"+hint, os.Stdout)
	if err != nil {
		return in, err
	}
	statusStr, err := getSimpleText(a.reader, "Status (Active, Inactive)"+hint, os.Stdout)
	if err != nil {
		return in, err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return in, err
	}
	defer common.WipeByteArray(password)

	in = users.Input{
		Name:     name,
		Email:    email,
		DOB:      dob,
		Gender:   users.Gender(strings.TrimSpace(genderStr)),
		Status:   users.Status(strings.TrimSpace(statusStr)),
		Password: string(password),
	}
	if role, ok := parseRole(roleStr); ok {
		in.Role = role
	}

	if current != nil {
		if in.Name == "" {
			in.Name = current.Name
		}
		if in.Email == "" {
			in.Email = current.Email
		}
		if in.Role == "" {
			in.Role = current.Role
		}
		if in.DOB == "" {
			in.DOB = current.DOB
		}
		if in.Gender == "" {
			in.Gender = current.Gender
		}
		if in.Status == "" {
			in.Status = current.Status
		}
	}
	return in, nil
}

// confirm asks a yes/no question; anything but "y"/"yes" declines.
func (a *App) confirm(prompt string) bool {
	answer, err := getSimpleText(a.reader, prompt+" [y/N]", os.Stdout)
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	}
	return false
}

func (a *App) Create(ctx context.Context) error {
	in, err := a.promptInput(nil)
	if err != nil {
		return err
	}

	created, err := a.coord.Create(ctx, in)
	if err != nil {
		printlnFn("Create failed:", err.Error())
		return err
	}
	printlnFn("Created user", created.ID)
	return a.List(ctx)
}

func (a *App) Update(ctx context.Context, id string) error {
	current, err := a.client.GetUser(ctx, id)
	if err != nil {
		printlnFn("Cannot load user:", err.Error())
		return err
	}

	in, err := a.promptInput(&current)
	if err != nil {
		return err
	}

	if _, err := a.coord.Update(ctx, id, in); err != nil {
		printlnFn("Update failed:", err.Error())
		return err
	}
	printlnFn("Updated user", id)
	return a.List(ctx)
}

func (a *App) Delete(ctx context.Context, id string) error {
	if !a.confirm("Delete user " + id + "?") {
		printlnFn("Cancelled.")
		return nil
	}

	if err := a.coord.Delete(ctx, id); err != nil {
		printlnFn("Delete failed:", err.Error())
		return err
	}
	printlnFn("Deleted user", id)
	return a.List(ctx)
}

func (a *App) DeleteSelected(ctx context.Context) error {
	ids := a.view.SelectedIDs()
	if len(ids) == 0 {
		printlnFn("Nothing selected.")
		return nil
	}
	if !a.confirm(fmt.Sprintf("Delete %d selected users?", len(ids))) {
		printlnFn("Cancelled.")
		return nil
	}

	if err := a.coord.DeleteMany(ctx, ids); err != nil {
		printlnFn("Delete failed:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Deleted %d users", len(ids)))
	return a.List(ctx)
}

// Export writes the current view (all pages, filters and sort applied) to a
// CSV file.
func (a *App) Export(ctx context.Context, path string) error {
	f, err := os.Create(path)
	if err != nil {
		printlnFn("Export failed:", err.Error())
		return err
	}
	defer f.Close()

	if err := export.WriteCSV(f, a.view.View()); err != nil {
		printlnFn("Export failed:", err.Error())
		return err
	}
	printlnFn("Exported", len(a.view.View()), "users to", path)
	return nil
}
