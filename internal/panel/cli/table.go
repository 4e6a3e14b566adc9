package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Mystogan321/useradmin/internal/panel/view"
	"github.com/Mystogan321/useradmin/internal/users"
)

// renderTable writes the current page of the view as an aligned text table,
// with a selection marker in the first column and a footer showing the page
// position.
func renderTable(w io.Writer, v *view.Controller) {
	rows := v.VisibleRows()
	if len(rows) == 0 {
		fmt.Fprintln(w, "No users match the current view.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, " \tID\tNAME\tEMAIL\tROLE\tDOB\tGENDER\tSTATUS")
	for _, u := range rows {
		marker := " "
		if v.IsSelected(u.ID) {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			marker, u.ID, u.Name, u.Email, u.Role, u.DOB, u.Gender, u.Status)
	}
	tw.Flush()

	fmt.Fprintf(w, "Page %d of %d (%d users", v.Page(), v.TotalPages(), len(v.View()))
	if sel := v.SelectedIDs(); len(sel) > 0 {
		fmt.Fprintf(w, ", %d selected", len(sel))
	}
	fmt.Fprintln(w, ")")
}

// parseRole maps user input to a role. Both the full display name and a
// compact lowercase alias are accepted; empty input clears the filter.
func parseRole(s string) (users.Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", true
	case "admin", "administrator":
		return users.RoleAdmin, true
	case "subadmin", "sub admin":
		return users.RoleSubAdmin, true
	case "customer":
		return users.RoleCustomer, true
	}
	return "", false
}
