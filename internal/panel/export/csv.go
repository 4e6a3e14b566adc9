// Package export renders user records to CSV, in the column order of the
// panel table.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/Mystogan321/useradmin/internal/users"
)

var header = []string{"id", "name", "email", "role", "dob", "gender", "status"}

// WriteCSV writes the records as CSV, header row first. The caller decides
// which records to pass: exporting the current view or a single page is a
// matter of handing over the right slice.
func WriteCSV(w io.Writer, records []users.PublicUser) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, u := range records {
		row := []string{u.ID, u.Name, u.Email, string(u.Role), u.DOB, string(u.Gender), string(u.Status)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
