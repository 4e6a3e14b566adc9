package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mystogan321/useradmin/internal/users"
)

func TestWriteCSV(t *testing.T) {
	records := []users.PublicUser{
		{ID: "4", Name: "Jane Smith", Email: "janesmith@gmail.com", Role: users.RoleCustomer, DOB: "1995-08-25", Gender: users.GenderFemale, Status: users.StatusActive},
		{ID: "3", Name: "John Doe", Email: "johndoe@gmail.com", Role: users.RoleCustomer, DOB: "1992-10-10", Gender: users.GenderMale, Status: users.StatusInactive},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"id", "name", "email", "role", "dob", "gender", "status"}, rows[0])
	assert.Equal(t, []string{"4", "Jane Smith", "janesmith@gmail.com", "Customer", "1995-08-25", "Female", "Active"}, rows[1])
	assert.Equal(t, []string{"3", "John Doe", "johndoe@gmail.com", "Customer", "1992-10-10", "Male", "Inactive"}, rows[2])
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "id,name,email,role,dob,gender,status\n", buf.String())
}

func TestWriteCSVQuotesCommas(t *testing.T) {
	records := []users.PublicUser{
		{ID: "1", Name: "Doe, John", Email: "j@x.com", Role: users.RoleAdmin, Status: users.StatusActive},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))
	assert.True(t, strings.Contains(buf.String(), `"Doe, John"`))
}
