package users

// Seed returns the default dataset used to populate an empty store on first
// run. The identifiers are stable; parts of the panel test-suite and the
// default admin login depend on them.
func Seed() []User {
	return []User{
		{ID: "1", Name: "Administrator", Email: "admin@gmail.com", Role: RoleAdmin, DOB: "1980-01-01", Gender: GenderMale, Status: StatusActive, Password: "admin123"},
		{ID: "2", Name: "Sub Admin", Email: "subadmin@gmail.com", Role: RoleSubAdmin, DOB: "1985-05-15", Gender: GenderFemale, Status: StatusActive, Password: "subadmin123"},
		{ID: "3", Name: "John Doe", Email: "johndoe@gmail.com", Role: RoleCustomer, DOB: "1992-10-10", Gender: GenderMale, Status: StatusInactive, Password: "customer123"},
		{ID: "4", Name: "Jane Smith", Email: "janesmith@gmail.com", Role: RoleCustomer, DOB: "1995-08-25", Gender: GenderFemale, Status: StatusActive, Password: "password123"},
		{ID: "5", Name: "Robert Brown", Email: "robertbrown@gmail.com", Role: RoleAdmin, DOB: "1978-02-17", Gender: GenderMale, Status: StatusActive, Password: "adminpass"},
		{ID: "6", Name: "Emily Davis", Email: "emilydavis@gmail.com", Role: RoleSubAdmin, DOB: "1989-11-03", Gender: GenderFemale, Status: StatusActive, Password: "subpass"},
		{ID: "7", Name: "Michael Johnson", Email: "michaelj@gmail.com", Role: RoleCustomer, DOB: "1997-06-30", Gender: GenderMale, Status: StatusInactive, Password: "customerpass"},
		{ID: "8", Name: "Sophia White", Email: "sophiaw@gmail.com", Role: RoleCustomer, DOB: "1993-04-12", Gender: GenderFemale, Status: StatusActive, Password: "sophiapass"},
		{ID: "9", Name: "Daniel Miller", Email: "danielm@gmail.com", Role: RoleAdmin, DOB: "1982-12-05", Gender: GenderMale, Status: StatusActive, Password: "danielpass"},
		{ID: "10", Name: "Olivia Taylor", Email: "oliviat@gmail.com", Role: RoleSubAdmin, DOB: "1990-09-21", Gender: GenderFemale, Status: StatusActive, Password: "oliviapass"},
		{ID: "11", Name: "Ethan Wilson", Email: "ethanw@gmail.com", Role: RoleCustomer, DOB: "1998-07-08", Gender: GenderMale, Status: StatusInactive, Password: "ethanpass"},
		{ID: "12", Name: "Ava Moore", Email: "avam@gmail.com", Role: RoleCustomer, DOB: "1996-03-14", Gender: GenderFemale, Status: StatusActive, Password: "avapass"},
		{ID: "13", Name: "Liam Anderson", Email: "liama@gmail.com", Role: RoleAdmin, DOB: "1987-05-29", Gender: GenderMale, Status: StatusActive, Password: "liampass"},
		{ID: "14", Name: "Mia Thomas", Email: "miat@gmail.com", Role: RoleSubAdmin, DOB: "1991-10-31", Gender: GenderFemale, Status: StatusActive, Password: "miapass"},
		{ID: "15", Name: "William Martinez", Email: "williamm@gmail.com", Role: RoleCustomer, DOB: "1999-01-07", Gender: GenderMale, Status: StatusInactive, Password: "williampass"},
		{ID: "16", Name: "Charlotte Jackson", Email: "charlottej@gmail.com", Role: RoleCustomer, DOB: "1994-06-22", Gender: GenderFemale, Status: StatusActive, Password: "charlottepass"},
		{ID: "17", Name: "Benjamin Harris", Email: "benjaminh@gmail.com", Role: RoleAdmin, DOB: "1984-08-15", Gender: GenderMale, Status: StatusActive, Password: "benjaminpass"},
		{ID: "18", Name: "Ella Clark", Email: "ellac@gmail.com", Role: RoleSubAdmin, DOB: "1992-02-28", Gender: GenderFemale, Status: StatusActive, Password: "ellapass"},
		{ID: "19", Name: "James Lewis", Email: "jamesl@gmail.com", Role: RoleCustomer, DOB: "2000-11-09", Gender: GenderMale, Status: StatusInactive, Password: "jamespass"},
		{ID: "20", Name: "Amelia Walker", Email: "ameliaw@gmail.com", Role: RoleCustomer, DOB: "1997-09-18", Gender: GenderFemale, Status: StatusActive, Password: "ameliapass"},
	}
}
