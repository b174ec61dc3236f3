package schema

// Participants is the slim 13-field schema for event participant rosters.
// Name and Surname are the identity fields: a row where both are blank is
// treated as a blank row and dropped during import.
func Participants() Schema {
	return Schema{
		Name: "participants",
		Fields: []Field{
			{Name: "name", Label: "Name", Kind: KindText, Required: true, Identity: true,
				Aliases: []string{"Name", "First Name", "FirstName", "Given Name"}},
			{Name: "surname", Label: "Surname", Kind: KindText, Required: true, Identity: true,
				Aliases: []string{"Surname", "Last Name", "LastName", "Family Name"}},
			{Name: "email", Label: "Email", Kind: KindText, Required: true,
				Aliases: []string{"Email", "Email Address", "EmailAddress", "E-mail"}},
			{Name: "phone", Label: "Phone", Kind: KindText,
				Aliases: []string{"Phone", "Phone Number", "Mobile", "Telephone"}},
			{Name: "company", Label: "Company", Kind: KindText,
				Aliases: []string{"Company", "Organization", "Organisation", "Employer"}},
			{Name: "position", Label: "Position", Kind: KindText,
				Aliases: []string{"Position", "Job Title", "Title", "Role"}},
			{Name: "city", Label: "City", Kind: KindText,
				Aliases: []string{"City", "Town"}},
			{Name: "country", Label: "Country", Kind: KindText,
				Aliases: []string{"Country"}},
			{Name: "registered_on", Label: "Registered On", Kind: KindDate,
				Aliases: []string{"Registered On", "Registered", "Registration Date", "Signup Date"}},
			{Name: "attending", Label: "Attending", Kind: KindBool,
				Aliases: []string{"Attending", "Confirmed", "RSVP"}},
			{Name: "guests", Label: "Guests", Kind: KindInt,
				Aliases: []string{"Guests", "Guest Count", "Seats"}},
			{Name: "dietary_notes", Label: "Dietary Notes", Kind: KindText,
				Aliases: []string{"Dietary Notes", "Dietary", "Diet"}},
			{Name: "notes", Label: "Notes", Kind: KindText,
				Aliases: []string{"Notes", "Comments", "Remarks"}},
		},
	}
}
