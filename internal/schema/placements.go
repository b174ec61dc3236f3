package schema

// Placements is the rich 25-field schema for placement records. It carries a
// legacy serial-number column ("No") from older exports; the importer ignores
// it for identity and always assigns identifiers itself.
func Placements() Schema {
	return Schema{
		Name: "placements",
		Fields: []Field{
			{Name: "serial_no", Label: "No", Kind: KindInt,
				Aliases: []string{"No", "No.", "Serial", "Serial No", "#"}},
			{Name: "name", Label: "Name", Kind: KindText, Required: true, Identity: true,
				Aliases: []string{"Name", "First Name", "FirstName"}},
			{Name: "surname", Label: "Surname", Kind: KindText, Required: true, Identity: true,
				Aliases: []string{"Surname", "Last Name", "LastName"}},
			{Name: "email", Label: "Email", Kind: KindText, Required: true,
				Aliases: []string{"Email", "Email Address", "EmailAddress", "E-mail"}},
			{Name: "phone", Label: "Phone", Kind: KindText,
				Aliases: []string{"Phone", "Phone Number", "Mobile"}},
			{Name: "company", Label: "Company", Kind: KindText, Required: true,
				Aliases: []string{"Company", "Employer", "Organization"}},
			{Name: "position", Label: "Position", Kind: KindText,
				Aliases: []string{"Position", "Job Title", "Title"}},
			{Name: "department", Label: "Department", Kind: KindText,
				Aliases: []string{"Department", "Dept", "Team"}},
			{Name: "grade", Label: "Grade", Kind: KindText,
				Aliases: []string{"Grade", "Level", "Band"}},
			{Name: "location", Label: "Location", Kind: KindText,
				Aliases: []string{"Location", "Office", "Site"}},
			{Name: "city", Label: "City", Kind: KindText,
				Aliases: []string{"City", "Town"}},
			{Name: "country", Label: "Country", Kind: KindText,
				Aliases: []string{"Country"}},
			{Name: "status", Label: "Status", Kind: KindText,
				Aliases: []string{"Status", "Stage"}},
			{Name: "source", Label: "Source", Kind: KindText,
				Aliases: []string{"Source", "Channel", "Referral Source"}},
			{Name: "recruiter", Label: "Recruiter", Kind: KindText,
				Aliases: []string{"Recruiter", "Agent", "Consultant"}},
			{Name: "mentor", Label: "Mentor", Kind: KindText,
				Aliases: []string{"Mentor", "Buddy", "Supervisor"}},
			{Name: "interview_date", Label: "Interview Date", Kind: KindDate,
				Aliases: []string{"Interview Date", "Interviewed", "Interview"}},
			{Name: "offer_date", Label: "Offer Date", Kind: KindDate,
				Aliases: []string{"Offer Date", "Offered", "Offer"}},
			{Name: "start_date", Label: "Start Date", Kind: KindDate,
				Aliases: []string{"Start Date", "Start", "Commencement Date"}},
			{Name: "end_date", Label: "End Date", Kind: KindDate,
				Aliases: []string{"End Date", "End", "Completion Date"}},
			{Name: "accepted", Label: "Accepted", Kind: KindBool,
				Aliases: []string{"Accepted", "Offer Accepted", "Signed"}},
			{Name: "remote", Label: "Remote", Kind: KindBool,
				Aliases: []string{"Remote", "Remote Work", "WFH"}},
			{Name: "contract_months", Label: "Contract Months", Kind: KindInt,
				Aliases: []string{"Contract Months", "Term", "Term In Months"}},
			{Name: "salary_band", Label: "Salary Band", Kind: KindInt,
				Aliases: []string{"Salary Band", "Band No", "Pay Band"}},
			{Name: "notes", Label: "Notes", Kind: KindText,
				Aliases: []string{"Notes", "Comments", "Remarks"}},
		},
	}
}
