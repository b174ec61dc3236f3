// Package datasets registers the deployment's dataset definitions.
// Import it for side effects from main:
//
//	import _ "github.com/rosterdesk/rosterdesk/internal/core/datasets"
package datasets

import (
	"github.com/rosterdesk/rosterdesk/internal/core"
	"github.com/rosterdesk/rosterdesk/internal/schema"
)

func init() {
	registerParticipants()
	registerPlacements()
}

func registerParticipants() {
	core.Register(core.Definition{
		Info: core.Info{
			Key:   "participants",
			Group: "Events",
			Label: "Participants",
		},
		Schema: schema.Participants(),
		Examples: [][]string{
			{"John", "Doe", "john.doe@example.com", "+1 555 0100", "Acme Corp", "Engineer",
				"Springfield", "USA", "1/15/2026", "Y", "1", "Vegetarian", ""},
			{"Jane", "Roe", "jane.roe@example.com", "", "Globex", "Manager",
				"Shelbyville", "USA", "2/1/2026", "N", "0", "", "Arriving late"},
		},
		Notes: []string{
			"First row must keep these column headers.",
			"Name, Surname and Email are required for every row.",
			"Attending accepts Y/N, Yes/No, True/False or 1/0.",
			"Dates accept 1/15/2026, 2026-01-15 and similar formats.",
		},
	})
}

func registerPlacements() {
	core.Register(core.Definition{
		Info: core.Info{
			Key:   "placements",
			Group: "Recruiting",
			Label: "Placements",
		},
		Schema: schema.Placements(),
		Examples: [][]string{
			{"1", "John", "Doe", "john.doe@example.com", "+1 555 0100", "Acme Corp",
				"Engineer", "Platform", "B2", "HQ", "Springfield", "USA", "Placed",
				"Referral", "A. Smith", "B. Jones", "3/1/2026", "3/10/2026", "4/1/2026",
				"9/30/2026", "Y", "N", "6", "4", ""},
		},
		Notes: []string{
			"First row must keep these column headers.",
			"Name, Surname, Email and Company are required for every row.",
			"The No column is informational; record numbers are assigned on import.",
		},
	})
}
