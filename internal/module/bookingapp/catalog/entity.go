package catalog

// Type is one of the six fixed ticket kinds sold by the park. The set is
// closed; anything else fails Valid.
type Type string

const (
	SingleDayPass     Type = "SINGLE_DAY_PASS"
	TwoDayPass        Type = "TWO_DAY_PASS"
	AnnualMembership  Type = "ANNUAL_MEMBERSHIP"
	ChildTicket       Type = "CHILD_TICKET"
	GroupTicket       Type = "GROUP_TICKET"
	VIPExperiencePass Type = "VIP_EXPERIENCE_PASS"
)

// Policy is the static sales policy attached to a ticket type. Tickets copy
// these fields at construction; the table is never updated through the
// purchase flow.
type Policy struct {
	Description       string
	Limitations       string
	Validity          string
	DiscountAvailable string
}
