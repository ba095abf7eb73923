package event

// Event is a scheduled happening at the park. Dates are kept as the opaque
// strings they were entered as. Names carry no uniqueness rule; two events
// may share a name.
type Event struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Identity folds every field in: two events are the same record only when
// they match exactly. That keeps repeat saves of one event from
// duplicating it while still allowing same-named events on other dates.
func (e Event) Identity() string {
	return e.Name + "\x1f" + e.StartDate + "\x1f" + e.EndDate
}
