package schedule

// Section is one meeting of a course offering: a single day plus a
// single time range. A SIIAU offering (one NRC) that meets on several
// days is expanded into one Section per day by the caller before it
// reaches this package; the NRC is therefore unique per offering, not
// per Section.
//
// Only Day and Range take part in overlap decisions. Everything else
// is display metadata carried through untouched.
type Section struct {
	NRC        string
	Subject    string
	Building   string
	Room       string
	Instructor string
	Day        Day
	Range      TimeRange
}

// Label names the section in user-facing text.
func (s Section) Label() string {
	if s.Subject == "" {
		return "NRC " + s.NRC
	}
	return s.Subject + " (NRC " + s.NRC + ")"
}
