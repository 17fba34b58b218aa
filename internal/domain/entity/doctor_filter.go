package entity

// DoctorFilter is a domain-level filter for the doctor directory.
// Used by the directory usecase to avoid coupling with delivery DTOs.
type DoctorFilter struct {
	Query          string // free-text match on name, specialization or department
	Department     string // exact department name
	Specialization string // exact specialization name
}

// Empty reports whether no criteria are set.
func (f *DoctorFilter) Empty() bool {
	return f.Query == "" && f.Department == "" && f.Specialization == ""
}
