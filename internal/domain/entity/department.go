package entity

// Department groups doctors by medical discipline
type Department struct {
	ID              string
	Name            string
	Description     string
	Specializations []string
}
