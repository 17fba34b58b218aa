package dto

// Dashboard is the role-tagged view model built once at the composition
// root. Exactly one of the three concrete variants is produced per
// session; consumers switch on the concrete type, not on a role string.
type Dashboard interface {
	DashboardRole() string
}

type PatientDashboard struct {
	User                 UserResponse
	UpcomingAppointments []AppointmentResponse
	Appointments         []AppointmentResponse
	Prescriptions        []PrescriptionResponse
	RecentNotifications  []NotificationResponse
	DoctorsVisited       int
	UnreadNotifications  int
}

func (*PatientDashboard) DashboardRole() string { return "patient" }

type DoctorDashboard struct {
	User                 UserResponse
	TodayAppointments    []AppointmentResponse
	PendingAppointments  []AppointmentResponse
	WeeklyAvailability   []AvailabilityRuleResponse
	RecentReviews        []ReviewResponse
	PrescriptionsWritten int
	UnreadNotifications  int
}

func (*DoctorDashboard) DashboardRole() string { return "doctor" }

type AdminDashboard struct {
	User           UserResponse
	PendingDoctors []DoctorResponse
	Stats          SystemStats
}

func (*AdminDashboard) DashboardRole() string { return "admin" }

type SystemStats struct {
	TotalDoctors        int
	ApprovedDoctors     int
	PendingDoctors      int
	TotalPatients       int
	TotalAppointments   int
	PendingAppointments int
	TotalDepartments    int
	DepartmentLoads     []DepartmentLoad
}

// DepartmentLoad is one bar of the admin department-distribution chart.
type DepartmentLoad struct {
	Name    string
	Doctors int
	Share   float64 // 0..100, share of all doctors
}
