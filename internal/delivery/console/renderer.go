package console

import (
	"fmt"
	"strings"

	"clinicconnect/internal/delivery/dto"
)

// Renderer turns dashboard view models into plain text for the terminal.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render formats the dashboard variant produced by the composition root.
func (r *Renderer) Render(dashboard dto.Dashboard) string {
	switch d := dashboard.(type) {
	case *dto.PatientDashboard:
		return r.renderPatient(d)
	case *dto.DoctorDashboard:
		return r.renderDoctor(d)
	case *dto.AdminDashboard:
		return r.renderAdmin(d)
	default:
		return ""
	}
}

func (r *Renderer) renderPatient(d *dto.PatientDashboard) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Welcome back, %s!\n\n", d.User.FullName)
	fmt.Fprintf(&b, "Upcoming appointments: %d\n", len(d.UpcomingAppointments))
	fmt.Fprintf(&b, "Active prescriptions:  %d\n", len(d.Prescriptions))
	fmt.Fprintf(&b, "Doctors visited:       %d\n", d.DoctorsVisited)
	fmt.Fprintf(&b, "Unread notifications:  %d\n", d.UnreadNotifications)

	b.WriteString("\nUpcoming appointments\n")
	if len(d.UpcomingAppointments) == 0 {
		b.WriteString("  No upcoming appointments\n")
	}
	for _, a := range d.UpcomingAppointments {
		fmt.Fprintf(&b, "  %s at %s with %s [%s]\n", a.Date, a.Time, a.DoctorName, a.Status)
	}

	b.WriteString("\nRecent prescriptions\n")
	if len(d.Prescriptions) == 0 {
		b.WriteString("  No prescriptions yet\n")
	}
	for _, p := range d.Prescriptions {
		fmt.Fprintf(&b, "  %s, prescribed by %s (%d medication(s))\n", p.Diagnosis, p.DoctorName, p.Medications)
	}

	if len(d.RecentNotifications) > 0 {
		b.WriteString("\nNotifications\n")
		for _, n := range d.RecentNotifications {
			marker := " "
			if !n.IsRead {
				marker = "*"
			}
			fmt.Fprintf(&b, "  %s %s: %s\n", marker, n.Title, n.Message)
		}
	}
	return b.String()
}

func (r *Renderer) renderDoctor(d *dto.DoctorDashboard) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Good day, %s\n\n", d.User.FullName)
	fmt.Fprintf(&b, "Today's appointments:  %d\n", len(d.TodayAppointments))
	fmt.Fprintf(&b, "Pending requests:      %d\n", len(d.PendingAppointments))
	fmt.Fprintf(&b, "Prescriptions written: %d\n", d.PrescriptionsWritten)

	b.WriteString("\nToday's schedule\n")
	if len(d.TodayAppointments) == 0 {
		b.WriteString("  Nothing scheduled today\n")
	}
	for _, a := range d.TodayAppointments {
		fmt.Fprintf(&b, "  %s  %s (%s) [%s]\n", a.Time, a.PatientName, a.Type, a.Status)
	}

	b.WriteString("\nWeekly availability\n")
	for _, rule := range d.WeeklyAvailability {
		if !rule.IsAvailable {
			continue
		}
		fmt.Fprintf(&b, "  %-9s %s-%s\n", rule.Day, rule.StartTime, rule.EndTime)
	}

	if len(d.RecentReviews) > 0 {
		b.WriteString("\nRecent feedback\n")
		for _, review := range d.RecentReviews {
			fmt.Fprintf(&b, "  %d/5 from %s: %s\n", review.Rating, review.Reviewer, review.Comment)
		}
	}
	return b.String()
}

func (r *Renderer) renderAdmin(d *dto.AdminDashboard) string {
	var b strings.Builder
	fmt.Fprintf(&b, "System overview for %s\n\n", d.User.FullName)
	fmt.Fprintf(&b, "Doctors:      %d (%d approved, %d pending)\n",
		d.Stats.TotalDoctors, d.Stats.ApprovedDoctors, d.Stats.PendingDoctors)
	fmt.Fprintf(&b, "Appointments: %d (%d pending)\n", d.Stats.TotalAppointments, d.Stats.PendingAppointments)
	fmt.Fprintf(&b, "Departments:  %d\n", d.Stats.TotalDepartments)

	b.WriteString("\nPending doctor approvals\n")
	if len(d.PendingDoctors) == 0 {
		b.WriteString("  No pending doctor approvals\n")
	}
	for _, doctor := range d.PendingDoctors {
		fmt.Fprintf(&b, "  %s, %s (%s)\n", doctor.FullName, doctor.Department, doctor.LicenseNumber)
	}

	b.WriteString("\nDepartment distribution\n")
	for _, load := range d.Stats.DepartmentLoads {
		fmt.Fprintf(&b, "  %-12s %d doctor(s), %.0f%%\n", load.Name, load.Doctors, load.Share)
	}
	return b.String()
}
