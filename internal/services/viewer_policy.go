package services

import "github.com/terraincognita07/fertilitrack/internal/models"

func IsOwnerUser(user *models.User) bool {
	return user != nil && user.Role == models.RoleOwner
}

func IsPartnerUser(user *models.User) bool {
	return user != nil && user.Role == models.RolePartner
}

// SanitizeAppointmentForPartner strips the free-text fields a partner should not see.
func SanitizeAppointmentForPartner(appointment models.Appointment) models.Appointment {
	appointment.Notes = ""
	return appointment
}

func SanitizeAppointmentsForPartner(appointments []models.Appointment) []models.Appointment {
	sanitized := make([]models.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		sanitized = append(sanitized, SanitizeAppointmentForPartner(appointment))
	}
	return sanitized
}
