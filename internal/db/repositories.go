package db

import "gorm.io/gorm"

type Repositories struct {
	Users        *UserRepository
	Partners     *PartnerRepository
	Cycles       *CycleRepository
	Observations *ObservationRepository
	Content      *ContentRepository
	Appointments *AppointmentRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(database),
		Partners:     NewPartnerRepository(database),
		Cycles:       NewCycleRepository(database),
		Observations: NewObservationRepository(database),
		Content:      NewContentRepository(database),
		Appointments: NewAppointmentRepository(database),
	}
}
