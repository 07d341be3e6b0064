package services

import (
	"context"
	"time"

	"github.com/terraincognita07/fertilitrack/internal/models"
	"gorm.io/gorm"
)

func mustDay(raw string) time.Time {
	parsed, err := ParseDay(raw)
	if err != nil {
		panic(err)
	}
	return parsed
}

func floatPtr(value float64) *float64 {
	return &value
}

type stubUserRepo struct {
	users  map[uint]models.User
	nextID uint
}

func newStubUserRepo(users ...models.User) *stubUserRepo {
	repo := &stubUserRepo{users: make(map[uint]models.User), nextID: 1}
	for _, user := range users {
		repo.users[user.ID] = user
		if user.ID >= repo.nextID {
			repo.nextID = user.ID + 1
		}
	}
	return repo
}

func (stub *stubUserRepo) ExistsByNormalizedEmail(_ context.Context, email string) (bool, error) {
	_, err := stub.FindByNormalizedEmail(context.Background(), email)
	return err == nil, nil
}

func (stub *stubUserRepo) FindByNormalizedEmail(_ context.Context, email string) (models.User, error) {
	for _, user := range stub.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (stub *stubUserRepo) FindByID(_ context.Context, userID uint) (models.User, error) {
	user, ok := stub.users[userID]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (stub *stubUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = stub.nextID
	stub.nextID++
	stub.users[user.ID] = *user
	return nil
}

func (stub *stubUserRepo) UpdatePasswordHash(_ context.Context, userID uint, passwordHash string) error {
	user, ok := stub.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.PasswordHash = passwordHash
	stub.users[userID] = user
	return nil
}

type stubCycleRepo struct {
	cycles []models.CycleRecord
	saved  []models.CycleRecord
}

func (stub *stubCycleRepo) ListRecent(_ context.Context, userID uint, limit int) ([]models.CycleRecord, error) {
	recent := make([]models.CycleRecord, 0, limit)
	for index := len(stub.cycles) - 1; index >= 0 && len(recent) < limit; index-- {
		if stub.cycles[index].UserID == userID {
			recent = append(recent, stub.cycles[index])
		}
	}
	return recent, nil
}

func (stub *stubCycleRepo) ListByUser(_ context.Context, userID uint) ([]models.CycleRecord, error) {
	cycles := make([]models.CycleRecord, 0, len(stub.cycles))
	for _, cycle := range stub.cycles {
		if cycle.UserID == userID {
			cycles = append(cycles, cycle)
		}
	}
	return cycles, nil
}

func (stub *stubCycleRepo) FindByID(_ context.Context, userID uint, cycleID uint) (models.CycleRecord, error) {
	for _, cycle := range stub.cycles {
		if cycle.UserID == userID && cycle.ID == cycleID {
			return cycle, nil
		}
	}
	return models.CycleRecord{}, gorm.ErrRecordNotFound
}

func (stub *stubCycleRepo) Create(_ context.Context, cycle *models.CycleRecord) error {
	cycle.ID = uint(len(stub.cycles) + 1)
	stub.cycles = append(stub.cycles, *cycle)
	return nil
}

func (stub *stubCycleRepo) Save(_ context.Context, cycle *models.CycleRecord) error {
	stub.saved = append(stub.saved, *cycle)
	return nil
}

type stubPartnerRepo struct {
	links           []models.PartnerLink
	pendingOverride *models.PartnerLink
}

func (stub *stubPartnerRepo) Create(_ context.Context, link *models.PartnerLink) error {
	link.ID = uint(len(stub.links) + 1)
	stub.links = append(stub.links, *link)
	return nil
}

func (stub *stubPartnerRepo) FindPendingByInviteCode(_ context.Context, code string) (models.PartnerLink, error) {
	if stub.pendingOverride != nil {
		return *stub.pendingOverride, nil
	}
	for _, link := range stub.links {
		if link.InviteCode == code && link.Status == models.PartnerLinkPending {
			return link, nil
		}
	}
	return models.PartnerLink{}, gorm.ErrRecordNotFound
}

func (stub *stubPartnerRepo) Accept(_ context.Context, linkID uint, partnerID uint, acceptedAt time.Time) error {
	for index := range stub.links {
		if stub.links[index].ID == linkID && stub.links[index].Status == models.PartnerLinkPending {
			stub.links[index].PartnerID = &partnerID
			stub.links[index].Status = models.PartnerLinkAccepted
			stub.links[index].AcceptedAt = &acceptedAt
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (stub *stubPartnerRepo) FindAcceptedForUser(_ context.Context, userID uint) (models.PartnerLink, bool, error) {
	for _, link := range stub.links {
		if _, ok := link.CounterpartOf(userID); ok {
			return link, true, nil
		}
	}
	return models.PartnerLink{}, false, nil
}

type stubAppointmentRepo struct {
	appointments []models.Appointment
}

func (stub *stubAppointmentRepo) Create(_ context.Context, appointment *models.Appointment) error {
	appointment.ID = uint(len(stub.appointments) + 1)
	stub.appointments = append(stub.appointments, *appointment)
	return nil
}

func (stub *stubAppointmentRepo) ListByOwnerRange(_ context.Context, ownerID uint, from time.Time, to time.Time) ([]models.Appointment, error) {
	return stub.filter(ownerID, from, to, false), nil
}

func (stub *stubAppointmentRepo) ListSharedByOwnerRange(_ context.Context, ownerID uint, from time.Time, to time.Time) ([]models.Appointment, error) {
	return stub.filter(ownerID, from, to, true), nil
}

func (stub *stubAppointmentRepo) filter(ownerID uint, from time.Time, to time.Time, sharedOnly bool) []models.Appointment {
	matched := make([]models.Appointment, 0)
	for _, appointment := range stub.appointments {
		if appointment.OwnerID != ownerID || appointment.Date.Before(from) || appointment.Date.After(to) {
			continue
		}
		if sharedOnly && !appointment.IsShared {
			continue
		}
		matched = append(matched, appointment)
	}
	return matched
}
