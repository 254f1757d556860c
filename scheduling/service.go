package scheduling

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"clinic-connect/models"

	"github.com/google/uuid"
)

// ValidationResult is the outcome of checking a proposed appointment
// against the doctor's free slots.
type ValidationResult int

const (
	Valid ValidationResult = iota
	DoctorNotFound
	SlotUnavailable
)

// Service computes doctor availability and owns the appointment
// lifecycle. Reads run unsynchronized; writes for a doctor are
// serialized on a per-doctor mutex so two concurrent bookings for the
// same slot cannot both pass validation and both persist.
type Service struct {
	doctors      DoctorDirectory
	appointments AppointmentStore

	mu    sync.Mutex
	locks map[uint]*sync.Mutex

	// now is swappable in tests
	now func() time.Time
}

func NewService(doctors DoctorDirectory, appointments AppointmentStore) *Service {
	return &Service{
		doctors:      doctors,
		appointments: appointments,
		locks:        make(map[uint]*sync.Mutex),
		now:          time.Now,
	}
}

func (s *Service) doctorLock(doctorID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[doctorID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[doctorID] = lock
	}
	return lock
}

// FreeSlots returns the doctor's configured slot descriptors for the
// given date, minus those whose start time is taken by an existing
// appointment. An unknown doctor yields an empty list, not an error.
func (s *Service) FreeSlots(ctx context.Context, doctorID uint, date time.Time) ([]string, error) {
	return s.freeSlots(ctx, doctorID, date, 0)
}

// freeSlots is FreeSlots with one appointment excluded from the booked
// set, so that rescheduling to an unchanged time does not conflict with
// the appointment being rescheduled.
func (s *Service) freeSlots(ctx context.Context, doctorID uint, date time.Time, excludeAppt uint) ([]string, error) {
	doctor, err := s.doctors.DoctorByID(ctx, doctorID)
	if errors.Is(err, ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd := dayBounds(date)
	booked, err := s.appointments.ForDoctorBetween(ctx, doctorID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	taken := make(map[int]bool, len(booked))
	for _, appt := range booked {
		if excludeAppt != 0 && appt.AppointmentID == excludeAppt {
			continue
		}
		taken[minutesOfDay(appt.AppointmentTime)] = true
	}

	free := make([]string, 0, len(doctor.AvailableTimes))
	for _, ts := range doctor.AvailableTimes {
		window, err := ParseWindow(ts.Slot)
		if err != nil {
			// A descriptor that cannot be parsed can never match a
			// booking, so it stays offered as configured.
			free = append(free, ts.Slot)
			continue
		}
		if !taken[window.Start] {
			free = append(free, ts.Slot)
		}
	}
	return free, nil
}

// Validate checks the proposed appointment's doctor and start time.
// The start time must equal the start of one of the doctor's free
// slots on the appointment's date. If the appointment carries an ID,
// its own persisted booking is excluded from the conflict set.
func (s *Service) Validate(ctx context.Context, appt *models.Appointment) (ValidationResult, error) {
	if _, err := s.doctors.DoctorByID(ctx, appt.DoctorID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return DoctorNotFound, nil
		}
		return SlotUnavailable, err
	}

	free, err := s.freeSlots(ctx, appt.DoctorID, appt.AppointmentTime, appt.AppointmentID)
	if err != nil {
		return SlotUnavailable, err
	}

	want := minutesOfDay(appt.AppointmentTime)
	for _, slot := range free {
		window, err := ParseWindow(slot)
		if err != nil {
			continue
		}
		if window.Start == want {
			return Valid, nil
		}
	}
	return SlotUnavailable, nil
}

// Book validates and persists a new appointment. The validate-then-save
// sequence runs under the doctor's lock.
func (s *Service) Book(ctx context.Context, appt *models.Appointment) error {
	if !appt.AppointmentTime.After(s.now()) {
		return fmt.Errorf("%w: appointment time must be in the future", ErrConflict)
	}

	lock := s.doctorLock(appt.DoctorID)
	lock.Lock()
	defer lock.Unlock()

	result, err := s.Validate(ctx, appt)
	if err != nil {
		return err
	}
	switch result {
	case DoctorNotFound:
		return fmt.Errorf("%w: doctor %d", ErrNotFound, appt.DoctorID)
	case SlotUnavailable:
		return fmt.Errorf("%w: slot %s is not available", ErrConflict, appt.AppointmentTime.Format("2006-01-02 15:04"))
	}

	appt.AppointmentID = 0
	appt.Status = models.StatusScheduled
	if appt.BookingRef == "" {
		appt.BookingRef = uuid.NewString()
	}
	return s.appointments.Save(ctx, appt)
}

// lockDoctors acquires the locks of both doctors in id order, so two
// reschedules moving between the same pair cannot deadlock. Returns
// the matching unlock.
func (s *Service) lockDoctors(a, b uint) func() {
	if a == b {
		lock := s.doctorLock(a)
		lock.Lock()
		return lock.Unlock
	}
	if a > b {
		a, b = b, a
	}
	first, second := s.doctorLock(a), s.doctorLock(b)
	first.Lock()
	second.Lock()
	return func() {
		second.Unlock()
		first.Unlock()
	}
}

// Update reschedules an existing appointment. Only the owning patient
// may update; the new doctor/time is revalidated with the appointment
// itself excluded from the conflict set.
func (s *Service) Update(ctx context.Context, appt *models.Appointment) error {
	// Unlocked peek to learn which doctor currently holds the booking;
	// the authoritative read happens under the locks, so a cancel that
	// slips in between cannot be undone by the Save below.
	peek, err := s.appointments.AppointmentByID(ctx, appt.AppointmentID)
	if err != nil {
		return err
	}

	unlock := s.lockDoctors(peek.DoctorID, appt.DoctorID)
	defer unlock()

	existing, err := s.appointments.AppointmentByID(ctx, appt.AppointmentID)
	if err != nil {
		return err
	}
	if existing.PatientID != appt.PatientID {
		return fmt.Errorf("%w: appointment %d belongs to another patient", ErrForbidden, appt.AppointmentID)
	}

	result, err := s.Validate(ctx, appt)
	if err != nil {
		return err
	}
	switch result {
	case DoctorNotFound:
		return fmt.Errorf("%w: doctor %d", ErrNotFound, appt.DoctorID)
	case SlotUnavailable:
		return fmt.Errorf("%w: slot %s is not available", ErrConflict, appt.AppointmentTime.Format("2006-01-02 15:04"))
	}

	existing.DoctorID = appt.DoctorID
	existing.AppointmentTime = appt.AppointmentTime
	existing.Status = appt.Status
	return s.appointments.Save(ctx, existing)
}

// Cancel deletes the appointment. Only the owning patient may cancel.
// Cancellation removes the record entirely; there is no cancelled
// status kept for history.
func (s *Service) Cancel(ctx context.Context, appointmentID uint, requester *models.Patient) error {
	if requester == nil {
		return fmt.Errorf("%w: unknown requester", ErrForbidden)
	}

	appt, err := s.appointments.AppointmentByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appt.PatientID != requester.PatientID {
		return fmt.Errorf("%w: you can only cancel your own appointments", ErrForbidden)
	}

	lock := s.doctorLock(appt.DoctorID)
	lock.Lock()
	defer lock.Unlock()

	return s.appointments.Delete(ctx, appt.AppointmentID)
}

// RemoveDoctorSchedule deletes every appointment of a doctor. Used when
// an administrator removes the doctor from the directory.
func (s *Service) RemoveDoctorSchedule(ctx context.Context, doctorID uint) error {
	lock := s.doctorLock(doctorID)
	lock.Lock()
	defer lock.Unlock()

	return s.appointments.DeleteAllForDoctor(ctx, doctorID)
}
