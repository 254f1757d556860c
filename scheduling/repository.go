package scheduling

import (
	"context"
	"time"

	"clinic-connect/models"
)

// DoctorDirectory is the doctor lookup used by the scheduling core.
// Implementations return ErrNotFound (wrapped) for an unknown id.
type DoctorDirectory interface {
	DoctorByID(ctx context.Context, id uint) (*models.Doctor, error)
}

// AppointmentStore is the appointment persistence used by the
// scheduling core. Save both creates and overwrites.
type AppointmentStore interface {
	AppointmentByID(ctx context.Context, id uint) (*models.Appointment, error)
	ForDoctorBetween(ctx context.Context, doctorID uint, start, end time.Time) ([]models.Appointment, error)
	Save(ctx context.Context, appt *models.Appointment) error
	Delete(ctx context.Context, id uint) error
	DeleteAllForDoctor(ctx context.Context, doctorID uint) error
}
