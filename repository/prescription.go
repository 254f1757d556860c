package repository

import (
	"context"
	"errors"
	"fmt"

	"clinic-connect/models"
	"clinic-connect/scheduling"

	"gorm.io/gorm"
)

type PrescriptionRepo struct {
	db *gorm.DB
}

func NewPrescriptionRepo(db *gorm.DB) *PrescriptionRepo {
	return &PrescriptionRepo{db: db}
}

// Create stores a prescription. Each appointment carries at most one,
// so a second write for the same appointment is a conflict.
func (r *PrescriptionRepo) Create(ctx context.Context, p *models.Prescription) error {
	var existing models.Prescription
	err := r.db.WithContext(ctx).Where("appointment_id = ?", p.AppointmentID).First(&existing).Error
	if err == nil {
		return fmt.Errorf("%w: prescription for appointment %d already exists", scheduling.ErrConflict, p.AppointmentID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PrescriptionRepo) ByAppointmentID(ctx context.Context, appointmentID uint) (*models.Prescription, error) {
	var p models.Prescription
	err := r.db.WithContext(ctx).Where("appointment_id = ?", appointmentID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: prescription for appointment %d", scheduling.ErrNotFound, appointmentID)
		}
		return nil, err
	}
	return &p, nil
}
