package repository

import (
	"context"
	"errors"
	"fmt"

	"clinic-connect/models"
	"clinic-connect/scheduling"

	"gorm.io/gorm"
)

type PatientRepo struct {
	db *gorm.DB
}

func NewPatientRepo(db *gorm.DB) *PatientRepo {
	return &PatientRepo{db: db}
}

func (r *PatientRepo) ByEmail(ctx context.Context, email string) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: patient %s", scheduling.ErrNotFound, email)
		}
		return nil, err
	}
	return &patient, nil
}

func (r *PatientRepo) ByID(ctx context.Context, id uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.WithContext(ctx).First(&patient, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: patient %d", scheduling.ErrNotFound, id)
		}
		return nil, err
	}
	return &patient, nil
}

func (r *PatientRepo) Create(ctx context.Context, patient *models.Patient) error {
	var existing models.Patient
	err := r.db.WithContext(ctx).Where("email = ?", patient.Email).First(&existing).Error
	if err == nil {
		return fmt.Errorf("%w: patient with email %s already exists", scheduling.ErrConflict, patient.Email)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.WithContext(ctx).Create(patient).Error
}
