package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"clinic-connect/models"
	"clinic-connect/scheduling"

	"gorm.io/gorm"
)

// DoctorRepo is the doctor directory backed by postgres. It satisfies
// scheduling.DoctorDirectory.
type DoctorRepo struct {
	db *gorm.DB
}

func NewDoctorRepo(db *gorm.DB) *DoctorRepo {
	return &DoctorRepo{db: db}
}

func (r *DoctorRepo) DoctorByID(ctx context.Context, id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.WithContext(ctx).
		Preload("AvailableTimes", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&doctor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: doctor %d", scheduling.ErrNotFound, id)
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *DoctorRepo) DoctorByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.WithContext(ctx).
		Preload("AvailableTimes", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("email = ?", email).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: doctor %s", scheduling.ErrNotFound, email)
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *DoctorRepo) All(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.WithContext(ctx).
		Preload("AvailableTimes", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Order("doctor_id").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

// Filter narrows the directory by any combination of name substring,
// specialty and AM/PM period. Name and specialty go to the database;
// the period check needs parsed slot windows, so it runs here.
func (r *DoctorRepo) Filter(ctx context.Context, name, specialty, amOrPm string) ([]models.Doctor, error) {
	query := r.db.WithContext(ctx).
		Preload("AvailableTimes", func(db *gorm.DB) *gorm.DB { return db.Order("position") })

	if name = strings.TrimSpace(name); name != "" {
		query = query.Where("name ILIKE ?", "%"+name+"%")
	}
	if specialty = strings.TrimSpace(specialty); specialty != "" {
		query = query.Where("LOWER(specialty) = LOWER(?)", specialty)
	}

	var doctors []models.Doctor
	if err := query.Order("doctor_id").Find(&doctors).Error; err != nil {
		return nil, err
	}

	if amOrPm = strings.TrimSpace(amOrPm); amOrPm == "" {
		return doctors, nil
	}

	filtered := make([]models.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		for _, ts := range doctor.AvailableTimes {
			window, err := scheduling.ParseWindow(ts.Slot)
			if err != nil {
				continue
			}
			if window.InPeriod(amOrPm) {
				filtered = append(filtered, doctor)
				break
			}
		}
	}
	return filtered, nil
}

// Create stores a new doctor with their slots. A doctor with the same
// email is a conflict.
func (r *DoctorRepo) Create(ctx context.Context, doctor *models.Doctor) error {
	var existing models.Doctor
	err := r.db.WithContext(ctx).Where("email = ?", doctor.Email).First(&existing).Error
	if err == nil {
		return fmt.Errorf("%w: doctor with email %s already exists", scheduling.ErrConflict, doctor.Email)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	for i := range doctor.AvailableTimes {
		doctor.AvailableTimes[i].Position = i
	}
	return r.db.WithContext(ctx).Create(doctor).Error
}

// Update overwrites a doctor's record, replacing the configured slots.
func (r *DoctorRepo) Update(ctx context.Context, doctor *models.Doctor) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Doctor
		if err := tx.First(&existing, doctor.DoctorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: doctor %d", scheduling.ErrNotFound, doctor.DoctorID)
			}
			return err
		}

		if err := tx.Where("doctor_id = ?", doctor.DoctorID).Delete(&models.TimeSlot{}).Error; err != nil {
			return err
		}
		for i := range doctor.AvailableTimes {
			doctor.AvailableTimes[i].ID = 0
			doctor.AvailableTimes[i].DoctorID = doctor.DoctorID
			doctor.AvailableTimes[i].Position = i
		}
		return tx.Save(doctor).Error
	})
}

// Delete removes the doctor, their slots and all their appointments in
// one transaction.
func (r *DoctorRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var doctor models.Doctor
		if err := tx.First(&doctor, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: doctor %d", scheduling.ErrNotFound, id)
			}
			return err
		}

		if err := tx.Where("doctor_id = ?", id).Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("doctor_id = ?", id).Delete(&models.TimeSlot{}).Error; err != nil {
			return err
		}
		return tx.Delete(&doctor).Error
	})
}
