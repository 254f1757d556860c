package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"clinic-connect/models"
	"clinic-connect/scheduling"

	"gorm.io/gorm"
)

// AppointmentRepo persists appointments in postgres. It satisfies
// scheduling.AppointmentStore.
type AppointmentRepo struct {
	db *gorm.DB
}

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepo {
	return &AppointmentRepo{db: db}
}

// detailColumns projects an appointment joined with doctor and patient
// fields into models.AppointmentDetail.
const detailColumns = `appointments.appointment_id, appointments.booking_ref,
	appointments.doctor_id, doctors.name AS doctor_name, doctors.specialty,
	appointments.patient_id, patients.name AS patient_name,
	patients.email AS patient_email, patients.phone AS patient_phone,
	patients.address AS patient_address,
	appointments.appointment_time,
	appointments.appointment_time + interval '1 hour' AS end_time,
	appointments.status`

func (r *AppointmentRepo) AppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var appt models.Appointment
	if err := r.db.WithContext(ctx).First(&appt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: appointment %d", scheduling.ErrNotFound, id)
		}
		return nil, err
	}
	return &appt, nil
}

func (r *AppointmentRepo) ForDoctorBetween(ctx context.Context, doctorID uint, start, end time.Time) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND appointment_time BETWEEN ? AND ?", doctorID, start, end).
		Order("appointment_time").Find(&appts).Error
	if err != nil {
		return nil, err
	}
	return appts, nil
}

// Save creates new appointments and overwrites existing ones. A
// duplicate (doctor, start time) pair trips the unique index and is
// reported as a conflict.
func (r *AppointmentRepo) Save(ctx context.Context, appt *models.Appointment) error {
	err := r.db.WithContext(ctx).Save(appt).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: slot already booked", scheduling.ErrConflict)
	}
	return err
}

func (r *AppointmentRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: appointment %d", scheduling.ErrNotFound, id)
	}
	return nil
}

func (r *AppointmentRepo) DeleteAllForDoctor(ctx context.Context, doctorID uint) error {
	return r.db.WithContext(ctx).Where("doctor_id = ?", doctorID).Delete(&models.Appointment{}).Error
}

// ForPatient lists a patient's appointments, optionally narrowed by
// status and by the doctor's name, newest scheduling first.
func (r *AppointmentRepo) ForPatient(ctx context.Context, patientID uint, status *int, doctorName string) ([]models.AppointmentDetail, error) {
	query := r.db.WithContext(ctx).Model(&models.Appointment{}).
		Select(detailColumns).
		Joins("JOIN doctors ON doctors.doctor_id = appointments.doctor_id").
		Joins("JOIN patients ON patients.patient_id = appointments.patient_id").
		Where("appointments.patient_id = ?", patientID)

	if status != nil {
		query = query.Where("appointments.status = ?", *status)
	}
	if doctorName = strings.TrimSpace(doctorName); doctorName != "" {
		query = query.Where("doctors.name ILIKE ?", "%"+doctorName+"%")
	}

	var details []models.AppointmentDetail
	if err := query.Order("appointments.appointment_time").Scan(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

// ForDoctorOnDate is the doctor's day sheet: every appointment between
// midnight and end of day, with the patient's details joined in. An
// optional patient name narrows the list.
func (r *AppointmentRepo) ForDoctorOnDate(ctx context.Context, doctorID uint, date time.Time, patientName string) ([]models.AppointmentDetail, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)

	query := r.db.WithContext(ctx).Model(&models.Appointment{}).
		Select(detailColumns).
		Joins("JOIN doctors ON doctors.doctor_id = appointments.doctor_id").
		Joins("JOIN patients ON patients.patient_id = appointments.patient_id").
		Where("appointments.doctor_id = ? AND appointments.appointment_time BETWEEN ? AND ?", doctorID, start, end)

	if patientName = strings.TrimSpace(patientName); patientName != "" {
		query = query.Where("patients.name ILIKE ?", "%"+patientName+"%")
	}

	var details []models.AppointmentDetail
	if err := query.Order("appointments.appointment_time").Scan(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

// MarkCompleted flips an appointment to completed status.
func (r *AppointmentRepo) MarkCompleted(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("appointment_id = ?", id).
		Update("status", models.StatusCompleted)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: appointment %d", scheduling.ErrNotFound, id)
	}
	return nil
}
