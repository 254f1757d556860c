package models

import "time"

// Appointment statuses. Cancellation deletes the record instead of
// using a status, so there is no cancelled value.
const (
	StatusScheduled = 0
	StatusCompleted = 1
)

type Appointment struct {
	AppointmentID   uint      `json:"appointment_id" gorm:"primaryKey"`
	BookingRef      string    `json:"booking_ref" gorm:"uniqueIndex"`
	DoctorID        uint      `json:"doctor_id" gorm:"not null;uniqueIndex:idx_doctor_start"`
	PatientID       uint      `json:"patient_id" gorm:"not null;index"`
	AppointmentTime time.Time `json:"appointment_time" gorm:"not null;uniqueIndex:idx_doctor_start"`
	Status          int       `json:"status"`
}

// EndTime is the implicit end of the visit. Every appointment is one hour.
func (a *Appointment) EndTime() time.Time {
	return a.AppointmentTime.Add(time.Hour)
}

// AppointmentDetail is the appointment joined with doctor and patient
// fields, as returned by listing endpoints.
type AppointmentDetail struct {
	AppointmentID   uint      `json:"appointment_id"`
	BookingRef      string    `json:"booking_ref"`
	DoctorID        uint      `json:"doctor_id"`
	DoctorName      string    `json:"doctor_name"`
	Specialty       string    `json:"specialty"`
	PatientID       uint      `json:"patient_id"`
	PatientName     string    `json:"patient_name"`
	PatientEmail    string    `json:"patient_email"`
	PatientPhone    string    `json:"patient_phone"`
	PatientAddress  string    `json:"patient_address"`
	AppointmentTime time.Time `json:"appointment_time"`
	EndTime         time.Time `json:"end_time"`
	Status          int       `json:"status"`
}
