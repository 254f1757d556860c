package controllers

import (
	"context"
	"time"

	"clinic-connect/configuration"
	"clinic-connect/models"
	"clinic-connect/repository"
	"clinic-connect/scheduling"
)

// Store interfaces the handlers depend on. The repository package
// provides the postgres implementations; tests substitute fakes.
type AdminStore interface {
	ByUsername(ctx context.Context, username string) (*models.Admin, error)
	Save(ctx context.Context, admin *models.Admin) error
}

type DoctorStore interface {
	scheduling.DoctorDirectory
	DoctorByEmail(ctx context.Context, email string) (*models.Doctor, error)
	All(ctx context.Context) ([]models.Doctor, error)
	Filter(ctx context.Context, name, specialty, amOrPm string) ([]models.Doctor, error)
	Create(ctx context.Context, doctor *models.Doctor) error
	Update(ctx context.Context, doctor *models.Doctor) error
	Delete(ctx context.Context, id uint) error
}

type PatientStore interface {
	ByEmail(ctx context.Context, email string) (*models.Patient, error)
	ByID(ctx context.Context, id uint) (*models.Patient, error)
	Create(ctx context.Context, patient *models.Patient) error
}

type AppointmentStore interface {
	scheduling.AppointmentStore
	ForPatient(ctx context.Context, patientID uint, status *int, doctorName string) ([]models.AppointmentDetail, error)
	ForDoctorOnDate(ctx context.Context, doctorID uint, date time.Time, patientName string) ([]models.AppointmentDetail, error)
	MarkCompleted(ctx context.Context, id uint) error
}

type PrescriptionStore interface {
	Create(ctx context.Context, p *models.Prescription) error
	ByAppointmentID(ctx context.Context, appointmentID uint) (*models.Prescription, error)
}

// Shared handler dependencies, wired once at startup.
var (
	Admins        AdminStore
	Doctors       DoctorStore
	Patients      PatientStore
	Appointments  AppointmentStore
	Prescriptions PrescriptionStore
	Scheduler     *scheduling.Service
)

// Init builds the repositories and the scheduling service on top of the
// configured database connection. Call after configuration.ConfigDB.
func Init() {
	Admins = repository.NewAdminRepo(configuration.DB)
	Doctors = repository.NewDoctorRepo(configuration.DB)
	Patients = repository.NewPatientRepo(configuration.DB)
	Appointments = repository.NewAppointmentRepo(configuration.DB)
	Prescriptions = repository.NewPrescriptionRepo(configuration.DB)
	Scheduler = scheduling.NewService(Doctors, Appointments)
}
