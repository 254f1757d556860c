package controllers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"clinic-connect/models"
	"clinic-connect/scheduling"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDoctors struct {
	doctors map[uint]*models.Doctor
}

func (f *fakeDoctors) DoctorByID(_ context.Context, id uint) (*models.Doctor, error) {
	doctor, ok := f.doctors[id]
	if !ok {
		return nil, fmt.Errorf("%w: doctor %d", scheduling.ErrNotFound, id)
	}
	return doctor, nil
}

func (f *fakeDoctors) DoctorByEmail(_ context.Context, email string) (*models.Doctor, error) {
	for _, doctor := range f.doctors {
		if doctor.Email == email {
			return doctor, nil
		}
	}
	return nil, fmt.Errorf("%w: doctor %s", scheduling.ErrNotFound, email)
}

func (f *fakeDoctors) All(_ context.Context) ([]models.Doctor, error) {
	var out []models.Doctor
	for _, doctor := range f.doctors {
		out = append(out, *doctor)
	}
	return out, nil
}

func (f *fakeDoctors) Filter(_ context.Context, _, _, _ string) ([]models.Doctor, error) {
	return nil, nil
}

func (f *fakeDoctors) Create(_ context.Context, _ *models.Doctor) error { return nil }
func (f *fakeDoctors) Update(_ context.Context, _ *models.Doctor) error { return nil }
func (f *fakeDoctors) Delete(_ context.Context, _ uint) error           { return nil }

type fakeAppointments struct {
	mu     sync.Mutex
	nextID uint
	rows   map[uint]models.Appointment
}

func newFakeAppointments() *fakeAppointments {
	return &fakeAppointments{nextID: 1, rows: make(map[uint]models.Appointment)}
}

func (f *fakeAppointments) AppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, fmt.Errorf("%w: appointment %d", scheduling.ErrNotFound, id)
	}
	return &row, nil
}

func (f *fakeAppointments) ForDoctorBetween(_ context.Context, doctorID uint, start, end time.Time) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, row := range f.rows {
		if row.DoctorID != doctorID {
			continue
		}
		if row.AppointmentTime.Before(start) || row.AppointmentTime.After(end) {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (f *fakeAppointments) Save(_ context.Context, appt *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if appt.AppointmentID == 0 {
		appt.AppointmentID = f.nextID
		f.nextID++
	}
	f.rows[appt.AppointmentID] = *appt
	return nil
}

func (f *fakeAppointments) Delete(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, id)
	return nil
}

func (f *fakeAppointments) DeleteAllForDoctor(_ context.Context, _ uint) error { return nil }

func (f *fakeAppointments) ForPatient(_ context.Context, _ uint, _ *int, _ string) ([]models.AppointmentDetail, error) {
	return nil, nil
}

func (f *fakeAppointments) ForDoctorOnDate(_ context.Context, _ uint, _ time.Time, _ string) ([]models.AppointmentDetail, error) {
	return nil, nil
}

func (f *fakeAppointments) MarkCompleted(_ context.Context, _ uint) error { return nil }

type fakePrescriptions struct {
	rows map[uint]*models.Prescription
}

func (f *fakePrescriptions) Create(_ context.Context, p *models.Prescription) error {
	if _, ok := f.rows[p.AppointmentID]; ok {
		return fmt.Errorf("%w: prescription for appointment %d already exists", scheduling.ErrConflict, p.AppointmentID)
	}
	f.rows[p.AppointmentID] = p
	return nil
}

func (f *fakePrescriptions) ByAppointmentID(_ context.Context, appointmentID uint) (*models.Prescription, error) {
	p, ok := f.rows[appointmentID]
	if !ok {
		return nil, fmt.Errorf("%w: prescription for appointment %d", scheduling.ErrNotFound, appointmentID)
	}
	return p, nil
}

func testContext(t *testing.T, method, target string, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	c.Request = httptest.NewRequest(method, target, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestBookedSlotIsNotOfferedWithNonUTCLocalZone(t *testing.T) {
	oldLocal := time.Local
	time.Local = time.FixedZone("UTC+10", 10*3600)
	defer func() { time.Local = oldLocal }()

	Doctors = &fakeDoctors{doctors: map[uint]*models.Doctor{
		1: {
			DoctorID: 1,
			Name:     "Dr. Asha Varma",
			Email:    "asha@example.com",
			AvailableTimes: []models.TimeSlot{
				{Slot: "09:00 - 10:00"},
				{Slot: "10:00 - 11:00"},
			},
		},
	}}
	Appointments = newFakeAppointments()
	Scheduler = scheduling.NewService(Doctors, Appointments)

	c, w := testContext(t, http.MethodPost, "/user/book/appointment",
		`{"doctor_id":1,"date":"2030-06-01","slot":"09:00 - 10:00"}`)
	c.Set("patientID", uint(3))
	BookAppointment(c)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	c, w = testContext(t, http.MethodGet, "/doctors/1/available-slots?date=2030-06-01", "")
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	GetAvailableTimeSlots(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "09:00 - 10:00")
	assert.Contains(t, w.Body.String(), "10:00 - 11:00")
}

func TestGetPrescriptionEnforcesDoctorOwnership(t *testing.T) {
	Prescriptions = &fakePrescriptions{rows: map[uint]*models.Prescription{
		5: {DoctorID: 7, PatientID: 3, AppointmentID: 5, PrescriptionText: "rest and fluids"},
	}}

	c, w := testContext(t, http.MethodGet, "/doctor/prescription/5", "")
	c.Params = gin.Params{{Key: "id", Value: "5"}}
	c.Set("doctor_id", uint(9))
	GetPrescription(c)
	assert.Equal(t, http.StatusForbidden, w.Code)

	c, w = testContext(t, http.MethodGet, "/doctor/prescription/5", "")
	c.Params = gin.Params{{Key: "id", Value: "5"}}
	c.Set("doctor_id", uint(7))
	GetPrescription(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "rest and fluids")
}

func TestGetPrescriptionEnforcesPatientOwnership(t *testing.T) {
	Prescriptions = &fakePrescriptions{rows: map[uint]*models.Prescription{
		5: {DoctorID: 7, PatientID: 3, AppointmentID: 5},
	}}

	c, w := testContext(t, http.MethodGet, "/user/prescription/5", "")
	c.Params = gin.Params{{Key: "id", Value: "5"}}
	c.Set("patientID", uint(4))
	GetPrescription(c)
	assert.Equal(t, http.StatusForbidden, w.Code)

	c, w = testContext(t, http.MethodGet, "/user/prescription/5", "")
	c.Params = gin.Params{{Key: "id", Value: "5"}}
	c.Set("patientID", uint(3))
	GetPrescription(c)
	assert.Equal(t, http.StatusOK, w.Code)
}
