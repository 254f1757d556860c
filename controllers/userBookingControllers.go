package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"clinic-connect/models"
	"clinic-connect/scheduling"

	"github.com/gin-gonic/gin"
)

type bookingRequest struct {
	DoctorID uint   `json:"doctor_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Slot     string `json:"slot" binding:"required"`
}

// parseDay resolves a YYYY-MM-DD query value in the server's zone.
// Booking, availability and schedule queries must all share one zone,
// or a booked start can fall outside the day it was booked on.
func parseDay(value string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, time.Local)
}

// appointmentTime resolves a date plus slot descriptor into the
// concrete start time of the appointment.
func (r bookingRequest) appointmentTime() (time.Time, error) {
	date, err := parseDay(r.Date)
	if err != nil {
		return time.Time{}, err
	}
	window, err := scheduling.ParseWindow(r.Slot)
	if err != nil {
		return time.Time{}, err
	}
	return date.Add(time.Duration(window.Start) * time.Minute), nil
}

func respondSchedulingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, scheduling.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"Status": "Failed", "Message": err.Error()})
	case errors.Is(err, scheduling.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"Status": "Failed", "Message": err.Error()})
	case errors.Is(err, scheduling.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"Status": "Failed", "Message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"Status": "Failed", "Message": "internal error"})
	}
}

// BookAppointment books a free slot with a doctor for the logged-in
// patient.
func BookAppointment(c *gin.Context) {
	var req bookingRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startTime, err := req.appointmentTime()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt := models.Appointment{
		DoctorID:        req.DoctorID,
		PatientID:       c.GetUint("patientID"),
		AppointmentTime: startTime,
	}
	if err := Scheduler.Book(c.Request.Context(), &appt); err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Appointment booked successfully",
		"data": gin.H{
			"appointment_id": appt.AppointmentID,
			"booking_ref":    appt.BookingRef,
			"time":           appt.AppointmentTime,
		},
	})
}

// UpdateAppointment reschedules an existing appointment. Only the
// patient who booked it may change it.
func UpdateAppointment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment id"})
		return
	}

	var req bookingRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startTime, err := req.appointmentTime()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt := models.Appointment{
		AppointmentID:   uint(id),
		DoctorID:        req.DoctorID,
		PatientID:       c.GetUint("patientID"),
		AppointmentTime: startTime,
	}
	if err := Scheduler.Update(c.Request.Context(), &appt); err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Appointment updated successfully",
	})
}

// CancelAppointment deletes an appointment after checking it belongs
// to the logged-in patient.
func CancelAppointment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment id"})
		return
	}

	patient, err := Patients.ByID(c.Request.Context(), c.GetUint("patientID"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "patient not found"})
		return
	}

	if err := Scheduler.Cancel(c.Request.Context(), uint(id), patient); err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Appointment cancelled successfully",
	})
}

// GetAppointmentHistory lists the logged-in patient's appointments.
// filter=past keeps completed visits, filter=future the scheduled
// ones; doctor narrows by doctor name.
func GetAppointmentHistory(c *gin.Context) {
	var status *int
	switch strings.ToLower(c.Query("filter")) {
	case "":
	case "past":
		completed := models.StatusCompleted
		status = &completed
	case "future":
		scheduled := models.StatusScheduled
		status = &scheduled
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "filter must be past or future"})
		return
	}

	details, err := Appointments.ForPatient(c.Request.Context(), c.GetUint("patientID"), status, c.Query("doctor"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status": "Success",
		"data":   details,
	})
}
