package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"clinic-connect/models"
	"clinic-connect/scheduling"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// AddPrescription records a prescription for one of the logged-in
// doctor's appointments, marks the visit completed and mails the
// patient a PDF copy.
func AddPrescription(c *gin.Context) {
	var req struct {
		AppointmentID    uint   `json:"appointment_id" binding:"required"`
		HealthIssue      string `json:"health_issue"`
		PrescriptionText string `json:"prescription_text" binding:"required"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doctorID := c.GetUint("doctor_id")

	appointment, err := Appointments.AppointmentByID(c.Request.Context(), req.AppointmentID)
	if err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"Message": "Appointment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if appointment.DoctorID != doctorID {
		c.JSON(http.StatusForbidden, gin.H{"Message": "Appointment belongs to another doctor"})
		return
	}

	prescription := models.Prescription{
		DoctorID:         doctorID,
		PatientID:        appointment.PatientID,
		AppointmentID:    appointment.AppointmentID,
		HealthIssue:      req.HealthIssue,
		PrescriptionText: req.PrescriptionText,
	}
	if err := Prescriptions.Create(c.Request.Context(), &prescription); err != nil {
		if errors.Is(err, scheduling.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"Message": "Prescription already added for this appointment"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	if err := Appointments.MarkCompleted(c.Request.Context(), appointment.AppointmentID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	doctor, err := Doctors.DoctorByID(c.Request.Context(), doctorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	patient, err := Patients.ByID(c.Request.Context(), appointment.PatientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	pdfData, err := GeneratePrescriptionPDF(*appointment, *doctor, *patient, prescription)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate prescription PDF"})
		return
	}
	if err := SendPrescriptionEmail("Prescription attachment", patient.Email, "prescription.pdf", pdfData); err != nil {
		// The record is saved either way; the mail can be resent.
		log.Println("Error sending prescription email:", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Prescription added successfully",
		"data":    prescription.ID,
	})
}

// GetPrescription returns the prescription attached to an appointment.
// Patients may only read their own.
func GetPrescription(c *gin.Context) {
	appointmentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment id"})
		return
	}

	prescription, err := Prescriptions.ByAppointmentID(c.Request.Context(), uint(appointmentID))
	if err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"Message": "Prescription not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	if patientID := c.GetUint("patientID"); patientID != 0 && prescription.PatientID != patientID {
		c.JSON(http.StatusForbidden, gin.H{"Message": "Prescription belongs to another patient"})
		return
	}
	if doctorID := c.GetUint("doctor_id"); doctorID != 0 && prescription.DoctorID != doctorID {
		c.JSON(http.StatusForbidden, gin.H{"Message": "Prescription belongs to another doctor's appointment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status": "Success",
		"data":   prescription,
	})
}

// GeneratePrescriptionPDF renders the prescription as a PDF document
func GeneratePrescriptionPDF(appointment models.Appointment, doctor models.Doctor, patient models.Patient, prescription models.Prescription) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Doctor Prescription", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	addDetail(pdf, "Doctor Name:", doctor.Name, true)
	addDetail(pdf, "Specialty:", doctor.Specialty, false)

	pdf.SetFont("Arial", "B", 12)
	pdf.SetY(pdf.GetY() + 10)
	addDetail(pdf, "Patient Name:", patient.Name, true)
	addDetail(pdf, "Email:", patient.Email, false)

	pdf.SetFont("Arial", "B", 12)
	pdf.SetY(pdf.GetY() + 10)
	addDetail(pdf, "Appointment Date:", appointment.AppointmentTime.Format("2006-01-02"), true)
	addDetail(pdf, "Time:", appointment.AppointmentTime.Format("15:04"), false)

	pdf.SetFont("Arial", "B", 12)
	pdf.SetY(pdf.GetY() + 10)
	addDetail(pdf, "Prescription ID:", fmt.Sprintf("%d", prescription.ID), true)
	addDetail(pdf, "Health Issue:", prescription.HealthIssue, false)
	addDetail(pdf, "Instructions:", prescription.PrescriptionText, false)

	pdf.SetFont("Arial", "", 10)
	pdf.SetY(pdf.GetY() + 10)
	pdf.MultiCell(0, 5, "Follow the instructions given by the doctor properly. Your health is all that matters!", "", "C", false)

	var pdfBuffer bytes.Buffer
	if err := pdf.Output(&pdfBuffer); err != nil {
		return nil, err
	}
	return pdfBuffer.Bytes(), nil
}

// addDetail adds a labelled line to the PDF
func addDetail(pdf *gofpdf.Fpdf, label, value string, isHeader bool) {
	if isHeader {
		pdf.SetFont("Arial", "B", 12)
	} else {
		pdf.SetFont("Arial", "", 12)
	}
	pdf.CellFormat(0, 10, label, "", 1, "", false, 0, "")
	pdf.CellFormat(0, 10, value, "", 1, "", false, 0, "")
}
