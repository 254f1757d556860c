package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"clinic-connect/models"
	"clinic-connect/scheduling"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"golang.org/x/crypto/bcrypt"
)

var validate = validator.New()

type doctorRequest struct {
	Name           string   `json:"name" binding:"required"`
	Specialty      string   `json:"specialty" binding:"required"`
	Email          string   `json:"email" binding:"required,email"`
	Password       string   `json:"password"`
	Phone          string   `json:"phone"`
	AvailableTimes []string `json:"available_times"`
}

// parseSlots canonicalizes the configured slot descriptors, rejecting
// anything that is not a well-formed time range.
func parseSlots(descriptors []string) ([]models.TimeSlot, error) {
	slots := make([]models.TimeSlot, 0, len(descriptors))
	for i, d := range descriptors {
		window, err := scheduling.ParseWindow(d)
		if err != nil {
			return nil, err
		}
		slots = append(slots, models.TimeSlot{Position: i, Slot: window.String()})
	}
	return slots, nil
}

// AddDoctor registers a new doctor with their consulting slots
func AddDoctor(c *gin.Context) {
	var req doctorRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slots, err := parseSlots(req.AvailableTimes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	doctor := models.Doctor{
		Name:           req.Name,
		Specialty:      req.Specialty,
		Email:          req.Email,
		Password:       string(hashedPassword),
		Phone:          req.Phone,
		AvailableTimes: slots,
	}
	if err := validate.Struct(doctor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := Doctors.Create(c.Request.Context(), &doctor); err != nil {
		if errors.Is(err, scheduling.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"Message": "Doctor already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Doctor added successfully",
		"data":    doctor.DoctorID,
	})
}

// UpdateDoctor replaces a doctor's profile and slot configuration
func UpdateDoctor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid doctor id"})
		return
	}

	var req doctorRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slots, err := parseSlots(req.AvailableTimes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doctor, err := Doctors.DoctorByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"Message": "Doctor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	doctor.Name = req.Name
	doctor.Specialty = req.Specialty
	doctor.Email = req.Email
	doctor.Phone = req.Phone
	doctor.AvailableTimes = slots
	if req.Password != "" {
		hashed, hashErr := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if hashErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		doctor.Password = string(hashed)
	}

	if err := Doctors.Update(c.Request.Context(), doctor); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Doctor updated successfully",
	})
}

// RemoveDoctor deletes a doctor along with their slots and appointments
func RemoveDoctor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid doctor id"})
		return
	}

	// Serialize with in-flight bookings for this doctor before the
	// cascade delete runs.
	if err := Scheduler.RemoveDoctorSchedule(c.Request.Context(), uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	if err := Doctors.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"Message": "Doctor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Doctor removed successfully",
	})
}

// ViewDoctors lists every doctor in the directory
func ViewDoctors(c *gin.Context) {
	doctors, err := Doctors.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"Status": "Success",
		"data":   doctors,
	})
}

// GetDoctorByID returns one doctor's profile and slot configuration
func GetDoctorByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid doctor id"})
		return
	}

	doctor, err := Doctors.DoctorByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"Message": "Doctor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status": "Success",
		"data":   doctor,
	})
}
