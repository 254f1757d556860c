package controllers

import (
	"net/http"

	"clinic-connect/authentication"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// DoctorLogin handles the doctor login process
func DoctorLogin(c *gin.Context) {
	var loginReq struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.BindJSON(&loginReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doctor, err := Doctors.DoctorByEmail(c.Request.Context(), loginReq.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(doctor.Password), []byte(loginReq.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := authentication.GenerateDoctorToken(doctor.DoctorID, doctor.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.SetCookie("DoctorAuthorization", token, 3600*24, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Login successful",
		"token":   token,
	})
}

// DoctorLogout clears the doctor session cookie
func DoctorLogout(c *gin.Context) {
	c.SetCookie("DoctorAuthorization", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Logged out successfully",
	})
}

// GetDaySchedule lists the logged-in doctor's appointments for one
// date, optionally narrowed by patient name.
func GetDaySchedule(c *gin.Context) {
	doctorID := c.GetUint("doctor_id")

	date, err := parseDay(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	details, err := Appointments.ForDoctorOnDate(c.Request.Context(), doctorID, date, c.Query("patient"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status": "Success",
		"data":   details,
	})
}
