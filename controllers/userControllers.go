package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"clinic-connect/authentication"
	"clinic-connect/configuration"
	"clinic-connect/models"
	"clinic-connect/scheduling"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// PatientSignup stages the signup data in Redis and mails an OTP. The
// record is only persisted once the OTP is verified.
func PatientSignup(c *gin.Context) {
	var patient models.Patient
	if err := c.BindJSON(&patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validate.Struct(patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := Patients.ByEmail(c.Request.Context(), patient.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"Message": "Patient already exists"})
		return
	} else if !errors.Is(err, scheduling.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(patient.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	patient.Password = string(hashedPassword)

	otp := authentication.GenerateOTP(6)
	if err := authentication.SendOTPByEmail(otp, patient.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send OTP", "data": err.Error()})
		return
	}

	patientData, err := json.Marshal(&patient)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to marshal patient", "data": err.Error()})
		return
	}
	if err := configuration.SetRedis(fmt.Sprintf("user:%s", patient.Email), patientData, time.Minute*5); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Status": false, "Data": nil, "Message": "Internal server error"})
		return
	}
	if err := configuration.SetRedis(fmt.Sprintf("otp:%s", patient.Email), []byte(otp), time.Minute*5); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Status": false, "Data": nil, "Message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Message": "Otp generated successfully. Proceed to verification page>>>"})
}

// UserOtpVerify checks the submitted OTP against the staged one and,
// on a match, persists the staged signup as a patient record.
func UserOtpVerify(c *gin.Context) {
	var req models.VerifyOTP
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stagedOTP, err := configuration.GetRedis(fmt.Sprintf("otp:%s", req.Email))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "OTP expired or not found"})
		return
	}
	if !authentication.ValidateOTP(req.Otp, stagedOTP) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid OTP"})
		return
	}

	patientData, err := configuration.GetRedis(fmt.Sprintf("user:%s", req.Email))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Signup session expired"})
		return
	}

	var patient models.Patient
	if err := json.Unmarshal([]byte(patientData), &patient); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to unmarshal patient"})
		return
	}

	if err := Patients.Create(c.Request.Context(), &patient); err != nil {
		if errors.Is(err, scheduling.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"Message": "Patient already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	configuration.DelRedis(fmt.Sprintf("otp:%s", req.Email))
	configuration.DelRedis(fmt.Sprintf("user:%s", req.Email))

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Signup successful. Please login",
	})
}

// PatientLogin handles the patient login process
func PatientLogin(c *gin.Context) {
	var loginReq struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.BindJSON(&loginReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient, err := Patients.ByEmail(c.Request.Context(), loginReq.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(patient.Password), []byte(loginReq.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := authentication.GeneratePatientToken(patient.PatientID, patient.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.SetCookie("PatientAuthorization", token, 3600*24, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Login successful",
		"token":   token,
	})
}

// PatientLogout clears the patient session cookie
func PatientLogout(c *gin.Context) {
	c.SetCookie("PatientAuthorization", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Logged out successfully",
	})
}

// GetProfile returns the logged-in patient's own record
func GetProfile(c *gin.Context) {
	patientID := c.GetUint("patientID")
	patient, err := Patients.ByID(c.Request.Context(), patientID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"Message": "Patient not found"})
		return
	}
	patient.Password = ""
	c.JSON(http.StatusOK, gin.H{
		"Status": "Success",
		"data":   patient,
	})
}
