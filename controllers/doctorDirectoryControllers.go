package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// FilterDoctors narrows the doctor directory by name, specialty and
// AM/PM availability, all optional query parameters.
func FilterDoctors(c *gin.Context) {
	name := c.Query("name")
	specialty := c.Query("specialty")
	period := c.Query("time")

	if period != "" && !strings.EqualFold(period, "am") && !strings.EqualFold(period, "pm") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "time must be AM or PM"})
		return
	}

	doctors, err := Doctors.Filter(c.Request.Context(), name, specialty, period)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status": "Success",
		"data":   doctors,
	})
}

// GetAvailableTimeSlots returns a doctor's free slots on a given date.
// An unknown doctor simply has no slots to offer.
func GetAvailableTimeSlots(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid doctor id"})
		return
	}

	date, err := parseDay(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	slots, err := Scheduler.FreeSlots(c.Request.Context(), uint(id), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status": "Success",
		"data":   slots,
	})
}
