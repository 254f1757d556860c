package controllers

import (
	"errors"
	"net/http"

	"clinic-connect/authentication"
	"clinic-connect/scheduling"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminLogin handles the admin login process
func AdminLogin(c *gin.Context) {
	var loginReq struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.BindJSON(&loginReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, err := Admins.ByUsername(c.Request.Context(), loginReq.Username)
	if err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(loginReq.Password)); err != nil {
		// Seed admins may still carry plaintext passwords. Accept the
		// match once and rewrite the stored credential as a hash.
		if admin.Password != loginReq.Password {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		hashed, hashErr := bcrypt.GenerateFromPassword([]byte(loginReq.Password), bcrypt.DefaultCost)
		if hashErr == nil {
			admin.Password = string(hashed)
			Admins.Save(c.Request.Context(), admin)
		}
	}

	token, err := authentication.GenerateAdminToken(admin.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.SetCookie("AdminAuthorization", token, 3600*24, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Login successful",
		"token":   token,
	})
}

// AdminLogout clears the admin session cookie
func AdminLogout(c *gin.Context) {
	c.SetCookie("AdminAuthorization", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Logged out successfully",
	})
}
