package routes

import (
	"clinic-connect/authentication"
	"clinic-connect/controllers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes() *gin.Engine {
	r := gin.Default()

	// public routes
	r.POST("/users/signup", controllers.PatientSignup)
	r.POST("/users/verify", controllers.UserOtpVerify)
	r.POST("/users/login", controllers.PatientLogin)
	r.GET("/doctors", controllers.FilterDoctors)
	r.GET("/doctors/:id", controllers.GetDoctorByID)
	r.GET("/doctors/:id/available-slots", controllers.GetAvailableTimeSlots)

	// patient routes
	user := r.Group("/user")
	user.Use(authentication.PatientAuthMiddleware())
	{
		user.GET("/logout", controllers.PatientLogout)
		user.GET("/profile", controllers.GetProfile)
		user.POST("/book/appointment", controllers.BookAppointment)
		user.PATCH("/update/appointment/:id", controllers.UpdateAppointment)
		user.POST("/cancel/appointment/:id", controllers.CancelAppointment)
		user.GET("/appointment/history", controllers.GetAppointmentHistory)
		user.GET("/prescription/:id", controllers.GetPrescription)
	}

	// admin routes
	r.POST("/admin/login", controllers.AdminLogin)

	admin := r.Group("/admin")
	admin.Use(authentication.AdminAuthMiddleware())
	{
		admin.POST("/logout", controllers.AdminLogout)
		admin.POST("/add/doctor", controllers.AddDoctor)
		admin.PATCH("/update/doctor/:id", controllers.UpdateDoctor)
		admin.POST("/remove/doctor/:id", controllers.RemoveDoctor)
		admin.GET("/view/doctors", controllers.ViewDoctors)
		admin.GET("/view/doctor/:id", controllers.GetDoctorByID)
	}

	// doctor routes
	r.POST("/doctor/login", controllers.DoctorLogin)

	doctor := r.Group("/doctor")
	doctor.Use(authentication.DoctorAuthMiddleware())
	{
		doctor.GET("/logout", controllers.DoctorLogout)
		doctor.GET("/schedule", controllers.GetDaySchedule)
		doctor.POST("/add/prescription", controllers.AddPrescription)
		doctor.GET("/prescription/:id", controllers.GetPrescription)
	}

	return r
}
