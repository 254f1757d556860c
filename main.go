package main

import (
	"clinic-connect/configuration"
	"clinic-connect/controllers"
	"clinic-connect/routes"
)

func Init() {
	configuration.ConfigDB()
	configuration.InitRedis()
	controllers.Init()
}

func main() {
	//Perform application initialization
	Init()
	r := routes.SetupRoutes()

	//Run the engine in default port
	if err := r.Run(); err != nil {
		panic(err)
	}
}
