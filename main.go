package main

import (
	"virtual-healthcare/configuration"
	"virtual-healthcare/controllers"
	"virtual-healthcare/repository"
	"virtual-healthcare/routes"
	"virtual-healthcare/services"
)

func Init() {
	configuration.ConfigDB()
	configuration.InitRedis()

	credentialService := services.NewCredentialService(
		repository.NewCredentialRepository(configuration.DB),
		repository.NewDoctorRepository(configuration.DB),
	)
	controllers.Init(credentialService)
}

func main() {
	// Perform application initialization
	Init()
	r := routes.SetupRoutes()

	// Run the engine in default port
	if err := r.Run(); err != nil {
		panic(err)
	}
}
