package main

import (
	"log"

	"contactbook/internal/config"
	"contactbook/internal/database"
	"contactbook/internal/handlers"
	"contactbook/internal/store/mongostore"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureUserIndexes(db); err != nil {
		log.Println("user index warning:", err)
	}
	if err := database.EnsureContactIndexes(db); err != nil {
		log.Println("contact index warning:", err)
	}
	if err := database.EnsureAddressIndexes(db); err != nil {
		log.Println("address index warning:", err)
	}

	r := handlers.Router(mongostore.New(db))

	if err := r.Run(":" + config.AppEnv.Port); err != nil {
		log.Fatal(err)
	}
}
