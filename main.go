package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/usv-events/client-go/cmd/app"
)

func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
