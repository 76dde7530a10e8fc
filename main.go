package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/skyblocklegends/api/cmd/app"
)

// @contact.name   SkyBlock Legends Team
// @contact.url    https://skyblocklegends.net
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
