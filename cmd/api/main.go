package main

import (
	_ "payment_gateway_client/docs"
	"payment_gateway_client/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Payment Gateway Client API
// @version         1.0
// @description     HTTP surface over the SOAP payment gateway client: authorisations, modifications, stored details and notifications.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
