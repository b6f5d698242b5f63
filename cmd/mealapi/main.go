// Package main is the entry point for the application.
//
// @title Meal API
// @version 1.0
// @description School cafeteria menu API
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
package main

import "github.com/sunrintoday/mealapi/cmd/mealapi/cmd"

func main() {
	cmd.Execute()
}
