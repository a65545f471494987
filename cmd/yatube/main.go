package main

import (
	"github.com/joho/godotenv"

	"github.com/yatube/yatube-be/cmd/yatube/commands"
)

func main() {
	// a missing .env is fine; the environment itself may be fully set
	_ = godotenv.Load()
	commands.Execute()
}
