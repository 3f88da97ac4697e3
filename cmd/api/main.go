package main

import (
	"log"
	"os"
	"strconv"

	"stockportfolio/cmd"
)

const defaultPort = 5001

func main() {
	port := defaultPort
	if p, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		port = p
	}

	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	err = apiHandler.StartApi(port)
	if err != nil {
		log.Fatal(err)
	}
}
