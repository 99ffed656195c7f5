package main

import (
	"log"
	stdos "os"
)

func helper() {
	stdos.Exit(1)
}

func main() {
	defer helper()
	stdos.Exit(2)   // want "direct call os.Exit is not allowed in main function"
	log.Fatal("x")  // want "direct call log.Fatal is not allowed in main function"
	log.Fatalf("y") // want "direct call log.Fatalf is not allowed in main function"
	log.Println("z")
}
