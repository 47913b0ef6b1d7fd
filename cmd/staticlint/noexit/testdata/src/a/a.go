package main

import (
	"log"
	"os"
)

func helper() {
	os.Exit(2)
}

func main() {
	defer func() {
		os.Exit(3)
	}()
	helper()
	os.Exit(1)      // want "вызов os.Exit в функции main запрещён"
	log.Fatal("x")  // want "вызов log.Fatal в функции main запрещён"
	log.Fatalf("x") // want "вызов log.Fatalf в функции main запрещён"
}
