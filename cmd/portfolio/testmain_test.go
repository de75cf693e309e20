package main

import (
	"os"
	"testing"

	"github.com/joho/godotenv"
)

// TestMain loads the fixture environment so commands can build their config.
func TestMain(m *testing.M) {
	if err := godotenv.Overload("testdata/test.env"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
