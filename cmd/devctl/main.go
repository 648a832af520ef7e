package main

import (
	"os"

	"github.com/iorg-s/delivery-backend/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
