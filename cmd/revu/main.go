package main

import (
	"os"

	"github.com/revulabs/revu/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
