package main

import (
	"os"

	"github.com/vantagepanel/bootstrap/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
