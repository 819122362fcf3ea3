package main

import (
	"github.com/spooltrack/spooltrack/internal/cli"
)

func main() {
	cli.Execute()
}
