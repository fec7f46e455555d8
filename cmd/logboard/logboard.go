package main

import (
	"os"

	"github.com/Egor213/LogBoard/internal/app"
)

func main() {
	os.Exit(app.Execute())
}
