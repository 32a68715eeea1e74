package main

import (
	"os"

	"github.com/tatianab/abyssus/internal/app"
)

// Running the module root opens the full-screen interface; cmd/game plays
// on plain stdin/stdout unless -tui is given.
func main() {
	os.Exit(app.Main(append([]string{"-tui"}, os.Args[1:]...)))
}
