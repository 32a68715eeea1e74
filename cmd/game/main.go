package main

import (
	"os"

	"github.com/tatianab/abyssus/internal/app"
)

func main() {
	os.Exit(app.Main(os.Args[1:]))
}
