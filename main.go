package main

import (
	"os"

	"github.com/kimjuyoung1127/PuppyVill/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
