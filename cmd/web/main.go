package main

import "jobboard/internal/app"

func main() {
	app.Run()
}
