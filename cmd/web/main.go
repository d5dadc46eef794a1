package main

import "unigig_backend/internal/app"

func main() {
	app.Run()
}
