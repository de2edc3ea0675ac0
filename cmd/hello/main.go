// cmd/hello/main.go
package main

import (
	"hello/internal/app"
	"hello/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
