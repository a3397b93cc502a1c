// cmd/herd/main.go
package main

import (
	"herd/internal/app"
	"herd/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
