package main

import (
	"github.com/mnprivacy/shield/cmd"
)

func main() {
	cmd.Execute()
}
