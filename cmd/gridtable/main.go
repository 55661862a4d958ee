package main

import (
	"os"
	"runtime"

	"github.com/go-theft-auto/gridtable/internal/cmd"
)

func init() {
	// GLFW must run on the main thread for the view command.
	runtime.LockOSThread()
}

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
