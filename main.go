package main

import (
	"fmt"
	"os"

	"github.com/jetsetilly/touchstick/gui"
	guiEbiten "github.com/jetsetilly/touchstick/gui/ebiten"
	"github.com/jetsetilly/touchstick/joystick"
	"github.com/jetsetilly/touchstick/logger"
	"github.com/jetsetilly/touchstick/monitor"
)

func usage() {
	fmt.Printf("usage: %s [fixed|dynamic|following]\n", os.Args[0])
	os.Exit(10)
}

func main() {
	logger.SetEcho(os.Stderr, false)

	// the starting mode for the joystick. it can be changed at runtime from
	// inside the demo window
	mode := joystick.ModeDynamic
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "fixed":
			mode = joystick.ModeFixed
		case "dynamic":
			mode = joystick.ModeDynamic
		case "following":
			mode = joystick.ModeFollowing
		default:
			usage()
		}
	}

	// buffered channels. this means we don't have to worry about the gui
	// closing before the monitor and vice versa
	endGui := make(chan bool, 1)
	endMonitor := make(chan bool, 1)

	// similarly, the result channels are buffered because we don't know the
	// order in which the gui and monitor will end
	resultGui := make(chan error, 1)
	resultMonitor := make(chan error, 1)

	g := gui.NewGUI()

	go func() {
		resultGui <- guiEbiten.Launch(endGui, g, mode)
		endMonitor <- true
	}()

	go func() {
		resultMonitor <- monitor.Launch(endMonitor, g, os.Stdout)
		endGui <- true
	}()

	if err := <-resultGui; err != nil {
		fmt.Printf("*** %s\n", err)
	}
	if err := <-resultMonitor; err != nil {
		fmt.Printf("*** %s\n", err)
	}
}
