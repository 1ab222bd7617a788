package core

import (
	"fmt"
	"time"
)

// Version numbers
var MajorVersion = 0
var MinorVersion = 1
var PatchVersion = 0

// Version string
var Version = fmt.Sprintf("%d.%d.%d", MajorVersion, MinorVersion, PatchVersion)

// The time the application started.
var startTime = time.Now()

// Returns the time elapsed since the application started, in seconds.
func Uptime() float64 {
	return time.Since(startTime).Seconds()
}
