package util

import (
	"time"

	"github.com/Scusemua/go-utils/config"
)

/*
	usage:

	func foo() {
		defer TimeThis(Msg("foo"))
		// code to measure
	}

*/

func Msg(msg string) (string, time.Time) {
	return msg, time.Now()
}

// TimeThis logs the time since start at debug level
func TimeThis(msg string, start time.Time) {
	config.GetLogger("timer ").Debug("%v: %v", msg, time.Since(start))
}
