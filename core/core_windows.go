// Copyright © 2021-2025 The Gomon Project.

package core

import (
	"os"
	"os/signal"
)

// signalChannel returns channel on which OS signals are delivered.
func signalChannel() <-chan os.Signal {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt)
	return signalChan
}
