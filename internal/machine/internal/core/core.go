// Package core holds the machine's state records behind a package boundary.
//
// The fields of Stored and Ready are reachable only inside this package. The
// transition layer gets in through EnterStored/EnterReady and out through
// Exit, so every transition necessarily passes the entry constructor of its
// destination and the exit procedure of its source. Nothing else can read,
// copy, or rebuild a state's data.
package core

import "github.com/lockstep-sh/stowctl/pkg/log"

var logger log.Logger = log.NewNoopLogger()

// SetLogger installs the logger used for residency diagnostics.
// Passing nil restores the default, which discards them.
func SetLogger(l log.Logger) {
	if l == nil {
		l = log.NewNoopLogger()
	}
	logger = l
}
