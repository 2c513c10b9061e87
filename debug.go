package quadra

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// logger receives every diagnostic the package emits. Defaults to the
// logrus standard logger.
var logger log.FieldLogger = log.StandardLogger()

// SetLogger redirects package diagnostics. Passing nil restores the logrus
// standard logger.
func SetLogger(l log.FieldLogger) {
	if l == nil {
		l = log.StandardLogger()
	}
	logger = l
}

// globalDebug mirrors the most recently set Game debug flag so that node
// operations (which lack a Game pointer) can check it cheaply.
var globalDebug bool

// debugCheckDestroyed panics with a descriptive message when a destroyed
// gizmo is used in a tree operation. Only called in debug mode.
func debugCheckDestroyed(g *Gizmo, op string) {
	if g.destroyed {
		panic(fmt.Sprintf("quadra debug: %s on destroyed node", op))
	}
}

// debugMaxGroupSize is the member count above which debug mode warns.
const debugMaxGroupSize = 1000

func debugCheckGroupSize(g *Group) {
	if len(g.members) > debugMaxGroupSize {
		logger.WithFields(log.Fields{
			"members":   len(g.members),
			"threshold": debugMaxGroupSize,
		}).Warn("quadra: group is unusually large")
	}
}

// debugLogFrame logs the backend counters for one frame.
func debugLogFrame(frame uint64, stats BackendStats) {
	logger.WithFields(log.Fields{
		"frame":   frame,
		"allocs":  stats.Allocs,
		"uploads": stats.Uploads,
		"draws":   stats.Draws,
	}).Debug("quadra: frame stats")
}
