// Package logger holds the process-wide logrus logger.
package logger

import (
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// Log is the global logger. It is usable before Init with logrus defaults.
var Log = logrus.New()

var (
	onceMu   sync.Mutex
	onceSeen = mapset.New[string]()
)

// Init configures the global logger.
// level is a logrus level name ("trace", "debug", "info", ...); unknown
// names fall back to info. format "json" selects the JSON formatter,
// anything else the text formatter.
func Init(level, format string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(os.Stdout)
}

// Once logs msg at level the first time it is seen and drops repeats.
// Returns true if the message was written.
func Once(entry *logrus.Entry, level logrus.Level, msg string) bool {
	onceMu.Lock()
	seen := onceSeen.Has(msg)
	if !seen {
		onceSeen.Put(msg)
	}
	onceMu.Unlock()

	if seen {
		return false
	}
	if entry == nil {
		entry = logrus.NewEntry(Log)
	}
	entry.Log(level, msg)
	return true
}

// ResetOnce forgets every message recorded by Once.
func ResetOnce() {
	onceMu.Lock()
	onceSeen = mapset.New[string]()
	onceMu.Unlock()
}
