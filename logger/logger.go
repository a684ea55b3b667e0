// Package logger is the central log for the application. log entries are
// tagged with the sub-system they originate from and are kept in memory.
// entries can additionally be echoed to an io.Writer as they arrive, see
// SetEcho
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Permission indicates whether the caller is allowed to add to the log.
// functions that want to log in a context where logging may be disallowed
// (eg. during a rewind or a preview emulation) can accept a Permission value
// and pass it on
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow is the permission to use when logging is always acceptable
var Allow Permission = allow{}

type entry struct {
	tag    string
	detail string
}

func (e entry) String() string {
	return fmt.Sprintf("%s: %s", e.tag, e.detail)
}

type central struct {
	crit    sync.Mutex
	entries []entry
	echo    io.Writer
}

var log central

// Log adds a new entry to the central log. detail can be a string, a
// fmt.Stringer or an error
func Log(perm Permission, tag string, detail any) {
	if !perm.AllowLogging() {
		return
	}

	var s string
	switch d := detail.(type) {
	case string:
		s = d
	case fmt.Stringer:
		s = d.String()
	case error:
		s = d.Error()
	default:
		s = fmt.Sprintf("%v", d)
	}

	log.crit.Lock()
	defer log.crit.Unlock()

	// multi-line details become multiple entries with the same tag
	for _, l := range strings.Split(s, "\n") {
		if l == "" {
			continue
		}
		e := entry{tag: tag, detail: l}
		log.entries = append(log.entries, e)
		if log.echo != nil {
			fmt.Fprintln(log.echo, e.String())
		}
	}
}

// Logf adds a new formatted entry to the central log
func Logf(perm Permission, tag string, format string, args ...any) {
	Log(perm, tag, fmt.Sprintf(format, args...))
}

// SetEcho registers an io.Writer to which new log entries are echoed as they
// arrive. a nil writer turns echoing off. if replay is true any existing
// entries are written to the writer immediately
func SetEcho(w io.Writer, replay bool) {
	log.crit.Lock()
	defer log.crit.Unlock()

	log.echo = w
	if w != nil && replay {
		for _, e := range log.entries {
			fmt.Fprintln(w, e.String())
		}
	}
}
