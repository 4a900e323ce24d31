package tagsource

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// loggerOrDiscard returns l, or a logger that drops everything when l is nil.
func loggerOrDiscard(l *log.Entry) *log.Entry {
	if l != nil {
		return l
	}

	discard := log.New()
	discard.SetOutput(io.Discard)

	return log.NewEntry(discard)
}
