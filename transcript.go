package infographic

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

// Transcript note tags carried by diagnostic records.
const (
	noteFallbackUsed  = "FALLBACK_USED"
	noteAPIFallback   = "API_FALLBACK"
	noteParseFallback = "JSON_PARSE_FALLBACK"
	noteFatalError    = "FATAL_ERROR"
)

// Transcript is an append-only diagnostic log of raw exchanges with the
// remote service. The file is opened, appended and closed on every write; no
// handle is retained between records. It is write-only: nothing in the
// pipeline reads it back.
type Transcript struct {
	path string
	log  *slog.Logger
}

// NewTranscript returns a transcript appending to the file at path.
func NewTranscript(path string) *Transcript {
	return &Transcript{path: path, log: slog.Default()}
}

// Record appends one delimited block with a timestamp, an optional note tag,
// the original user text, and the raw or error output. A nil transcript is a
// no-op, and write failures are logged rather than propagated.
func (t *Transcript) Record(userText, rawOutput, note string) {
	if t == nil || t.path == "" {
		return
	}

	f, err := os.OpenFile(t.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		t.log.Error("failed to open transcript", "path", t.path, "error", err)
		return
	}
	defer f.Close()

	var b strings.Builder
	b.WriteString("\n==== " + time.Now().Format(time.RFC3339) + " ====\n")
	if note != "" {
		b.WriteString("NOTE: " + note + "\n")
	}
	b.WriteString("USER INPUT:\n" + userText + "\n")
	b.WriteString("RAW OUTPUT:\n" + rawOutput + "\n")

	if _, err := f.WriteString(b.String()); err != nil {
		t.log.Error("failed to write transcript record", "path", t.path, "error", err)
	}
}
