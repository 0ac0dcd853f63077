package session

import "github.com/google/uuid"

// DialogSession is an open conversation with an NPC. Each interact input
// advances one line; advancing past the last line ends the dialog.
type DialogSession struct {
	NPC     uuid.UUID
	Speaker string
	Lines   []string
	Index   int
	QuestID string
}

// Line returns the line currently shown.
func (d *DialogSession) Line() string {
	if d.Done() {
		return ""
	}
	return d.Lines[d.Index]
}

// Advance moves to the next line and reports whether the dialog is over.
func (d *DialogSession) Advance() bool {
	if !d.Done() {
		d.Index++
	}
	return d.Done()
}

// Done reports whether every line has been shown.
func (d *DialogSession) Done() bool {
	return d.Index >= len(d.Lines)
}
