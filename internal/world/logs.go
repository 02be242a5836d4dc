package world

import "fmt"

// DefaultLogCap is how many debug messages are kept by default.
const DefaultLogCap = 10

// Logs is a bounded buffer of debug messages; once full, each new message
// evicts the oldest.
type Logs struct {
	Buffer []string
}

// Init allocates the buffer with the given capacity, which must be positive.
func (logs *Logs) Init(logCap int) {
	if logCap < 1 {
		logCap = DefaultLogCap
	}
	logs.Buffer = make([]string, 0, logCap)
}

// Log formats and appends a log message to the buffer, discarding the oldest
// message if full; the formatted message is returned.
func (logs *Logs) Log(mess string, args ...interface{}) string {
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	if cap(logs.Buffer) == 0 {
		logs.Init(DefaultLogCap)
	}
	if len(logs.Buffer) < cap(logs.Buffer) {
		logs.Buffer = append(logs.Buffer, mess)
	} else {
		copy(logs.Buffer, logs.Buffer[1:])
		logs.Buffer[len(logs.Buffer)-1] = mess
	}
	return mess
}

// Clear discards every message, keeping capacity.
func (logs *Logs) Clear() {
	logs.Buffer = logs.Buffer[:0]
}

// Len returns how many messages are held.
func (logs Logs) Len() int { return len(logs.Buffer) }

// Lines returns a copy of the held messages, oldest first.
func (logs Logs) Lines() []string {
	return append([]string(nil), logs.Buffer...)
}
