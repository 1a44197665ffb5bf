package engine

// MessageLog is a fixed-size ring of textbox lines
type MessageLog struct {
	lines []string
	head  int
	count int
}

// NewMessageLog creates a log holding at most size lines
func NewMessageLog(size int) *MessageLog {
	if size < 1 {
		size = 1
	}
	return &MessageLog{lines: make([]string, size)}
}

// Append adds a line, evicting the oldest when full
func (l *MessageLog) Append(line string) {
	idx := (l.head + l.count) % len(l.lines)
	if l.count == len(l.lines) {
		l.lines[l.head] = line
		l.head = (l.head + 1) % len(l.lines)
		return
	}
	l.lines[idx] = line
	l.count++
}

// Replace overwrites the newest line, appends if empty
func (l *MessageLog) Replace(line string) {
	if l.count == 0 {
		l.Append(line)
		return
	}
	l.lines[(l.head+l.count-1)%len(l.lines)] = line
}

// Last returns the newest line
func (l *MessageLog) Last() (string, bool) {
	if l.count == 0 {
		return "", false
	}
	return l.lines[(l.head+l.count-1)%len(l.lines)], true
}

// Lines returns lines oldest first
func (l *MessageLog) Lines() []string {
	result := make([]string, l.count)
	for i := 0; i < l.count; i++ {
		result[i] = l.lines[(l.head+i)%len(l.lines)]
	}
	return result
}

// Len returns the number of stored lines
func (l *MessageLog) Len() int {
	return l.count
}

// Clear empties the log
func (l *MessageLog) Clear() {
	l.head, l.count = 0, 0
}
