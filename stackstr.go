package rtosutil

// StackString is a string buffer with capacity fixed at construction.
// Writes past the capacity are dropped and recorded via Truncated.
// It implements io.Writer so fmt.Fprintf can format into it without growing it.
type StackString struct {
	buf       []byte
	truncated bool
}

func NewStackString(capacity int) *StackString {
	return &StackString{buf: make([]byte, 0, capacity)}
}

func (s *StackString) Write(p []byte) (int, error) {
	room := cap(s.buf) - len(s.buf)
	if room < len(p) {
		s.truncated = true
		s.buf = append(s.buf, p[:room]...)
	} else {
		s.buf = append(s.buf, p...)
	}
	// report full consumption so fmt keeps formatting the rest of the line
	return len(p), nil
}

func (s *StackString) AppendByte(c byte) {
	if len(s.buf) == cap(s.buf) {
		s.truncated = true
		return
	}
	s.buf = append(s.buf, c)
}

func (s *StackString) Reset() {
	s.buf = s.buf[:0]
	s.truncated = false
}

func (s *StackString) Len() int {
	return len(s.buf)
}

func (s *StackString) Cap() int {
	return cap(s.buf)
}

func (s *StackString) Truncated() bool {
	return s.truncated
}

// Bytes returns the buffered content. Valid until the next Write or Reset.
func (s *StackString) Bytes() []byte {
	return s.buf
}

func (s *StackString) String() string {
	return string(s.buf)
}
