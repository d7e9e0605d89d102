package rtosutil

import (
	"fmt"
	"sync"
	"time"
)

type Severity uint32

const (
	SevTrace Severity = iota
	SevDebug
	SevInfo
	SevWarning
	SevError
	SevFatal
)

func (s Severity) String() string {
	switch s {
	case SevTrace:
		return "TRACE"
	case SevDebug:
		return "DEBUG"
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARN"
	case SevError:
		return "ERROR"
	case SevFatal:
		return "FATAL"
	default:
		return "?????"
	}
}

// logRecord is a pooled, formatted line. The embedded Node threads it through
// the pool free list and the drain queue never holds more than the pool size.
type logRecord struct {
	Node[*logRecord]
	sev Severity
	str StackString
}

// Logger formats messages into pooled fixed-size records and queues them for
// a drainer. Log never blocks and never allocates per message: when the
// record pool is exhausted the message is dropped and counted.
//
// Producers and the drainer may run on different goroutines; a mutex guards
// the pool and queue.
type Logger struct {
	mu      sync.Mutex
	pool    *Pool[*logRecord]
	queue   *Queue[*logRecord]
	sink    Sink
	start   time.Time
	dropped uint64
}

func NewLogger() *Logger {
	lg := &Logger{start: time.Now()}

	items := make([]*logRecord, kLogRecords)
	for i := range items {
		items[i] = &logRecord{}
		items[i].str = StackString{buf: make([]byte, 0, kRecordCap)}
	}
	lg.pool = NewPool(items)
	lg.queue = NewQueue[*logRecord](kLogRecords)
	return lg
}

func (lg *Logger) SetSink(sink Sink) {
	lg.mu.Lock()
	lg.sink = sink
	lg.mu.Unlock()
}

// Dropped returns the number of messages lost to pool or queue exhaustion.
func (lg *Logger) Dropped() uint64 {
	lg.mu.Lock()
	defer lg.mu.Unlock()
	return lg.dropped
}

// Log formats a line as [SSSSSSSS.cc][SEV][module] msg and queues it.
// Reports false if the message was dropped. Lines longer than the record
// capacity are silently truncated.
func (lg *Logger) Log(sev Severity, module string, format string, args ...interface{}) bool {
	lg.mu.Lock()
	r, ok := lg.pool.Acquire()
	if !ok {
		lg.dropped++
		lg.mu.Unlock()
		return false
	}
	uptime := time.Since(lg.start)
	lg.mu.Unlock()

	// record is exclusively ours until pushed, format outside the lock
	r.sev = sev
	r.str.Reset()
	secs := uint64(uptime / time.Second)
	centis := uint64(uptime % time.Second / (10 * time.Millisecond))
	fmt.Fprintf(&r.str, "[%08d.%02d][%s][%s] ", secs, centis, sev, module)
	fmt.Fprintf(&r.str, format, args...)
	r.str.AppendByte('\n')

	lg.mu.Lock()
	defer lg.mu.Unlock()
	if !lg.queue.Push(r) {
		lg.pool.Release(r)
		lg.dropped++
		return false
	}
	return true
}

// ProcessOne hands the oldest queued record to the sink and recycles it.
// Reports whether a record was processed. The record is recycled even when
// the sink fails.
func (lg *Logger) ProcessOne() (bool, error) {
	lg.mu.Lock()
	r, ok := lg.queue.Pop()
	sink := lg.sink
	lg.mu.Unlock()
	if !ok {
		return false, nil
	}

	var err error
	if sink != nil {
		err = sink.HandleLog(r.sev, r.str.Bytes())
	}

	lg.mu.Lock()
	lg.pool.Release(r)
	lg.mu.Unlock()
	return true, err
}

// Drain processes queued records until the queue is empty. Returns the number
// of records processed and the first sink error encountered; draining
// continues past errors so records are always recycled.
func (lg *Logger) Drain() (int, error) {
	n := 0
	var first error
	for {
		ok, err := lg.ProcessOne()
		if !ok {
			return n, first
		}
		n++
		if err != nil && first == nil {
			first = err
		}
	}
}
