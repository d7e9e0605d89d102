package rtosutil

import (
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/account-login/ctxlog.v2"
)

// Sink receives formatted log lines from Logger.ProcessOne. The line buffer
// is only valid for the duration of the call.
type Sink interface {
	HandleLog(sev Severity, line []byte) error
}

// WriterSink writes lines to an io.Writer.
type WriterSink struct {
	W io.Writer
}

func (s *WriterSink) HandleLog(sev Severity, line []byte) error {
	_, err := s.W.Write(line)
	return errors.Wrap(err, "sink write")
}

// CtxlogSink forwards lines to ctxlog at the matching level.
type CtxlogSink struct {
	Ctx context.Context
}

func (s *CtxlogSink) HandleLog(sev Severity, line []byte) error {
	msg := strings.TrimRight(string(line), "\n")
	switch {
	case sev <= SevDebug:
		ctxlog.Debugf(s.Ctx, "%s", msg)
	case sev == SevInfo:
		ctxlog.Infof(s.Ctx, "%s", msg)
	case sev == SevWarning:
		ctxlog.Warnf(s.Ctx, "%s", msg)
	default:
		ctxlog.Errorf(s.Ctx, "%s", msg)
	}
	return nil
}
