package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/suburbanembedded/rtosutil"
	"gopkg.in/account-login/ctxlog.v2"
)

func main() {
	// logging
	log.SetFlags(log.Flags() | log.Lmicroseconds)

	// ctx
	ctx := context.Background()

	// args
	out := flag.String("out", "", "write log lines to this file instead of stderr")
	lines := flag.Int("lines", 100, "emit this many lines")
	interval := flag.Duration("interval", 10*time.Millisecond, "delay between lines")
	debugServerPtr := flag.String("debug", "", "debug server addr")
	flag.Parse()

	if *debugServerPtr != "" {
		_ = rtosutil.StartDebugServer(ctx, *debugServerPtr)
	}

	// sink
	lg := rtosutil.NewLogger()
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			ctxlog.Fatal(ctx, err)
			return
		}
		defer rtosutil.SafeClose(ctx, f)
		lg.SetSink(&rtosutil.WriterSink{W: f})
	} else {
		lg.SetSink(&rtosutil.CtxlogSink{Ctx: ctx})
	}

	// emit and drain
	for i := 0; i < *lines; i++ {
		sev := rtosutil.SevInfo
		if i%10 == 0 {
			sev = rtosutil.SevWarning
		}
		if !lg.Log(sev, "t-logger", "line %v of %v", i, *lines) {
			ctxlog.Warnf(ctx, "dropped line %v", i)
		}
		if _, err := lg.Drain(); err != nil {
			ctxlog.Errorf(ctx, "drain: %v", err)
		}
		time.Sleep(*interval)
	}

	ctxlog.Infof(ctx, "done, dropped %v", lg.Dropped())
}
