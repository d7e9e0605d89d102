package rtosutil

import _ "net/http/pprof"
import (
	"context"
	"io"
	"net/http"

	"gopkg.in/account-login/ctxlog.v2"
)

func SafeClose(ctx context.Context, closer io.Closer) {
	if err := closer.Close(); err != nil {
		ctxlog.Errorf(ctx, "close: %v", err)
	}
}

func StartDebugServer(ctx context.Context, addr string) (server *http.Server) {
	server = &http.Server{Addr: addr, Handler: nil}
	go func() {
		err := server.ListenAndServe()
		if err != nil {
			ctxlog.Errorf(ctx, "StartDebugServer: %v", err)
		}
	}()
	return
}
