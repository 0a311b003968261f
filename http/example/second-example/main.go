package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/xy-planning-network/antsy"
	"github.com/xy-planning-network/antsy/host"
	"github.com/xy-planning-network/antsy/http/middleware"
)

const addr = "localhost:8081"

// initShutdown uses a closure to inject dependencies to our handler.
//
// Requesting the endpoint the enclosed function binds to causes the web server
// to shutdown!
func initShutdown(h *host.Host, cancel context.CancelFunc) antsy.Action {
	return func(req *antsy.Request, res *antsy.Response) {
		h.Logger().Debug("see ya!", nil)
		res.Status(http.StatusOK)
		cancel()
	}
}

// hammerTime says when hammer time is, streaming it a piece at a time.
func hammerTime(req *antsy.Request, res *antsy.Response) error {
	res.SetHeader("Content-Type", "text/plain; charset=utf-8")
	if _, err := fmt.Fprint(res.Writer(), "Hammer time is now: "); err != nil {
		return err
	}
	res.Flush()

	_, err := fmt.Fprint(res.Writer(), time.Now().Format("2006-01-02 03:04:05"))
	return err
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// configure the *http.Server directly instead of picking a port.
	h, err := host.New(
		host.WithContext(ctx),
		host.WithMetrics("second_example", "/metrics"),
		host.WithConfigure(func(srv *http.Server) {
			srv.Addr = addr
			srv.ErrorLog = log.New(os.Stderr, "second-example: ", log.LstdFlags)
		}),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	h.Use(middleware.Instrument(h.Metrics()), middleware.RequestID(), middleware.LogRequest(h.Logger()))
	h.Get("/", antsy.HandlerFunc(hammerTime))
	h.Get("/shutdown", initShutdown(h, cancel))

	if err := h.Run(); err != nil {
		fmt.Println(err)
	}
}
