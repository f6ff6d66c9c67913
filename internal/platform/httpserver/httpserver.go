package httpserver

import (
	"net/http"
	"time"
)

// New builds the agent's HTTP server. The write timeout leaves headroom for
// ledger submissions that ride out the read retry window before replying.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
