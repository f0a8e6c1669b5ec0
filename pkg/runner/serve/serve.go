package serve

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"tableflip.dev/tempo/pkg/server"
	"tableflip.dev/tempo/pkg/store"
)

// Serve runs the bundled events service until the context is cancelled.
type Serve struct {
	Addr        string
	Persistence store.Persistence
}

func (n *Serve) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not serve, no persistence")
	}

	s := &server.Server{Persistence: n.Persistence}
	srv := &http.Server{
		Addr:    n.Addr,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("serving events on %s", n.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
