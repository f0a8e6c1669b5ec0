// Package record runs the recorder inline: the stopwatch starts on launch,
// ticks once per second, and the interval becomes an event on stop.
package record

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/tempo/pkg/printers"
	"tableflip.dev/tempo/pkg/state"
	"tableflip.dev/tempo/pkg/viewmodel"
)

// Record owns one recorder session. Enter stops the recording and persists
// it; cancelling the context abandons it without creating anything.
type Record struct {
	Title string
	Store *state.Store
	In    io.Reader
}

func (n *Record) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not record, no store")
	}

	in := n.In
	if in == nil {
		in = os.Stdin
	}

	rec := state.Recorder{}
	rec.Start(time.Now())

	f := color.New(color.Faint)
	r := color.New(color.FgRed)
	_, _ = f.Println("recording, press enter to stop")

	stopped := make(chan struct{})
	go func() {
		_, _ = bufio.NewReader(in).ReadString('\n')
		close(stopped)
	}()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Abandon the session: no stop, no event.
			fmt.Println("")
			return ctx.Err()

		case now := <-ticker.C:
			_, _ = r.Print("\r⏺ ")
			fmt.Print(viewmodel.Clock(rec.Elapsed(now)))

		case <-stopped:
			start, end, ok := rec.Stop(time.Now())
			if !ok {
				return nil
			}
			fmt.Print("\r")

			n.Store.CreateFromRecorder(ctx, start, end, n.Title)
			if err := n.Store.Await(ctx); err != nil {
				return err
			}

			snap := n.Store.Snapshot()
			pp := printers.PrettyPrint{ShowID: true}
			if len(snap.Order) > 0 {
				last := snap.Order[len(snap.Order)-1]
				pp.Events(snap.ByID[last])
			}
			return nil
		}
	}
}
