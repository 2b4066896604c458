package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/df07/go-rtw-pathtracer/pkg/renderer"
	"golang.org/x/term"
	"golang.org/x/time/rate"
)

// newProgressReporter redraws a row counter in place on a terminal. Anywhere else
// it logs at most once per second so redirected output stays readable.
func newProgressReporter(w io.Writer) renderer.ProgressFunc {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return terminalProgress(w)
	}
	return loggedProgress(rate.NewLimiter(rate.Every(time.Second), 1))
}

// terminalProgress prints "\r<done>/<total> lines rendered", zero padded to a fixed width
func terminalProgress(w io.Writer) renderer.ProgressFunc {
	return func(p renderer.Progress) {
		width := len(strconv.Itoa(p.Total))
		fmt.Fprintf(w, "\r%0*d/%d lines rendered", width, p.Completed, p.Total)
		if p.Completed == p.Total {
			fmt.Fprintln(w)
		}
	}
}

// loggedProgress logs at Notice so progress shows without -v
func loggedProgress(limiter *rate.Limiter) renderer.ProgressFunc {
	return func(p renderer.Progress) {
		if p.Completed == p.Total || limiter.Allow() {
			logger.Noticef("%d/%d lines rendered", p.Completed, p.Total)
		}
	}
}
