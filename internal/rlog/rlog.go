// Package rlog prints progress and status messages with plain fmt calls,
// matching the teacher's own style (no structured logging library appears
// anywhere in the example pack — every CLI entry point there reaches for
// fmt.Printf/fmt.Println directly, e.g.
// _examples/mirstar13-3d-graphics/main.go). A progress bar is the one piece
// original_source/main.c:update_progress_bar carries that's worth keeping:
// it is reproduced here against a time.Duration/time.Time elapsed clock
// instead of clock_t.
package rlog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

const barWidth = 30

// ProgressBar renders a single-line, carriage-return-updated progress bar
// to w, matching original_source/main.c:update_progress_bar's layout and
// ETA estimate (elapsed * total / done, minus elapsed).
func ProgressBar(w io.Writer, done, total int, start time.Time) {
	if total <= 0 {
		return
	}
	pos := barWidth * done / total

	var bar strings.Builder
	bar.WriteByte('[')
	for i := 0; i < barWidth; i++ {
		switch {
		case i < pos:
			bar.WriteByte('=')
		case i == pos:
			bar.WriteByte('>')
		default:
			bar.WriteByte(' ')
		}
	}
	bar.WriteByte(']')

	progress := float64(done) / float64(total) * 100
	elapsed := time.Since(start).Seconds()
	estimatedTotal := elapsed * float64(total) / float64(done)
	remaining := estimatedTotal - elapsed

	fmt.Fprintf(w, "\r%s %.1f%% | Frame %d/%d | %.1fs elapsed | %.1fs remaining",
		bar.String(), progress, done, total, elapsed, remaining)

	if done == total {
		fmt.Fprintln(w)
	}
}

// Printf and Println mirror the teacher's direct fmt calls for ordinary
// status output, kept as named wrappers so callers don't reach for os.Stdout
// themselves.
func Printf(format string, args ...any) { fmt.Fprintf(os.Stdout, format, args...) }
func Println(args ...any)               { fmt.Fprintln(os.Stdout, args...) }

// Errorf reports a fatal-class message to stderr without exiting; the
// caller decides whether to os.Exit.
func Errorf(format string, args ...any) { fmt.Fprintf(os.Stderr, format, args...) }
