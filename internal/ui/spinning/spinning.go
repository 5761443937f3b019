// Package spinning shows a spinner on the terminal while a long search runs, and handles
// interruptions (Ctrl+C) so the search can stop cleanly.
package spinning

import (
	"context"
	"fmt"
	"io"
	"k8s.io/klog/v2"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

var (
	ThemeASCII = []rune(`|/-\`)
	ThemeDots  = []rune("⣾⣽⣻⢿⡿⣟⣯⣷")

	// Period between frames of the spinner.
	Period = 250 * time.Millisecond
)

// Spinner draws a theme's frames, one per Period, until Done is called.
type Spinner struct {
	w      io.Writer
	theme  []rune
	wg     sync.WaitGroup
	cancel func()
}

// OnInterrupt captures SIGINT (Ctrl+C) and SIGTERM and calls onInterrupt, typically the
// cancel function of the search context.
//
// If the program is still running after gracePeriod, it resets the terminal and exits.
func OnInterrupt(onInterrupt func(), gracePeriod time.Duration) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		fmt.Fprintln(os.Stderr)
		klog.Errorf("Interrupted (signal %q), stopping search (grace period %s)", sig, gracePeriod)
		if onInterrupt != nil {
			go onInterrupt()
		}
		time.Sleep(gracePeriod)
		ResetTerminal(os.Stdout)
		klog.Exitf("Search didn't stop within %s, exiting.", gracePeriod)
	}()
}

// ResetTerminal makes the cursor visible and restores the default colors.
func ResetTerminal(w io.Writer) {
	_, _ = fmt.Fprint(w, "\033[?25h\033[39;49;0m\n")
}

// New starts a spinner writing to w on a separate goroutine. It stops when Spinner.Done is
// called or ctx is cancelled. If theme is empty, ThemeASCII is used.
func New(ctx context.Context, w io.Writer, theme []rune) *Spinner {
	if len(theme) == 0 {
		theme = ThemeASCII
	}
	s := &Spinner{w: w, theme: theme}
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go s.run(ctx)
	return s
}

func (s *Spinner) run(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(Period)
	defer ticker.Stop()
	_, _ = fmt.Fprint(s.w, "\033[?25l ") // Hide cursor.
	for frame := 0; ; frame++ {
		_, _ = fmt.Fprintf(s.w, "\b%c", s.theme[frame%len(s.theme)])
		select {
		case <-ctx.Done():
			_, _ = fmt.Fprint(s.w, "\b \b\033[?25h") // Erase and restore cursor.
			return
		case <-ticker.C:
		}
	}
}

// Done stops the spinner and waits for it to erase itself. It can be called more than once.
func (s *Spinner) Done() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.wg.Wait()
}
