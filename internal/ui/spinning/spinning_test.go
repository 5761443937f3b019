package spinning

import (
	"bytes"
	"context"
	"github.com/stretchr/testify/require"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer is a bytes.Buffer safe for the spinner goroutine and the test to use.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinner(t *testing.T) {
	var buf syncBuffer
	s := New(context.Background(), &buf, nil)
	time.Sleep(10 * time.Millisecond)
	s.Done()
	s.Done()
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "\033[?25l \b|"), "got %q", out)
	require.True(t, strings.HasSuffix(out, "\b \b\033[?25h"), "got %q", out)
}

func TestSpinnerCancelledContext(t *testing.T) {
	var buf syncBuffer
	ctx, cancel := context.WithCancel(context.Background())
	s := New(ctx, &buf, ThemeDots)
	cancel()
	s.Done()
	require.Contains(t, buf.String(), string(ThemeDots[0]))
}
