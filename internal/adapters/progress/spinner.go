package progress

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/mkt/internal/usecase"
)

// SpinnerSink shows a spinner while use cases wait on the chain. Without a
// terminal it stays quiet apart from Info and Error messages.
type SpinnerSink struct {
	out         io.Writer
	interactive bool
	mu          sync.Mutex
	spinner     *spinner.Spinner
}

// NewSpinnerSink creates a progress sink writing to out
func NewSpinnerSink(out io.Writer, interactive bool) *SpinnerSink {
	return &SpinnerSink{
		out:         out,
		interactive: interactive,
	}
}

// OnProgress handles progress events
func (s *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if !s.interactive {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !event.Spinner {
		s.stop()
		return
	}

	if s.spinner == nil {
		s.spinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.spinner.Writer = s.out
		_ = s.spinner.Color("cyan", "bold")
	}
	s.spinner.Suffix = " " + eventLabel(event)
	if !s.spinner.Active() {
		s.spinner.Start()
	}
}

func eventLabel(event usecase.ProgressEvent) string {
	if event.Total > 0 {
		return fmt.Sprintf("[%d/%d] %s", event.Current, event.Total, event.Message)
	}
	return event.Message
}

// Info prints an info message
func (s *SpinnerSink) Info(message string) {
	s.print(color.New(color.FgCyan), message)
}

// Error prints an error message
func (s *SpinnerSink) Error(message string) {
	s.print(color.New(color.FgRed), message)
}

// print pauses the spinner so the message lands on its own line
func (s *SpinnerSink) print(c *color.Color, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wasActive := s.spinner != nil && s.spinner.Active()
	if wasActive {
		s.spinner.Stop()
	}
	c.Fprintln(s.out, message)
	if wasActive {
		s.spinner.Start()
	}
}

func (s *SpinnerSink) stop() {
	if s.spinner != nil && s.spinner.Active() {
		s.spinner.Stop()
	}
}

var _ usecase.ProgressSink = (*SpinnerSink)(nil)
