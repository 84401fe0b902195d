package cli

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// Spinner redraws a single status line while a slow step, such as Graphviz
// layout, runs. It stops by itself when its context is cancelled.
type Spinner struct {
	ui      ui
	message string

	ctx    context.Context
	cancel context.CancelFunc
	exited chan struct{}

	mu      sync.Mutex // serializes writes to ui
	once    sync.Once
	started bool
}

// newSpinner creates a spinner bound to ctx. Call Start to draw it.
func newSpinner(ctx context.Context, u ui, message string) *Spinner {
	ctx, cancel := context.WithCancel(ctx)
	return &Spinner{
		ui:      u,
		message: message,
		ctx:     ctx,
		cancel:  cancel,
		exited:  make(chan struct{}),
	}
}

// Start begins the animation in a new goroutine.
func (s *Spinner) Start() {
	s.started = true
	go s.run()
}

func (s *Spinner) run() {
	defer close(s.exited)
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-s.ctx.Done():
			s.clearLine()
			return
		case <-ticker.C:
			frame := spinnerFrames[i%len(spinnerFrames)]
			s.mu.Lock()
			fmt.Fprintf(s.ui.w, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.message))
			s.mu.Unlock()
		}
	}
}

// Stop halts the animation and clears the line. It is safe to call more
// than once.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		s.cancel()
		if s.started {
			<-s.exited
		}
	})
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.ui.w, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}

// StopWithSuccess stops the spinner and prints a success line.
func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	s.ui.success("%s", message)
}

// StopWithError stops the spinner and prints an error line.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	s.ui.error("%s", message)
}

// Cancelled reports whether the spinner has stopped, either through Stop or
// because its parent context ended.
func (s *Spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}
