package cmd

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/width"
)

// spinner provides a simple text-based progress indicator.
type spinner struct {
	message string
	out     io.Writer
	stop    chan bool
	done    chan bool
	mu      sync.Mutex
	active  bool
}

func newSpinner(out io.Writer, message string) (s *spinner) {
	s = &spinner{
		message: message,
		out:     out,
		stop:    make(chan bool),
		done:    make(chan bool),
	}
	return s
}

func (s *spinner) start() {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return
	}
	s.active = true
	s.mu.Unlock()

	go func() {
		chars := []string{"|", "/", "-", "\\"}
		i := 0
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()

		fmt.Fprintf(s.out, "%s ", s.message)
		for {
			select {
			case <-s.stop:
				fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", displayWidth(s.message)+2))
				s.done <- true
				return
			case <-ticker.C:
				fmt.Fprintf(s.out, "\r%s %s", s.message, chars[i%len(chars)])
				i++
			}
		}
	}()
}

func (s *spinner) stopSpinner() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	s.stop <- true
	<-s.done

	s.mu.Lock()
	s.active = false
	s.mu.Unlock()
}

// displayWidth counts terminal cells, two for East Asian wide and full-width runes.
func displayWidth(text string) (cells int) {
	for _, r := range text {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			cells += 2
		default:
			cells++
		}
	}
	return cells
}
