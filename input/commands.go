package input

import (
	"bufio"
	"io"
	"strings"
)

// Commands sends each non-blank line read from r, trimmed, on the returned
// channel. The channel is closed when r is exhausted.
func Commands(r io.Reader) <-chan string {
	ch := make(chan string)

	go func() {
		defer close(ch)

		s := bufio.NewScanner(r)
		for s.Scan() {
			line := strings.TrimSpace(s.Text())
			if line != "" {
				ch <- line
			}
		}

		if err := s.Err(); err != nil {
			log.WithError(err).Warn("reading commands")
		}
	}()

	return ch
}
