package coze

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// sseFrame is one dispatched server-sent event.
type sseFrame struct {
	Event string
	Data  string
}

// sseReader reads frames one at a time; it never buffers more than the
// frame being assembled.
type sseReader struct {
	r *bufio.Reader
}

func newSSEReader(r io.Reader) *sseReader {
	return &sseReader{r: bufio.NewReader(r)}
}

// Next returns the next frame, or io.EOF when the body ends with no pending
// frame.
func (s *sseReader) Next() (sseFrame, error) {
	var (
		frame   sseFrame
		data    []string
		pending bool
	)
	for {
		line, err := s.r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return sseFrame{}, err
		}
		eof := errors.Is(err, io.EOF)
		line = strings.TrimRight(line, "\r\n")

		if line == "" {
			if pending {
				frame.Data = strings.Join(data, "\n")
				return frame, nil
			}
			if eof {
				return sseFrame{}, io.EOF
			}
			continue
		}

		if !strings.HasPrefix(line, ":") {
			field, value, _ := strings.Cut(line, ":")
			value = strings.TrimPrefix(value, " ")
			switch field {
			case "event":
				frame.Event = value
				pending = true
			case "data":
				data = append(data, value)
				pending = true
			}
		}

		if eof {
			if pending {
				frame.Data = strings.Join(data, "\n")
				return frame, nil
			}
			return sseFrame{}, io.EOF
		}
	}
}

// readAllFrames parses a complete SSE body.
func readAllFrames(body string) ([]sseFrame, error) {
	r := newSSEReader(strings.NewReader(body))
	var frames []sseFrame
	for {
		f, err := r.Next()
		if errors.Is(err, io.EOF) {
			return frames, nil
		}
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
}
