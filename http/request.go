package http

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedRequest = errors.New("http: malformed request line")

// Request holds the two request line tokens this server acts on.
// Anything past the first line (headers, body) is never consumed.
type Request struct {
	Method string
	URL    string
}

// Parse reads one request line. A line longer than the reader's buffer
// is truncated there and parsed as read. Fewer than two whitespace
// separated tokens is ErrMalformedRequest; read failures pass through
// untouched.
func (req *Request) Parse(reader *bufio.Reader) error {
	line, _, err := reader.ReadLine()
	if err != nil {
		return err
	}

	parts := strings.Fields(string(line))
	if len(parts) < 2 {
		return fmt.Errorf("%w: %q", ErrMalformedRequest, line)
	}

	req.Method = parts[0]
	req.URL = parts[1]

	return nil
}
