package http

import (
	"bufio"
	"strconv"
)

// writeResponse frames a response as a bare status line followed by the
// body. No headers are emitted, not even Content-Length; closing the
// connection delimits the body. Flush surfaces the first write error.
func writeResponse(writer *bufio.Writer, status uint16, body []byte) error {
	writer.WriteString("HTTP/1.1 ")
	writer.WriteString(strconv.Itoa(int(status)))
	writer.WriteByte(' ')
	writer.WriteString(StatusText(status))
	writer.WriteString("\r\n\r\n")
	writer.Write(body)

	return writer.Flush()
}
