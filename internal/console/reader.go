package console

import (
	"bufio"
	"bytes"
	"io"
)

// escape starts an ANSI sequence, e.g. the arrow keys of a raw terminal.
const escape byte = 0x1b

// LineReader reads player input a line at a time.
type LineReader struct {
	reader *bufio.Reader
}

// NewLineReader wraps r for line-based reading.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{reader: bufio.NewReaderSize(r, 4096)}
}

// ReadLine reads a single line of input. Control characters other than tab
// and ANSI escape sequences are dropped; the trailing \n, \r or \r\n is not
// included.
//
// Postcondition: Returns the next line, or the partial line and an error
// (including io.EOF).
func (lr *LineReader) ReadLine() (string, error) {
	var line bytes.Buffer
	for {
		b, err := lr.reader.ReadByte()
		if err != nil {
			return line.String(), err
		}

		if b == escape {
			lr.skipEscape()
			continue
		}
		if b == '\n' {
			break
		}
		if b == '\r' {
			// Peek ahead: if next is \n, consume it
			next, err := lr.reader.Peek(1)
			if err == nil && len(next) > 0 && next[0] == '\n' {
				_, _ = lr.reader.ReadByte()
			}
			break
		}

		// Filter control characters except tab
		if b < 32 && b != '\t' || b == 127 {
			continue
		}

		line.WriteByte(b)
	}

	return line.String(), nil
}

// skipEscape consumes a CSI sequence after its escape byte has been read.
func (lr *LineReader) skipEscape() {
	next, err := lr.reader.Peek(1)
	if err != nil || len(next) == 0 || next[0] != '[' {
		return
	}
	_, _ = lr.reader.ReadByte()
	for {
		b, err := lr.reader.ReadByte()
		if err != nil || (b >= 0x40 && b <= 0x7e) {
			return
		}
	}
}
