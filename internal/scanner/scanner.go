package scanner

import (
	"io"
	"slices"
)

// Pos is a position in the input, 0-based.
type Pos struct {
	Line int
	Col  int
}

// A Scanner is the single read cursor over the byte source.  It keeps a
// bounded buffer of unread bytes, refilling it from the reader only when the
// buffer is exhausted, and can record the span of the token currently being
// read.  It keeps no history beyond a one byte look-back.
type Scanner struct {
	reader io.Reader
	buf    []byte

	// First unfilled position in buf.
	// 0 <= fillIndex <= len(buf)
	fillIndex int

	// Current read position in buf.
	// 0 <= currentIndex <= fillIndex
	currentIndex int

	// Line / column of the current and previous positions.
	currentPos, prevPos Pos

	// Start of the token being recorded, -1 when not recording.  A value of
	// 0 means earlier parts of the token may have been evicted from the
	// buffer into tokenParts.
	tokenStartIndex int

	// Token prefixes that no longer fit in the read buffer.
	tokenParts [][]byte

	err error

	// Number of EOFs read so far, so that Back works at the end of input.
	eofCount int
}

const (
	lookBackSize             = 1
	maxConsecutiveEmptyReads = 100
	defaultBufSize           = 8192
)

// EOF is returned by Read and Peek once the source is exhausted.  It is not a
// valid byte in UTF-8 encoded input.
const EOF byte = 0xFF

// NewScanner returns a scanner reading from reader with the default buffer
// size.
func NewScanner(reader io.Reader) *Scanner {
	return NewScannerSize(reader, defaultBufSize)
}

// NewScannerSize returns a scanner reading from reader with a buffer of the
// given size.
func NewScannerSize(reader io.Reader, size int) *Scanner {
	return &Scanner{
		reader:          reader,
		buf:             make([]byte, size),
		tokenStartIndex: -1,
		prevPos:         Pos{Line: -1},
	}
}

func (s *Scanner) fillBuf() {
	if s.fillIndex == len(s.buf) {
		var baseIndex int
		// When recording a token, shift the buffer so the recorded span stays
		// inside it if possible, else spill the evicted prefix to tokenParts.
		if s.tokenStartIndex > 0 {
			baseIndex = s.tokenStartIndex
			s.tokenStartIndex = 0
		} else if s.currentIndex >= lookBackSize {
			baseIndex = s.currentIndex - lookBackSize
			if s.tokenStartIndex >= 0 {
				// tokenStartIndex is 0 here
				evicted := make([]byte, baseIndex)
				copy(evicted, s.buf)
				s.tokenParts = append(s.tokenParts, evicted)
			}
		}
		if baseIndex > 0 {
			copy(s.buf, s.buf[baseIndex:s.fillIndex])
			s.fillIndex -= baseIndex
			s.currentIndex -= baseIndex
		}
	}
	for i := maxConsecutiveEmptyReads; i > 0; i-- {
		n, err := s.reader.Read(s.buf[s.fillIndex:])
		s.fillIndex += n
		if err != nil {
			s.err = err
			return
		}
		if n > 0 {
			return
		}
	}
	s.err = io.ErrNoProgress
}

// Read consumes and returns the next byte.  Once the source is exhausted it
// returns EOF forever after.
func (s *Scanner) Read() (byte, error) {
	if s.currentIndex >= s.fillIndex {
		s.fillBuf()
	}
	if s.currentIndex < s.fillIndex {
		b := s.buf[s.currentIndex]
		s.prevPos = s.currentPos
		switch {
		case b == '\n':
			s.currentPos.Line++
			s.currentPos.Col = 0
		case b < 0xC0:
			// Last byte of a UTF-8 encoded codepoint
			s.currentPos.Col++
		}
		s.currentIndex++
		return b, nil
	}
	return s.readErrOrEOF()
}

// Peek returns the next byte without consuming it.
func (s *Scanner) Peek() (byte, error) {
	if s.currentIndex >= s.fillIndex {
		s.fillBuf()
	}
	if s.currentIndex < s.fillIndex {
		return s.buf[s.currentIndex], nil
	}
	return s.errOrEOF()
}

// Back steps back one byte.  It can only be called once after a Read, and not
// across the start of a recorded token.
func (s *Scanner) Back() {
	if s.currentIndex <= 0 || s.currentIndex <= s.tokenStartIndex {
		panic("cannot go back from start")
	}
	if s.prevPos.Line < 0 {
		panic("cannot go back twice")
	}
	if s.eofCount > 0 {
		s.eofCount--
		return
	}
	s.currentIndex--
	s.currentPos = s.prevPos
	s.prevPos.Line = -1
}

// CurrentPos returns the line / column of the current position.
func (s *Scanner) CurrentPos() Pos {
	return s.currentPos
}

// StartToken starts recording a token span at the current position.
func (s *Scanner) StartToken() Pos {
	if s.tokenStartIndex >= 0 {
		panic("already in record mode")
	}
	s.tokenStartIndex = s.currentIndex
	return s.currentPos
}

// EndToken stops recording and returns a copy of the recorded bytes.
func (s *Scanner) EndToken() []byte {
	if s.tokenStartIndex < 0 {
		panic("not in record mode")
	}
	if s.tokenParts == nil {
		tokBytes := slices.Clone(s.buf[s.tokenStartIndex:s.currentIndex])
		s.tokenStartIndex = -1
		return tokBytes
	}
	// Precalculate the total size so the slice is not grown mid-concatenation.
	tokLen := s.currentIndex - s.tokenStartIndex
	for _, p := range s.tokenParts {
		tokLen += len(p)
	}
	tokBytes := make([]byte, 0, tokLen)
	for _, p := range s.tokenParts {
		tokBytes = append(tokBytes, p...)
	}
	tokBytes = append(tokBytes, s.buf[s.tokenStartIndex:s.currentIndex]...)
	s.tokenStartIndex = -1
	s.tokenParts = nil
	return tokBytes
}

// SkipSpaceAndPeek skips insignificant whitespace and returns the next byte
// without consuming it.
func (s *Scanner) SkipSpaceAndPeek() (byte, error) {
	for {
		for i, b := range s.buf[s.currentIndex:s.fillIndex] {
			switch {
			case b == '\n':
				s.currentPos.Line++
				s.currentPos.Col = 0
			case b == ' ' || b == '\t' || b == '\r':
				s.currentPos.Col++
			default:
				s.currentIndex += i
				return b, nil
			}
		}
		s.currentIndex = s.fillIndex
		s.fillBuf()
		if s.currentIndex >= s.fillIndex {
			return s.errOrEOF()
		}
	}
}

// SkipSpaceAndRead skips insignificant whitespace and consumes and returns
// the next byte.
func (s *Scanner) SkipSpaceAndRead() (byte, error) {
	for {
		for i, b := range s.buf[s.currentIndex:s.fillIndex] {
			switch {
			case b == '\n':
				s.currentPos.Line++
				s.currentPos.Col = 0
			case b == ' ' || b == '\t' || b == '\r':
				s.currentPos.Col++
			default:
				s.currentIndex += i + 1
				if b < 0xC0 {
					s.currentPos.Col++
				}
				return b, nil
			}
		}
		s.currentIndex = s.fillIndex
		s.fillBuf()
		if s.currentIndex >= s.fillIndex {
			return s.readErrOrEOF()
		}
	}
}

func (s *Scanner) errOrEOF() (byte, error) {
	if s.err == io.EOF {
		return EOF, nil
	}
	return 0, s.err
}

func (s *Scanner) readErrOrEOF() (byte, error) {
	if s.err == io.EOF {
		s.eofCount++
		return EOF, nil
	}
	return 0, s.err
}
