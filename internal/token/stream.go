package token

// Stream is a lazy, finite sequence of tokens that can be restarted from the
// beginning. Tokens are pulled from the producer on demand and buffered so
// that Peek and Reset never re-run the lexer.
type Stream struct {
	next func() Token
	buf  []Token
	pos  int
	done bool
}

// NewStream wraps a producer function. The producer must eventually return a
// token of type EOF and keep returning it afterwards.
func NewStream(next func() Token) *Stream {
	return &Stream{next: next}
}

func (s *Stream) fill(n int) {
	for !s.done && len(s.buf) < n {
		tok := s.next()
		s.buf = append(s.buf, tok)
		if tok.Type == EOF {
			s.done = true
		}
	}
}

// Next returns the next token, advancing the stream. Once the underlying
// sequence is exhausted it keeps returning the EOF token.
func (s *Stream) Next() Token {
	s.fill(s.pos + 1)
	if s.pos >= len(s.buf) {
		return s.buf[len(s.buf)-1]
	}
	tok := s.buf[s.pos]
	s.pos++
	return tok
}

// Peek returns up to n upcoming tokens without advancing the stream.
func (s *Stream) Peek(n int) []Token {
	s.fill(s.pos + n)
	end := s.pos + n
	if end > len(s.buf) {
		end = len(s.buf)
	}
	return s.buf[s.pos:end]
}

// Reset rewinds the stream to the first token.
func (s *Stream) Reset() {
	s.pos = 0
}
