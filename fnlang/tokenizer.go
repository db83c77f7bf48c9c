package fnlang

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"unicode"
)

type Tokenizer struct {
	source  *bufio.Reader
	src     *Source
	current *Token

	currPos Pos
	prevPos Pos
}

func NewTokenizer(src *Source) *Tokenizer {
	return &Tokenizer{
		source: bufio.NewReader(strings.NewReader(src.Content)),
		src:    src,
		currPos: Pos{
			Source: src,
			Line:   1,
			Column: 1,
		},
	}
}

func (t *Tokenizer) readRune() (rune, error) {
	r, _, err := t.source.ReadRune()
	if err != nil {
		return 0, err
	}

	t.prevPos = t.currPos
	if r == '\n' {
		t.currPos.Line++
		t.currPos.Column = 1
	} else {
		t.currPos.Column++
	}

	return r, nil
}

func (t *Tokenizer) unreadRune() {
	t.source.UnreadRune()
	t.currPos = t.prevPos
}

func (t *Tokenizer) Current() (*Token, error) {
	if t.current == nil {
		var err error
		t.current, err = t.parseNext()
		if err != nil {
			return nil, err
		}
	}
	return t.current, nil
}

func (t *Tokenizer) Consume() {
	t.current = nil
}

func (t *Tokenizer) parseNext() (*Token, error) {
	t.skipWhitespace()
	startPos := t.currPos

	r, err := t.readRune()
	if err == io.EOF {
		return &Token{Kind: TokenEOF, Pos: startPos}, nil
	}
	if err != nil {
		return nil, err
	}

	switch {
	case r == '#':
		t.skipComment()
		return t.parseNext()
	case unicode.IsDigit(r) || r == '.':
		t.unreadRune()
		return t.parseNumber()
	case r == '-':
		next, err := t.readRune()
		if err == nil {
			if next == '>' {
				return &Token{Kind: TokenSymbol, Text: "->", Pos: startPos}, nil
			}
			t.unreadRune()
		}
		return &Token{Kind: TokenSymbol, Text: "-", Pos: startPos}, nil
	case strings.ContainsRune("+*/%^=()[],:;", r):
		return &Token{
			Kind: TokenSymbol,
			Text: string(r),
			Pos:  startPos,
		}, nil
	case r == '_' || unicode.IsLetter(r):
		t.unreadRune()
		return t.parseIdentifier()
	}

	return &Token{Kind: TokenInvalid, Text: string(r), Pos: startPos}, nil
}

func (t *Tokenizer) skipWhitespace() {
	for {
		r, err := t.readRune()
		if err != nil {
			return
		}
		if !unicode.IsSpace(r) {
			t.unreadRune()
			return
		}
	}
}

func (t *Tokenizer) skipComment() {
	for {
		r, err := t.readRune()
		if err != nil {
			return
		}
		if r == '\n' {
			return
		}
	}
}

func (t *Tokenizer) parseIdentifier() (*Token, error) {
	startPos := t.currPos
	var buf bytes.Buffer
	for {
		r, err := t.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			t.unreadRune()
			break
		}
		buf.WriteRune(r)
	}
	return &Token{
		Kind: TokenIdentifier,
		Text: buf.String(),
		Pos:  startPos,
	}, nil
}

func (t *Tokenizer) parseNumber() (*Token, error) {
	startPos := t.currPos
	var buf bytes.Buffer
	hasDot := false
	hasExp := false
	for {
		r, err := t.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if unicode.IsDigit(r) {
			buf.WriteRune(r)
		} else if r == '.' && !hasDot && !hasExp {
			hasDot = true
			buf.WriteRune(r)
		} else if (r == 'e' || r == 'E') && !hasExp && buf.Len() > 0 {
			hasExp = true
			buf.WriteRune(r)
			sign, err := t.readRune()
			if err != nil {
				break
			}
			if sign == '+' || sign == '-' {
				buf.WriteRune(sign)
			} else {
				t.unreadRune()
			}
		} else {
			t.unreadRune()
			break
		}
	}
	return &Token{
		Kind: TokenNumber,
		Text: buf.String(),
		Pos:  startPos,
	}, nil
}
