package fnlang

import (
	"fmt"
	"strconv"
)

type Parser struct {
	tokens *Tokenizer
}

// Parse parses a whole program.
func Parse(name string, content string) (*Program, error) {
	p := &Parser{
		tokens: NewTokenizer(NewSource(name, content)),
	}
	return p.parseProgram()
}

func (p *Parser) parseProgram() (*Program, error) {
	seq := &Sequence{}
	for {
		tok, err := p.tokens.Current()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenEOF {
			break
		}
		if tok.Kind == TokenSymbol && tok.Text == ";" {
			p.tokens.Consume()
			continue
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		seq.Statements = append(seq.Statements, stmt)

		tok, err = p.tokens.Current()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenEOF {
			break
		}
		if err := p.expect(";"); err != nil {
			return nil, err
		}
	}
	return &Program{
		Seq: seq,
	}, nil
}

func (p *Parser) parseStatement() (Statement, error) {
	tok, err := p.tokens.Current()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenIdentifier || keywords[tok.Text] {
		return p.parseExpr()
	}

	// an identifier may start a definition, a call or an arithmetic expression
	name := tok.Text
	pos := tok.Pos
	p.tokens.Consume()
	next, err := p.tokens.Current()
	if err != nil {
		return nil, err
	}

	if next.Kind == TokenSymbol && next.Text == "=" {
		p.tokens.Consume()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &Definition{
			Name: name,
			Expr: expr,
		}, nil
	}

	var head Expression
	if next.Kind == TokenSymbol && next.Text == "(" {
		p.tokens.Consume()
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		after, err := p.tokens.Current()
		if err != nil {
			return nil, err
		}
		if after.Kind == TokenSymbol && after.Text == "=" {
			// f(x, y) = body
			params := make([]string, 0, len(args))
			for _, arg := range args {
				v, ok := arg.(*Variable)
				if !ok {
					return nil, WithPos(fmt.Errorf("%w: parameter must be a name, got %s", ErrSyntax, arg), pos)
				}
				params = append(params, v.Name)
			}
			p.tokens.Consume()
			body, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			return &Definition{
				Name: name,
				Expr: &FunctionDefinition{
					Params: params,
					Body:   body,
				},
			}, nil
		}
		head = &FunctionCall{
			Name: name,
			Args: args,
		}
	} else {
		head = &Variable{
			Name: name,
		}
	}

	return p.continueAdditive(head)
}

func (p *Parser) parseExpr() (Expression, error) {
	tok, err := p.tokens.Current()
	if err != nil {
		return nil, err
	}
	if tok.Kind == TokenIdentifier {
		switch tok.Text {
		case "let":
			p.tokens.Consume()
			return p.parseLet()
		case "fun":
			p.tokens.Consume()
			return p.parseFun()
		case "plot":
			p.tokens.Consume()
			return p.parsePlot()
		case "clear":
			p.tokens.Consume()
			return &Clear{}, nil
		}
	}
	return p.parseAdditive()
}

func (p *Parser) parseLet() (Expression, error) {
	let := &Let{}
	for {
		name, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		if err := p.expect("="); err != nil {
			return nil, err
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		let.Bindings = append(let.Bindings, Binding{
			Name: name,
			Expr: expr,
		})
		ok, err := p.accept(",")
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
	}
	if err := p.expectKeyword("in"); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	let.Body = body
	return let, nil
}

func (p *Parser) parseFun() (Expression, error) {
	if err := p.expect("("); err != nil {
		return nil, err
	}
	var params []string
	ok, err := p.accept(")")
	if err != nil {
		return nil, err
	}
	for !ok {
		name, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		params = append(params, name)
		ok, err = p.accept(")")
		if err != nil {
			return nil, err
		}
		if !ok {
			if err := p.expect(","); err != nil {
				return nil, err
			}
		}
	}
	if err := p.expect("->"); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &FunctionDefinition{
		Params: params,
		Body:   body,
	}, nil
}

func (p *Parser) parsePlot() (Expression, error) {
	mapping, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("for"); err != nil {
		return nil, err
	}
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("in"); err != nil {
		return nil, err
	}
	if err := p.expect("["); err != nil {
		return nil, err
	}
	start, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(":"); err != nil {
		return nil, err
	}
	end, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect("]"); err != nil {
		return nil, err
	}
	return &Plot{
		Map:   mapping,
		Var:   name,
		Start: start,
		End:   end,
	}, nil
}

func (p *Parser) parseAdditive() (Expression, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return p.additiveTail(left)
}

// continueAdditive resumes parsing after a primary already consumed by parseStatement.
func (p *Parser) continueAdditive(primary Expression) (Expression, error) {
	left, err := p.powerTail(primary)
	if err != nil {
		return nil, err
	}
	left, err = p.termTail(left)
	if err != nil {
		return nil, err
	}
	return p.additiveTail(left)
}

func (p *Parser) additiveTail(left Expression) (Expression, error) {
	for {
		tok, err := p.tokens.Current()
		if err != nil {
			return nil, err
		}
		var op Op
		switch {
		case tok.Kind == TokenSymbol && tok.Text == "+":
			op = OpAdd
		case tok.Kind == TokenSymbol && tok.Text == "-":
			op = OpSub
		default:
			return left, nil
		}
		p.tokens.Consume()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{
			Op:    op,
			Left:  left,
			Right: right,
		}
	}
}

func (p *Parser) parseTerm() (Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return p.termTail(left)
}

func (p *Parser) termTail(left Expression) (Expression, error) {
	for {
		tok, err := p.tokens.Current()
		if err != nil {
			return nil, err
		}
		var op Op
		switch {
		case tok.Kind == TokenSymbol && tok.Text == "*":
			op = OpMul
		case tok.Kind == TokenSymbol && tok.Text == "/":
			op = OpDiv
		case tok.Kind == TokenSymbol && tok.Text == "%",
			tok.Kind == TokenIdentifier && tok.Text == "mod":
			op = OpMod
		default:
			return left, nil
		}
		p.tokens.Consume()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{
			Op:    op,
			Left:  left,
			Right: right,
		}
	}
}

// parseUnary parses negation, which binds looser than ^: -x^2 is -(x^2).
func (p *Parser) parseUnary() (Expression, error) {
	ok, err := p.accept("-")
	if err != nil {
		return nil, err
	}
	if ok {
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &BinaryOp{
			Op:    OpSub,
			Left:  &Literal{Val: 0},
			Right: operand,
		}, nil
	}
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.powerTail(base)
}

// powerTail parses the right-associative exponent chain.
func (p *Parser) powerTail(base Expression) (Expression, error) {
	ok, err := p.accept("^")
	if err != nil {
		return nil, err
	}
	if !ok {
		return base, nil
	}
	exponent, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &BinaryOp{
		Op:    OpPow,
		Left:  base,
		Right: exponent,
	}, nil
}

func (p *Parser) parsePrimary() (Expression, error) {
	tok, err := p.tokens.Current()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {

	case TokenNumber:
		p.tokens.Consume()
		f, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, WithPos(fmt.Errorf("%w: invalid number %q", ErrSyntax, tok.Text), tok.Pos)
		}
		return &Literal{
			Val: Real(f),
		}, nil

	case TokenIdentifier:
		switch tok.Text {
		case "let", "fun", "plot", "clear":
			return p.parseExpr()
		}
		if keywords[tok.Text] {
			return nil, p.unexpected(tok)
		}
		p.tokens.Consume()
		ok, err := p.accept("(")
		if err != nil {
			return nil, err
		}
		if !ok {
			return &Variable{
				Name: tok.Text,
			}, nil
		}
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		return &FunctionCall{
			Name: tok.Text,
			Args: args,
		}, nil

	case TokenSymbol:
		if tok.Text == "(" {
			p.tokens.Consume()
			expr, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expect(")"); err != nil {
				return nil, err
			}
			return expr, nil
		}

	}

	return nil, p.unexpected(tok)
}

// parseArgs parses a call argument list after the opening parenthesis.
func (p *Parser) parseArgs() ([]Expression, error) {
	var args []Expression
	ok, err := p.accept(")")
	if err != nil {
		return nil, err
	}
	for !ok {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		ok, err = p.accept(")")
		if err != nil {
			return nil, err
		}
		if !ok {
			if err := p.expect(","); err != nil {
				return nil, err
			}
		}
	}
	return args, nil
}

func (p *Parser) accept(symbol string) (bool, error) {
	tok, err := p.tokens.Current()
	if err != nil {
		return false, err
	}
	if tok.Kind == TokenSymbol && tok.Text == symbol {
		p.tokens.Consume()
		return true, nil
	}
	return false, nil
}

func (p *Parser) expect(symbol string) error {
	tok, err := p.tokens.Current()
	if err != nil {
		return err
	}
	if tok.Kind != TokenSymbol || tok.Text != symbol {
		return WithPos(fmt.Errorf("%w: expected %q, got %s", ErrSyntax, symbol, describeToken(tok)), tok.Pos)
	}
	p.tokens.Consume()
	return nil
}

func (p *Parser) expectKeyword(word string) error {
	tok, err := p.tokens.Current()
	if err != nil {
		return err
	}
	if tok.Kind != TokenIdentifier || tok.Text != word {
		return WithPos(fmt.Errorf("%w: expected %q, got %s", ErrSyntax, word, describeToken(tok)), tok.Pos)
	}
	p.tokens.Consume()
	return nil
}

func (p *Parser) expectIdentifier() (string, error) {
	tok, err := p.tokens.Current()
	if err != nil {
		return "", err
	}
	if tok.Kind != TokenIdentifier || keywords[tok.Text] {
		return "", WithPos(fmt.Errorf("%w: expected name, got %s", ErrSyntax, describeToken(tok)), tok.Pos)
	}
	p.tokens.Consume()
	return tok.Text, nil
}

func (p *Parser) unexpected(tok *Token) error {
	return WithPos(fmt.Errorf("%w: unexpected %s", ErrSyntax, describeToken(tok)), tok.Pos)
}

func describeToken(tok *Token) string {
	if tok.Kind == TokenEOF {
		return tok.Kind.String()
	}
	return fmt.Sprintf("%s %q", tok.Kind, tok.Text)
}
