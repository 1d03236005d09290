package mock

import "github.com/fwojciec/apidoc"

var _ apidoc.Parser = (*Parser)(nil)

// Parser is a mock implementation of apidoc.Parser.
type Parser struct {
	ParseFn func(html string) (*apidoc.Element, error)
}

func (p *Parser) Parse(html string) (*apidoc.Element, error) {
	return p.ParseFn(html)
}
