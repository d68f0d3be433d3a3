// Released under an MIT license. See LICENSE.

// Package reader turns source text into expression trees.
package reader

import (
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/interface/cell"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/list"
	"github.com/cinnamonbacon/schemeInterpreter/internal/reader/lexer"
	"github.com/cinnamonbacon/schemeInterpreter/internal/reader/parser"
)

// Read lexes and parses all of text. The returned list holds one element
// per top-level form. Label names the source in error messages.
func Read(label, text string) (*list.T, error) {
	l := lexer.New(label)

	l.Scan(text)
	l.Close()

	var forms []cell.I

	err := parser.New(func(c cell.I) {
		forms = append(forms, c)
	}, l.Token).Parse()
	if err != nil {
		return nil, err
	}

	return list.New(forms...), nil
}
