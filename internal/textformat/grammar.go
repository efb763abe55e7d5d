// Package textformat reads and writes the line-oriented graph text
// format: `-- words` / `-- phrases` / `-- edges` sections of node and
// edge declarations, one graph per `go` terminator.
package textformat

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var graphLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Node", Pattern: `n\d+`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Ident", Pattern: `[a-zA-Z]+`},
	{Name: "Text", Pattern: `[\p{Arabic}\p{Mn}]+`},
	{Name: "Punct", Pattern: `[(),:=*-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// lineAST is one non-comment line of a graph: either a node declaration
// (word, reference, elided word, or phrase, anything with an `=`) or an
// edge declaration.
type lineAST struct {
	Decl *declAST `parser:"  @@"`
	Edge *edgeAST `parser:"| @@"`
}

// declAST: n<i> (, n<j>)* = <tag>( <body> )
type declAST struct {
	Names []string `parser:"@Node ( \",\" @Node )* \"=\""`
	Tag   string   `parser:"@Ident"`
	Body  *bodyAST `parser:"\"(\" @@ \")\""`
}

// bodyAST is a constructor argument: a node interval for phrases, a
// location for words and references, or the elided surface text (`*`
// meaning no text).
type bodyAST struct {
	Interval *intervalAST `parser:"  @@"`
	Location *locationAST `parser:"| @@"`
	Star     bool         `parser:"| @\"*\""`
	Text     string       `parser:"| @Text"`
}

// intervalAST: n<a> - n<b>
type intervalAST struct {
	Start string `parser:"@Node \"-\""`
	End   string `parser:"@Node"`
}

// locationAST: chapter:verse[:token]
type locationAST struct {
	Chapter int  `parser:"@Int \":\""`
	Verse   int  `parser:"@Int"`
	Token   *int `parser:"( \":\" @Int )?"`
}

// edgeAST: <relation-tag>(n<dep> - n<head>)
type edgeAST struct {
	Tag   string `parser:"@Ident \"(\""`
	Start string `parser:"@Node \"-\""`
	End   string `parser:"@Node \")\""`
}

var lineParser = participle.MustBuild[lineAST](
	participle.Lexer(graphLexer),
	participle.Elide("Whitespace"),
)
