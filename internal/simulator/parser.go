package simulator

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// commandLexer only knows plain digit runs, keywords, and commas, so
// Go-style integer literals (0x2, 010-as-octal, 1_0) never tokenize
// as coordinates.
var commandLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// placeArgs is the grammar for the one structured command.
// Coordinates are captured as raw digit runs and converted in
// parsePlace; a sign or anything trailing the direction fails the
// whole rule.
type placeArgs struct {
	X      string `parser:"'PLACE' @Int ','"`
	Y      string `parser:"@Int ','"`
	Facing string `parser:"@('NORTH'|'EAST'|'SOUTH'|'WEST')"`
}

var placeParser = participle.MustBuild[placeArgs](
	participle.Lexer(commandLexer),
	participle.Elide("Whitespace"),
)

// Parse turns one input line into a Command. The line is trimmed and
// uppercased, then matched against the PLACE grammar first; on failure
// the whole line is treated as a bare keyword token. Unrecognized
// tokens are passed through as CmdUnknown for the dispatcher to
// classify, so Parse itself only ever fails on blank input.
func Parse(line string) (Command, error) {
	token := strings.ToUpper(strings.TrimSpace(line))
	if token == "" {
		return Command{}, ErrEmptyInput
	}

	if cmd, ok := parsePlace(token); ok {
		return cmd, nil
	}

	switch token {
	case "MOVE":
		return Command{Kind: CmdMove}, nil
	case "LEFT":
		return Command{Kind: CmdLeft}, nil
	case "RIGHT":
		return Command{Kind: CmdRight}, nil
	case "REPORT":
		return Command{Kind: CmdReport}, nil
	}
	return Command{Kind: CmdUnknown, Raw: token}, nil
}

func parsePlace(token string) (Command, bool) {
	args, err := placeParser.ParseString("", token)
	if err != nil {
		return Command{}, false
	}
	x, okX := parseCoordinate(args.X)
	y, okY := parseCoordinate(args.Y)
	if !okX || !okY {
		return Command{}, false
	}
	f, _ := ParseDirection(args.Facing)
	return Command{Kind: CmdPlace, X: x, Y: y, Facing: f}, true
}

// parseCoordinate converts a digit run to a decimal int. Leading
// zeros are rejected so a coordinate that parses always reproduces
// itself in REPORT output.
func parseCoordinate(digits string) (int, bool) {
	if len(digits) > 1 && digits[0] == '0' {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}
