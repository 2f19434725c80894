package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"regexp"
	"strconv"
	"strings"
)

var (
	// A literal counts as SQL when it starts with a statement keyword,
	// optionally after its marker line.
	statementPattern = regexp.MustCompile(`(?is)^\s*(--[^\n]*\n\s*)?(select|insert|update|delete|with)\b`)
	markerPattern    = regexp.MustCompile(`^--sql ([0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12})$`)
)

type violation struct {
	file    string
	name    string
	line    int
	message string
}

// linter checks every inline SQL constant for a well-formed marker and
// remembers markers across files so copies are reported.
type linter struct {
	seen       map[string]token.Position
	violations []violation
}

func newLinter() *linter {
	return &linter{seen: make(map[string]token.Position)}
}

func (l *linter) lintSource(path string, src any) error {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, src, parser.SkipObjectResolution)
	if err != nil {
		return err
	}
	ast.Inspect(file, func(n ast.Node) bool {
		spec, ok := n.(*ast.ValueSpec)
		if !ok {
			return true
		}
		for i, value := range spec.Values {
			lit, ok := value.(*ast.BasicLit)
			if !ok || lit.Kind != token.STRING {
				continue
			}
			raw, err := unquote(lit.Value)
			if err != nil || !statementPattern.MatchString(raw) {
				continue
			}
			name := "_"
			if i < len(spec.Names) {
				name = spec.Names[i].Name
			}
			l.check(fset.Position(lit.Pos()), name, raw)
		}
		return true
	})
	return nil
}

func (l *linter) check(pos token.Position, name, raw string) {
	m := markerPattern.FindStringSubmatch(firstLine(raw))
	if m == nil {
		l.report(pos, name, "missing or invalid --sql <uuid> marker")
		return
	}
	if prev, dup := l.seen[m[1]]; dup {
		l.report(pos, name, "marker "+m[1]+" already used at "+prev.String())
		return
	}
	l.seen[m[1]] = pos
}

func (l *linter) report(pos token.Position, name, message string) {
	l.violations = append(l.violations, violation{
		file:    pos.Filename,
		line:    pos.Line,
		name:    name,
		message: message,
	})
}

func firstLine(s string) string {
	s = strings.TrimLeft(s, "\n\r \t")
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}

func unquote(v string) (string, error) {
	if strings.HasPrefix(v, "`") {
		return strings.Trim(v, "`"), nil
	}
	return strconv.Unquote(v)
}
