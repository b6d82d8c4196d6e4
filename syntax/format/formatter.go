// Package format renders the document model as canonical HCL text.
// Output is deterministic: equal trees produce byte-identical text, and
// formatting is idempotent over parse/format cycles.
package format

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hclkit-lang/hclkit/syntax/parser"
)

const indentUnit = "  "

// Formatter accumulates canonical output for a node tree
type Formatter struct {
	buf    bytes.Buffer
	indent int
}

// ToString renders a node as canonical HCL text. Body, attribute and
// block renderings end with a newline; bare expressions do not.
func ToString(node parser.Node) string {
	f := &Formatter{}
	f.formatNode(node)
	return f.buf.String()
}

// Write renders a node to w. The only failure mode is the sink's
func Write(w io.Writer, node parser.Node) error {
	if _, err := io.WriteString(w, ToString(node)); err != nil {
		return fmt.Errorf("writing formatted output: %w", err)
	}
	return nil
}

func (f *Formatter) formatNode(node parser.Node) {
	switch n := node.(type) {
	case *parser.Body:
		f.formatBody(n)
	case *parser.Attribute:
		f.formatAttribute(n)
	case *parser.Block:
		f.formatBlock(n)
	case parser.ExprNode:
		f.formatExpr(n, true)
	}
}

func (f *Formatter) formatBody(body *parser.Body) {
	for _, s := range body.Structures {
		switch s := s.(type) {
		case *parser.Attribute:
			f.formatAttribute(s)
		case *parser.Block:
			f.formatBlock(s)
		}
	}
}

func (f *Formatter) formatAttribute(attr *parser.Attribute) {
	f.writeIndent()
	f.buf.WriteString(attr.Key.String())
	f.buf.WriteString(" = ")
	// Objects in attribute-value position render expanded
	f.formatExpr(attr.Value, false)
	f.buf.WriteByte('\n')
}

func (f *Formatter) formatBlock(block *parser.Block) {
	f.writeIndent()
	f.buf.WriteString(block.Identifier.String())
	for _, label := range block.Labels {
		f.buf.WriteByte(' ')
		switch l := label.(type) {
		case parser.LabelIdent:
			f.buf.WriteString(l.Name.String())
		case parser.LabelString:
			f.writeQuoted(l.Value)
		}
	}

	if len(block.Body.Structures) == 0 {
		f.buf.WriteString(" {}\n")
		return
	}

	f.buf.WriteString(" {\n")
	f.indent++
	f.formatBody(&block.Body)
	f.indent--
	f.writeIndent()
	f.buf.WriteString("}\n")
}

// formatExpr renders an expression. compact keeps everything on one
// line; expanded mode lets objects span lines, and nested objects in an
// expanded object stay expanded themselves.
func (f *Formatter) formatExpr(expr parser.ExprNode, compact bool) {
	switch e := expr.(type) {
	case *parser.LiteralExpr:
		f.formatLiteral(e.Value)

	case *parser.VariableExpr:
		f.buf.WriteString(e.Name.String())

	case *parser.TemplateExpr:
		f.buf.WriteByte('"')
		f.formatTemplateParts(e.Parts, true)
		f.buf.WriteByte('"')

	case *parser.HeredocExpr:
		f.formatHeredoc(e)

	case *parser.TupleExpr:
		f.buf.WriteByte('[')
		for i, elem := range e.Elements {
			if i > 0 {
				f.buf.WriteString(", ")
			}
			f.formatExpr(elem, true)
		}
		f.buf.WriteByte(']')

	case *parser.ObjectExpr:
		f.formatObject(e, compact)

	case *parser.FuncCallExpr:
		f.buf.WriteString(e.Name.String())
		f.buf.WriteByte('(')
		for i, arg := range e.Args {
			if i > 0 {
				f.buf.WriteString(", ")
			}
			f.formatExpr(arg, true)
		}
		if e.ExpandFinal {
			f.buf.WriteString("...")
		}
		f.buf.WriteByte(')')

	case *parser.TraversalExpr:
		f.formatExpr(e.Expr, compact)
		for _, op := range e.Ops {
			f.formatTraverser(op)
		}

	case *parser.UnaryExpr:
		f.buf.WriteString(e.Op.String())
		f.formatExpr(e.Operand, compact)

	case *parser.BinaryExpr:
		f.formatExpr(e.Left, compact)
		f.buf.WriteByte(' ')
		f.buf.WriteString(e.Op.String())
		f.buf.WriteByte(' ')
		f.formatExpr(e.Right, compact)

	case *parser.ParenExpr:
		f.buf.WriteByte('(')
		f.formatExpr(e.Expr, true)
		f.buf.WriteByte(')')

	case *parser.ConditionalExpr:
		f.formatExpr(e.Condition, compact)
		f.buf.WriteString(" ? ")
		f.formatExpr(e.TrueExpr, compact)
		f.buf.WriteString(" : ")
		f.formatExpr(e.FalseExpr, compact)
	}
}

func (f *Formatter) formatObject(obj *parser.ObjectExpr, compact bool) {
	if len(obj.Items) == 0 {
		f.buf.WriteString("{}")
		return
	}

	if compact {
		f.buf.WriteString("{ ")
		for i, item := range obj.Items {
			if i > 0 {
				f.buf.WriteString(", ")
			}
			f.formatObjectKey(item.Key)
			f.buf.WriteString(" = ")
			f.formatExpr(item.Value, true)
		}
		f.buf.WriteString(" }")
		return
	}

	f.buf.WriteString("{\n")
	f.indent++
	for _, item := range obj.Items {
		f.writeIndent()
		f.formatObjectKey(item.Key)
		f.buf.WriteString(" = ")
		f.formatExpr(item.Value, false)
		f.buf.WriteByte('\n')
	}
	f.indent--
	f.writeIndent()
	f.buf.WriteByte('}')
}

func (f *Formatter) formatObjectKey(key parser.ObjectKey) {
	switch k := key.(type) {
	case parser.KeyIdent:
		f.buf.WriteString(k.Name.String())
	case parser.KeyExpr:
		f.formatExpr(k.Expr, true)
	}
}

func (f *Formatter) formatTraverser(op parser.Traverser) {
	switch t := op.(type) {
	case parser.TraverseAttr:
		f.buf.WriteByte('.')
		f.buf.WriteString(t.Name.String())
	case parser.TraverseDotIndex:
		f.buf.WriteByte('.')
		f.buf.WriteString(strconv.FormatUint(t.Index, 10))
	case parser.TraverseIndex:
		f.buf.WriteByte('[')
		f.formatExpr(t.Index, true)
		f.buf.WriteByte(']')
	case parser.TraverseSplat:
		if t.Full {
			f.buf.WriteString("[*]")
		} else {
			f.buf.WriteString(".*")
		}
	}
}

func (f *Formatter) formatHeredoc(e *parser.HeredocExpr) {
	if e.Indented {
		f.buf.WriteString("<<-")
	} else {
		f.buf.WriteString("<<")
	}
	f.buf.WriteString(e.Marker.String())
	f.buf.WriteByte('\n')

	sub := &Formatter{}
	sub.formatTemplateParts(e.Parts, false)
	content := sub.buf.String()

	f.buf.WriteString(content)
	if content != "" && !strings.HasSuffix(content, "\n") {
		f.buf.WriteByte('\n')
	}
	f.buf.WriteString(e.Marker.String())
}

// formatTemplateParts writes template parts. quoted applies string
// escaping to literal runs; heredoc literals stay raw apart from
// interpolation-introducer escaping.
func (f *Formatter) formatTemplateParts(parts []parser.TemplatePart, quoted bool) {
	for _, part := range parts {
		switch p := part.(type) {
		case parser.TemplateLiteral:
			if quoted {
				f.writeEscaped(p.Value)
			} else {
				f.writeIntroducerEscaped(p.Value)
			}
		case parser.TemplateInterp:
			f.buf.WriteString("${")
			f.formatExpr(p.Expr, true)
			f.buf.WriteByte('}')
		}
	}
}

func (f *Formatter) formatLiteral(value interface{}) {
	switch v := value.(type) {
	case nil:
		f.buf.WriteString("null")
	case bool:
		f.buf.WriteString(strconv.FormatBool(v))
	case int64:
		f.buf.WriteString(strconv.FormatInt(v, 10))
	case int:
		f.buf.WriteString(strconv.FormatInt(int64(v), 10))
	case float64:
		s := strconv.FormatFloat(v, 'g', -1, 64)
		// A bare integer rendering would reparse as an int
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		f.buf.WriteString(s)
	case string:
		f.writeQuoted(v)
	default:
		fmt.Fprintf(&f.buf, "%v", v)
	}
}

func (f *Formatter) writeQuoted(s string) {
	f.buf.WriteByte('"')
	f.writeEscaped(s)
	f.buf.WriteByte('"')
}

// writeEscaped writes string content for a quoted context: control
// characters, quotes and backslashes escape, and `${` / `%{` become
// `$${` / `%%{` so the text reparses as the same literal.
func (f *Formatter) writeEscaped(s string) {
	runes := []rune(s)
	for i, r := range runes {
		switch r {
		case '"':
			f.buf.WriteString(`\"`)
		case '\\':
			f.buf.WriteString(`\\`)
		case '\n':
			f.buf.WriteString(`\n`)
		case '\r':
			f.buf.WriteString(`\r`)
		case '\t':
			f.buf.WriteString(`\t`)
		case '$', '%':
			if i+1 < len(runes) && runes[i+1] == '{' {
				f.buf.WriteRune(r)
			}
			f.buf.WriteRune(r)
		default:
			if r < 0x20 {
				fmt.Fprintf(&f.buf, `\u%04x`, r)
			} else {
				f.buf.WriteRune(r)
			}
		}
	}
}

// writeIntroducerEscaped writes heredoc literal content: raw text, with
// only interpolation introducers doubled.
func (f *Formatter) writeIntroducerEscaped(s string) {
	runes := []rune(s)
	for i, r := range runes {
		if (r == '$' || r == '%') && i+1 < len(runes) && runes[i+1] == '{' {
			f.buf.WriteRune(r)
		}
		f.buf.WriteRune(r)
	}
}

func (f *Formatter) writeIndent() {
	for i := 0; i < f.indent; i++ {
		f.buf.WriteString(indentUnit)
	}
}
