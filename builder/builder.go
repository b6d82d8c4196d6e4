// Package builder provides fluent construction of document model trees
// for programmatic generation of HCL.
package builder

import "github.com/hclkit-lang/hclkit/syntax/parser"

// BodyBuilder accumulates structures for a Body
type BodyBuilder struct {
	structures []parser.Structure
}

// Body creates an empty BodyBuilder
func Body() *BodyBuilder {
	return &BodyBuilder{}
}

// Attribute appends an attribute. key must be a valid identifier.
func (b *BodyBuilder) Attribute(key string, value parser.ExprNode) *BodyBuilder {
	b.structures = append(b.structures, parser.NewAttribute(parser.MustIdent(key), value))
	return b
}

// Block appends a block
func (b *BodyBuilder) Block(block *parser.Block) *BodyBuilder {
	b.structures = append(b.structures, block)
	return b
}

// Build returns the assembled Body
func (b *BodyBuilder) Build() *parser.Body {
	return &parser.Body{Structures: b.structures}
}

// BlockBuilder accumulates labels and body structures for a Block
type BlockBuilder struct {
	identifier parser.Ident
	labels     []parser.BlockLabel
	body       BodyBuilder
}

// Block creates a BlockBuilder for the given block identifier
func Block(identifier string) *BlockBuilder {
	return &BlockBuilder{identifier: parser.MustIdent(identifier)}
}

// Label appends a quoted string label
func (b *BlockBuilder) Label(label string) *BlockBuilder {
	b.labels = append(b.labels, parser.LabelString{Value: label})
	return b
}

// IdentLabel appends a bare identifier label
func (b *BlockBuilder) IdentLabel(label string) *BlockBuilder {
	b.labels = append(b.labels, parser.LabelIdent{Name: parser.MustIdent(label)})
	return b
}

// Attribute appends an attribute to the block body
func (b *BlockBuilder) Attribute(key string, value parser.ExprNode) *BlockBuilder {
	b.body.Attribute(key, value)
	return b
}

// Block appends a nested block to the block body
func (b *BlockBuilder) Block(block *parser.Block) *BlockBuilder {
	b.body.Block(block)
	return b
}

// Build returns the assembled Block
func (b *BlockBuilder) Build() *parser.Block {
	return parser.NewBlock(b.identifier, b.labels, *b.body.Build())
}

// ObjectBuilder accumulates items for an object literal
type ObjectBuilder struct {
	items []parser.ObjectItem
}

// Object creates an empty ObjectBuilder
func Object() *ObjectBuilder {
	return &ObjectBuilder{}
}

// Item appends an item with a bare identifier key
func (b *ObjectBuilder) Item(key string, value parser.ExprNode) *ObjectBuilder {
	b.items = append(b.items, parser.ObjectItem{
		Key:   parser.KeyIdent{Name: parser.MustIdent(key)},
		Value: value,
	})
	return b
}

// QuotedItem appends an item with a quoted string key
func (b *ObjectBuilder) QuotedItem(key string, value parser.ExprNode) *ObjectBuilder {
	b.items = append(b.items, parser.ObjectItem{
		Key:   parser.KeyExpr{Expr: parser.NewLiteralExpr(key)},
		Value: value,
	})
	return b
}

// Build returns the assembled object expression
func (b *ObjectBuilder) Build() *parser.ObjectExpr {
	return &parser.ObjectExpr{Items: b.items}
}

// FuncCallBuilder accumulates arguments for a function call
type FuncCallBuilder struct {
	call parser.FuncCallExpr
}

// FuncCall creates a FuncCallBuilder for the given function name
func FuncCall(name string) *FuncCallBuilder {
	return &FuncCallBuilder{call: parser.FuncCallExpr{Name: parser.MustIdent(name)}}
}

// Arg appends an argument
func (b *FuncCallBuilder) Arg(arg parser.ExprNode) *FuncCallBuilder {
	b.call.Args = append(b.call.Args, arg)
	return b
}

// ExpandFinal marks the final argument for expansion with `...`
func (b *FuncCallBuilder) ExpandFinal() *FuncCallBuilder {
	b.call.ExpandFinal = true
	return b
}

// Build returns the assembled call expression
func (b *FuncCallBuilder) Build() *parser.FuncCallExpr {
	return &b.call
}

// Expression shorthands

// String lifts a string into a literal expression
func String(v string) parser.ExprNode {
	return parser.NewLiteralExpr(v)
}

// Int lifts an integer into a literal expression
func Int(v int64) parser.ExprNode {
	return parser.NewLiteralExpr(v)
}

// Float lifts a float into a literal expression
func Float(v float64) parser.ExprNode {
	return parser.NewLiteralExpr(v)
}

// Bool lifts a bool into a literal expression
func Bool(v bool) parser.ExprNode {
	return parser.NewLiteralExpr(v)
}

// Null returns the null literal expression
func Null() parser.ExprNode {
	return parser.NewLiteralExpr(nil)
}

// Variable returns a variable reference. name must be a valid
// identifier.
func Variable(name string) parser.ExprNode {
	return parser.NewVariableExpr(parser.MustIdent(name))
}

// Tuple assembles a tuple literal
func Tuple(elements ...parser.ExprNode) parser.ExprNode {
	return parser.NewTupleExpr(elements...)
}
