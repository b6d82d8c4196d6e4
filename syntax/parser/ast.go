package parser

import (
	"fmt"
	"unicode"
)

// Node is implemented by every formattable node of the document model:
// *Body, *Attribute, *Block and every ExprNode variant.
type Node interface {
	node()
}

// Ident is a string validated against the bare-identifier grammar:
// a letter or underscore followed by letters, digits, underscores or
// hyphens. Constructing one from a string that fails the grammar is a
// contract violation, distinct from a ParseError.
type Ident struct {
	name string
}

// NewIdent creates an Ident, failing if name violates the identifier
// grammar or is empty.
func NewIdent(name string) (Ident, error) {
	if !ValidIdent(name) {
		return Ident{}, fmt.Errorf("invalid identifier: %q", name)
	}
	return Ident{name: name}, nil
}

// MustIdent creates an Ident and panics if name is not a valid
// identifier. Intended for identifiers known at compile time.
func MustIdent(name string) Ident {
	ident, err := NewIdent(name)
	if err != nil {
		panic(err)
	}
	return ident
}

// String returns the identifier's name
func (i Ident) String() string {
	return i.name
}

// ValidIdent reports whether name matches the bare-identifier grammar
func ValidIdent(name string) bool {
	for i, r := range name {
		if i == 0 {
			if !(unicode.IsLetter(r) || r == '_') {
				return false
			}
			continue
		}
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-') {
			return false
		}
	}
	return name != ""
}

// Body is an ordered sequence of structures. Order is semantically
// significant: repeated block identifiers and re-declared attribute
// keys are preserved positionally, never de-duplicated.
type Body struct {
	Structures []Structure
}

func (b *Body) node() {}

// Attributes returns the attributes of the body in order
func (b *Body) Attributes() []*Attribute {
	var attrs []*Attribute
	for _, s := range b.Structures {
		if attr, ok := s.(*Attribute); ok {
			attrs = append(attrs, attr)
		}
	}
	return attrs
}

// Blocks returns the blocks of the body in order
func (b *Body) Blocks() []*Block {
	var blocks []*Block
	for _, s := range b.Structures {
		if block, ok := s.(*Block); ok {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// Structure is either an *Attribute or a *Block
type Structure interface {
	Node
	structureNode()
}

// Attribute is a key/value pair within a body
type Attribute struct {
	Key   Ident
	Value ExprNode
}

func (a *Attribute) node()          {}
func (a *Attribute) structureNode() {}

// Block is a block identifier, zero or more labels and a nested body
type Block struct {
	Identifier Ident
	Labels     []BlockLabel
	Body       Body
}

func (b *Block) node()          {}
func (b *Block) structureNode() {}

// BlockLabel is a block qualifier, either a bare identifier or a quoted
// string. The two are distinct model types because the formatter and
// label-kind-sensitive consumers need to tell them apart.
type BlockLabel interface {
	blockLabelNode()

	// AsString returns the label text. Once reduced to a plain string
	// the identifier/quoted distinction is irrecoverable; that loss is
	// intentional and confined to this conversion.
	AsString() string
}

// LabelIdent is a bare identifier block label
type LabelIdent struct {
	Name Ident
}

func (l LabelIdent) blockLabelNode() {}

// AsString returns the label text
func (l LabelIdent) AsString() string { return l.Name.String() }

// LabelString is a quoted string block label
type LabelString struct {
	Value string
}

func (l LabelString) blockLabelNode() {}

// AsString returns the label text
func (l LabelString) AsString() string { return l.Value }

// Constructor functions

// NewBody creates a Body from structures
func NewBody(structures ...Structure) *Body {
	return &Body{Structures: structures}
}

// NewAttribute creates an Attribute
func NewAttribute(key Ident, value ExprNode) *Attribute {
	return &Attribute{Key: key, Value: value}
}

// NewBlock creates a Block
func NewBlock(identifier Ident, labels []BlockLabel, body Body) *Block {
	return &Block{Identifier: identifier, Labels: labels, Body: body}
}
