package parser

// ExprNode is the interface for all expression nodes. The variant set
// is closed: the formatter and any consumer switch exhaustively over
// the types below.
type ExprNode interface {
	Node
	exprNode()
}

// LiteralExpr represents a literal value: nil (null), bool, int64,
// float64 or string.
type LiteralExpr struct {
	Value interface{}
}

func (e *LiteralExpr) node()     {}
func (e *LiteralExpr) exprNode() {}

// VariableExpr represents a bare variable reference
type VariableExpr struct {
	Name Ident
}

func (e *VariableExpr) node()     {}
func (e *VariableExpr) exprNode() {}

// TemplatePart is a fragment of a quoted or heredoc template: either a
// TemplateLiteral or a TemplateInterp.
type TemplatePart interface {
	templatePart()
}

// TemplateLiteral is a run of literal template text, escapes decoded
type TemplateLiteral struct {
	Value string
}

func (p TemplateLiteral) templatePart() {}

// TemplateInterp is a ${...} interpolation
type TemplateInterp struct {
	Expr ExprNode
}

func (p TemplateInterp) templatePart() {}

// TemplateExpr represents a quoted template containing at least one
// interpolation. A quoted string without interpolations parses to a
// string LiteralExpr instead.
type TemplateExpr struct {
	Parts []TemplatePart
}

func (e *TemplateExpr) node()     {}
func (e *TemplateExpr) exprNode() {}

// HeredocExpr represents a heredoc template
type HeredocExpr struct {
	Marker   Ident
	Indented bool // introduced by <<- rather than <<
	Parts    []TemplatePart
}

func (e *HeredocExpr) node()     {}
func (e *HeredocExpr) exprNode() {}

// TupleExpr represents a tuple literal [e1, e2, e3]
type TupleExpr struct {
	Elements []ExprNode
}

func (e *TupleExpr) node()     {}
func (e *TupleExpr) exprNode() {}

// ObjectKey is an object item key: a bare identifier (KeyIdent) or an
// expression (KeyExpr, for quoted and computed keys).
type ObjectKey interface {
	objectKeyNode()
}

// KeyIdent is a bare identifier object key
type KeyIdent struct {
	Name Ident
}

func (k KeyIdent) objectKeyNode() {}

// KeyExpr is a quoted-string or parenthesized object key
type KeyExpr struct {
	Expr ExprNode
}

func (k KeyExpr) objectKeyNode() {}

// ObjectItem is a single key/value pair within an object literal
type ObjectItem struct {
	Key   ObjectKey
	Value ExprNode
}

// ObjectExpr represents an object literal { k1 = v1, k2 = v2 }
type ObjectExpr struct {
	Items []ObjectItem
}

func (e *ObjectExpr) node()     {}
func (e *ObjectExpr) exprNode() {}

// FuncCallExpr represents a function call. ExpandFinal marks a trailing
// `...` after the last argument.
type FuncCallExpr struct {
	Name        Ident
	Args        []ExprNode
	ExpandFinal bool
}

func (e *FuncCallExpr) node()     {}
func (e *FuncCallExpr) exprNode() {}

// Traverser is a single traversal operator: attribute access, index,
// legacy dot-index or splat.
type Traverser interface {
	traverserNode()
}

// TraverseAttr is attribute access: .name
type TraverseAttr struct {
	Name Ident
}

func (t TraverseAttr) traverserNode() {}

// TraverseIndex is bracketed indexing: [expr]
type TraverseIndex struct {
	Index ExprNode
}

func (t TraverseIndex) traverserNode() {}

// TraverseDotIndex is dotted tuple indexing: .0
type TraverseDotIndex struct {
	Index uint64
}

func (t TraverseDotIndex) traverserNode() {}

// TraverseSplat is a splat operator: [*] when Full, .* otherwise
type TraverseSplat struct {
	Full bool
}

func (t TraverseSplat) traverserNode() {}

// TraversalExpr applies an ordered chain of traversal operators to a
// base expression
type TraversalExpr struct {
	Expr ExprNode
	Ops  []Traverser
}

func (e *TraversalExpr) node()     {}
func (e *TraversalExpr) exprNode() {}

// UnaryOp is a unary operator
type UnaryOp int

const (
	UnaryNeg UnaryOp = iota // -
	UnaryNot                // !
)

// String returns the operator's lexeme
func (op UnaryOp) String() string {
	if op == UnaryNot {
		return "!"
	}
	return "-"
}

// UnaryExpr represents a unary operation
type UnaryExpr struct {
	Op      UnaryOp
	Operand ExprNode
}

func (e *UnaryExpr) node()     {}
func (e *UnaryExpr) exprNode() {}

// BinaryOp is a binary operator
type BinaryOp int

const (
	BinaryOr        BinaryOp = iota // ||
	BinaryAnd                       // &&
	BinaryEq                        // ==
	BinaryNotEq                     // !=
	BinaryLess                      // <
	BinaryLessEq                    // <=
	BinaryGreater                   // >
	BinaryGreaterEq                 // >=
	BinaryAdd                       // +
	BinarySub                       // -
	BinaryMul                       // *
	BinaryDiv                       // /
	BinaryMod                       // %
)

// String returns the operator's lexeme
func (op BinaryOp) String() string {
	switch op {
	case BinaryOr:
		return "||"
	case BinaryAnd:
		return "&&"
	case BinaryEq:
		return "=="
	case BinaryNotEq:
		return "!="
	case BinaryLess:
		return "<"
	case BinaryLessEq:
		return "<="
	case BinaryGreater:
		return ">"
	case BinaryGreaterEq:
		return ">="
	case BinaryAdd:
		return "+"
	case BinarySub:
		return "-"
	case BinaryMul:
		return "*"
	case BinaryDiv:
		return "/"
	case BinaryMod:
		return "%"
	default:
		return "?"
	}
}

// BinaryExpr represents a binary operation
type BinaryExpr struct {
	Left  ExprNode
	Op    BinaryOp
	Right ExprNode
}

func (e *BinaryExpr) node()     {}
func (e *BinaryExpr) exprNode() {}

// ParenExpr represents a parenthesized expression
type ParenExpr struct {
	Expr ExprNode
}

func (e *ParenExpr) node()     {}
func (e *ParenExpr) exprNode() {}

// ConditionalExpr represents cond ? true : false
type ConditionalExpr struct {
	Condition ExprNode
	TrueExpr  ExprNode
	FalseExpr ExprNode
}

func (e *ConditionalExpr) node()     {}
func (e *ConditionalExpr) exprNode() {}

// Constructor functions

// NewLiteralExpr creates a literal expression
func NewLiteralExpr(value interface{}) *LiteralExpr {
	return &LiteralExpr{Value: value}
}

// NewVariableExpr creates a variable reference expression
func NewVariableExpr(name Ident) *VariableExpr {
	return &VariableExpr{Name: name}
}

// NewTupleExpr creates a tuple literal expression
func NewTupleExpr(elements ...ExprNode) *TupleExpr {
	return &TupleExpr{Elements: elements}
}

// NewObjectExpr creates an object literal expression
func NewObjectExpr(items ...ObjectItem) *ObjectExpr {
	return &ObjectExpr{Items: items}
}

// NewFuncCallExpr creates a function call expression
func NewFuncCallExpr(name Ident, args ...ExprNode) *FuncCallExpr {
	return &FuncCallExpr{Name: name, Args: args}
}

// NewTraversalExpr creates a traversal expression
func NewTraversalExpr(expr ExprNode, ops ...Traverser) *TraversalExpr {
	return &TraversalExpr{Expr: expr, Ops: ops}
}

// NewUnaryExpr creates a unary expression
func NewUnaryExpr(op UnaryOp, operand ExprNode) *UnaryExpr {
	return &UnaryExpr{Op: op, Operand: operand}
}

// NewBinaryExpr creates a binary expression
func NewBinaryExpr(left ExprNode, op BinaryOp, right ExprNode) *BinaryExpr {
	return &BinaryExpr{Left: left, Op: op, Right: right}
}

// NewConditionalExpr creates a conditional expression
func NewConditionalExpr(condition, trueExpr, falseExpr ExprNode) *ConditionalExpr {
	return &ConditionalExpr{Condition: condition, TrueExpr: trueExpr, FalseExpr: falseExpr}
}
