package parser

// Failure categories name the grammar production that failed, never the
// literal lexeme. Each production attaches its own category at its own
// failure sites.
const (
	catStructure   = "invalid structure"
	catBlock       = "invalid block"
	catBlockBody   = "invalid block body"
	catAttribute   = "invalid attribute"
	catExpression  = "invalid expression"
	catConditional = "invalid conditional"
	catTraversal   = "invalid traversal operator"
	catIndex       = "invalid index"
	catObjectItem  = "invalid object item"
	catTupleItem   = "invalid tuple item"
	catFuncCall    = "invalid function call"
)

// Expected-token sets, pre-rendered for diagnostics: literal terminals
// in backticks, abstract categories bare, literals before categories.
// Process-wide immutable tables; never mutated at runtime.
var (
	expBodyStart     = []string{"identifier"}
	expStructure     = []string{"`{`", "`=`", "`\"`", "identifier"}
	expBlockLabel    = []string{"`{`", "`\"`", "identifier"}
	expBlockBody     = []string{"`}`", "newline", "identifier"}
	expOneLineClose  = []string{"`}`"}
	expAttrEqual     = []string{"`=`"}
	expNewline       = []string{"newline"}
	expExprStart     = []string{"`\"`", "`[`", "`{`", "`-`", "`!`", "`(`", "`_`", "`<`", "letter", "digit"}
	expColon         = []string{"`:`"}
	expTraversal     = []string{"`*`", "identifier", "unsigned integer"}
	expIndexClose    = []string{"`]`"}
	expTupleItem     = []string{"`]`", "`,`"}
	expObjectKey     = []string{"`}`", "`\"`", "`(`", "identifier"}
	expObjectAssign  = []string{"`=`", "`:`"}
	expObjectItem    = []string{"`}`", "`,`", "newline"}
	expFuncArg       = []string{"`)`", "`,`", "`...`"}
	expGroupClose    = []string{"`)`"}
	expExprClose     = []string{"`}`"}
)
