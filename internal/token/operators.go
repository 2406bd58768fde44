package token

// OperatorID enumerates the operators.
type OperatorID uint8

const (
	NoOperator OperatorID = iota
	OpDot                 // .
	OpArrow               // ->
	OpNot                 // !
	OpCompl               // ~
	OpInc                 // ++
	OpDec                 // --
	OpRecv                // <-
	OpAvail               // ?
	OpMul                 // *
	OpDiv                 // /
	OpMod                 // %
	OpAdd                 // +
	OpSub                 // -
	OpShl                 // <<
	OpShr                 // >>
	OpIter                // ::
	OpLe                  // <=
	OpLt                  // <
	OpGt                  // >
	OpGe                  // >=
	OpEq                  // ==
	OpNe                  // !=
	OpAnd                 // &
	OpOr                  // |
	OpXor                 // ^
	OpAndAnd              // &&
	OpOrOr                // ||
	OpSend                // <-=
	OpAssign              // =
	OpDeclare             // :=
	OpAddAssign           // +=
	OpSubAssign           // -=
	OpMulAssign           // *=
	OpDivAssign           // /=
	OpModAssign           // %=
	OpAndAssign           // &=
	OpOrAssign            // |=
	OpXorAssign           // ^=
	OpShlAssign           // <<=
	OpShrAssign           // >>=
	operatorCount
)

type operatorInfo struct {
	text string
	prec uint8
}

var operatorTable = [...]operatorInfo{
	OpDot:       {".", 14},
	OpArrow:     {"->", 14},
	OpNot:       {"!", 13},
	OpCompl:     {"~", 13},
	OpInc:       {"++", 13},
	OpDec:       {"--", 13},
	OpRecv:      {"<-", 13},
	OpAvail:     {"?", 13},
	OpMul:       {"*", 12},
	OpDiv:       {"/", 12},
	OpMod:       {"%", 12},
	OpAdd:       {"+", 11},
	OpSub:       {"-", 11},
	OpShl:       {"<<", 10},
	OpShr:       {">>", 10},
	OpIter:      {"::", 9},
	OpLe:        {"<=", 8},
	OpLt:        {"<", 8},
	OpGt:        {">", 8},
	OpGe:        {">=", 8},
	OpEq:        {"==", 7},
	OpNe:        {"!=", 7},
	OpAnd:       {"&", 6},
	OpOr:        {"|", 5},
	OpXor:       {"^", 4},
	OpAndAnd:    {"&&", 3},
	OpOrOr:      {"||", 2},
	OpSend:      {"<-=", 1},
	OpAssign:    {"=", 1},
	OpDeclare:   {":=", 1},
	OpAddAssign: {"+=", 1},
	OpSubAssign: {"-=", 1},
	OpMulAssign: {"*=", 1},
	OpDivAssign: {"/=", 1},
	OpModAssign: {"%=", 1},
	OpAndAssign: {"&=", 1},
	OpOrAssign:  {"|=", 1},
	OpXorAssign: {"^=", 1},
	OpShlAssign: {"<<=", 1},
	OpShrAssign: {">>=", 1},
}

var operatorsByText = func() map[string]OperatorID {
	m := make(map[string]OperatorID, int(operatorCount)-1)
	for id := OpDot; id < operatorCount; id++ {
		m[operatorTable[id].text] = id
	}
	return m
}()

// LookupOperator finds an operator by its spelling.
func LookupOperator(text string) (OperatorID, bool) {
	op, ok := operatorsByText[text]
	return op, ok
}

// Operators returns every operator in declaration order.
func Operators() []OperatorID {
	out := make([]OperatorID, 0, int(operatorCount)-1)
	for id := OpDot; id < operatorCount; id++ {
		out = append(out, id)
	}
	return out
}

func (op OperatorID) valid() bool { return op > NoOperator && op < operatorCount }

func (op OperatorID) String() string {
	if op.valid() {
		return operatorTable[op].text
	}
	return "OperatorID(?)"
}

// Precedence returns the binding strength of op: 14 binds tightest,
// 1 is the assignment level, 0 means op is not an operator.
func (op OperatorID) Precedence() int {
	if op.valid() {
		return int(operatorTable[op].prec)
	}
	return 0
}

// IsAssign reports whether op is one of the assignment forms.
func (op OperatorID) IsAssign() bool {
	return op.Precedence() == 1
}

// IsUnary reports whether op can appear as a prefix or postfix operator.
func (op OperatorID) IsUnary() bool {
	switch op {
	case OpNot, OpCompl, OpInc, OpDec, OpRecv, OpAvail, OpMul, OpAnd, OpSub, OpAdd:
		return true
	default:
		return false
	}
}
