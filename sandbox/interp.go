package sandbox

import (
	"context"
	"go/ast"
	"go/token"
	"sort"
	"strconv"
)

// maxCallDepth bounds recursion so a runaway recursive submission fails
// with a classified error instead of exhausting the host stack.
const maxCallDepth = 1000

// Call executes fn(args) inside the function's environment. Cancellation
// is observed at loop back-edges and call boundaries, so a worker whose
// deadline expired normally unwinds instead of running forever. All
// failures come back as *Failure; nothing escapes as a raw panic.
func Call(ctx context.Context, fn *Func, args []Value) (Value, error) {
	in := &interp{env: fn.env, ctx: ctx}
	return in.callFunc(fn, args)
}

type interp struct {
	env   *Env
	ctx   context.Context
	depth int
}

// scope is one lexical scope; lookups walk toward the function root.
type scope struct {
	vars   map[string]Value
	parent *scope
}

func newScope(parent *scope) *scope {
	return &scope{vars: make(map[string]Value), parent: parent}
}

func (s *scope) lookup(name string) (Value, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if v, ok := sc.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

func (s *scope) set(name string, v Value) bool {
	for sc := s; sc != nil; sc = sc.parent {
		if _, ok := sc.vars[name]; ok {
			sc.vars[name] = v
			return true
		}
	}
	return false
}

type flow int

const (
	flowNone flow = iota
	flowReturn
	flowBreak
	flowContinue
)

func (in *interp) checkCancel() error {
	select {
	case <-in.ctx.Done():
		return otherErr("execution canceled")
	default:
		return nil
	}
}

func (in *interp) callFunc(fn *Func, args []Value) (Value, error) {
	if len(args) != len(fn.params) {
		return nil, typeErr("%s() takes %d argument(s), got %d",
			fn.name, len(fn.params), len(args))
	}
	if in.depth >= maxCallDepth {
		return nil, otherErr("maximum recursion depth exceeded in %s()", fn.name)
	}
	if err := in.checkCancel(); err != nil {
		return nil, err
	}

	in.depth++
	defer func() { in.depth-- }()

	sc := newScope(nil)
	for i, name := range fn.params {
		sc.vars[name] = args[i]
	}

	fl, val, err := in.execBlock(sc, fn.body)
	if err != nil {
		return nil, err
	}
	if fl == flowReturn {
		return val, nil
	}
	// fell off the end of the function body
	return None, nil
}

func (in *interp) execBlock(sc *scope, block *ast.BlockStmt) (flow, Value, error) {
	inner := newScope(sc)
	return in.execStmts(inner, block.List)
}

func (in *interp) execStmts(sc *scope, stmts []ast.Stmt) (flow, Value, error) {
	for _, stmt := range stmts {
		fl, val, err := in.execStmt(sc, stmt)
		if err != nil || fl != flowNone {
			return fl, val, err
		}
	}
	return flowNone, nil, nil
}

func (in *interp) execStmt(sc *scope, stmt ast.Stmt) (flow, Value, error) {
	switch s := stmt.(type) {
	case *ast.ReturnStmt:
		switch len(s.Results) {
		case 0:
			return flowReturn, None, nil
		case 1:
			v, err := in.eval(sc, s.Results[0])
			if err != nil {
				return flowNone, nil, err
			}
			return flowReturn, v, nil
		default:
			return flowNone, nil, typeErr("multiple return values are not supported")
		}

	case *ast.AssignStmt:
		return flowNone, nil, in.execAssign(sc, s)

	case *ast.IncDecStmt:
		one := Value(int64(1))
		op := token.ADD
		if s.Tok == token.DEC {
			op = token.SUB
		}
		cur, err := in.eval(sc, s.X)
		if err != nil {
			return flowNone, nil, err
		}
		next, err := binop(op, cur, one)
		if err != nil {
			return flowNone, nil, err
		}
		return flowNone, nil, in.assignTo(sc, s.X, next, false)

	case *ast.ExprStmt:
		_, err := in.eval(sc, s.X)
		return flowNone, nil, err

	case *ast.IfStmt:
		inner := newScope(sc)
		if s.Init != nil {
			if fl, val, err := in.execStmt(inner, s.Init); err != nil || fl != flowNone {
				return fl, val, err
			}
		}
		cond, err := in.evalBool(inner, s.Cond, "if condition")
		if err != nil {
			return flowNone, nil, err
		}
		if cond {
			return in.execBlock(inner, s.Body)
		}
		if s.Else != nil {
			return in.execStmt(inner, s.Else)
		}
		return flowNone, nil, nil

	case *ast.BlockStmt:
		return in.execBlock(sc, s)

	case *ast.ForStmt:
		return in.execFor(sc, s)

	case *ast.RangeStmt:
		return in.execRange(sc, s)

	case *ast.SwitchStmt:
		return in.execSwitch(sc, s)

	case *ast.BranchStmt:
		switch s.Tok {
		case token.BREAK:
			return flowBreak, nil, nil
		case token.CONTINUE:
			return flowContinue, nil, nil
		default:
			return flowNone, nil, otherErr("%s is not supported", s.Tok)
		}

	case *ast.DeclStmt:
		return flowNone, nil, in.execDecl(sc, s)

	default:
		return flowNone, nil, otherErr("unsupported statement")
	}
}

func (in *interp) execAssign(sc *scope, s *ast.AssignStmt) error {
	if s.Tok != token.ASSIGN && s.Tok != token.DEFINE {
		// compound assignment: x += v and friends, single target only
		if len(s.Lhs) != 1 || len(s.Rhs) != 1 {
			return typeErr("compound assignment takes exactly one target")
		}
		cur, err := in.eval(sc, s.Lhs[0])
		if err != nil {
			return err
		}
		rhs, err := in.eval(sc, s.Rhs[0])
		if err != nil {
			return err
		}
		next, err := binop(assignBinOp(s.Tok), cur, rhs)
		if err != nil {
			return err
		}
		return in.assignTo(sc, s.Lhs[0], next, false)
	}

	if len(s.Lhs) != len(s.Rhs) {
		return typeErr("assignment mismatch: %d target(s) but %d value(s)",
			len(s.Lhs), len(s.Rhs))
	}
	// evaluate all right-hand sides first so swaps work
	vals := make([]Value, len(s.Rhs))
	for i, rhs := range s.Rhs {
		v, err := in.eval(sc, rhs)
		if err != nil {
			return err
		}
		vals[i] = v
	}
	for i, lhs := range s.Lhs {
		if err := in.assignTo(sc, lhs, vals[i], s.Tok == token.DEFINE); err != nil {
			return err
		}
	}
	return nil
}

func assignBinOp(tok token.Token) token.Token {
	switch tok {
	case token.ADD_ASSIGN:
		return token.ADD
	case token.SUB_ASSIGN:
		return token.SUB
	case token.MUL_ASSIGN:
		return token.MUL
	case token.QUO_ASSIGN:
		return token.QUO
	case token.REM_ASSIGN:
		return token.REM
	case token.AND_ASSIGN:
		return token.AND
	case token.OR_ASSIGN:
		return token.OR
	case token.XOR_ASSIGN:
		return token.XOR
	case token.SHL_ASSIGN:
		return token.SHL
	case token.SHR_ASSIGN:
		return token.SHR
	default:
		return token.ILLEGAL
	}
}

func (in *interp) assignTo(sc *scope, lhs ast.Expr, v Value, define bool) error {
	switch target := lhs.(type) {
	case *ast.Ident:
		if target.Name == "_" {
			return nil
		}
		if define {
			sc.vars[target.Name] = v
			return nil
		}
		if !sc.set(target.Name, v) {
			return nameErr("undefined: %s", target.Name)
		}
		return nil

	case *ast.IndexExpr:
		container, err := in.eval(sc, target.X)
		if err != nil {
			return err
		}
		idx, err := in.eval(sc, target.Index)
		if err != nil {
			return err
		}
		switch c := container.(type) {
		case []Value:
			i, ok := idx.(int64)
			if !ok {
				return typeErr("list index must be an int, got %s", TypeName(idx))
			}
			if i < 0 || i >= int64(len(c)) {
				return indexErr("list index %d out of range for length %d", i, len(c))
			}
			c[i] = v
			return nil
		case map[Value]Value:
			if err := checkMapKey(idx); err != nil {
				return err
			}
			c[idx] = v
			return nil
		default:
			return typeErr("%s does not support index assignment", TypeName(container))
		}

	default:
		return typeErr("invalid assignment target")
	}
}

func (in *interp) execDecl(sc *scope, s *ast.DeclStmt) error {
	gd, ok := s.Decl.(*ast.GenDecl)
	if !ok || (gd.Tok != token.VAR && gd.Tok != token.CONST) {
		return otherErr("unsupported declaration")
	}
	for _, spec := range gd.Specs {
		vs, ok := spec.(*ast.ValueSpec)
		if !ok {
			return otherErr("unsupported declaration")
		}
		for i, name := range vs.Names {
			var v Value = None
			if i < len(vs.Values) {
				var err error
				v, err = in.eval(sc, vs.Values[i])
				if err != nil {
					return err
				}
			}
			if name.Name != "_" {
				sc.vars[name.Name] = v
			}
		}
	}
	return nil
}

func (in *interp) execFor(sc *scope, s *ast.ForStmt) (flow, Value, error) {
	inner := newScope(sc)
	if s.Init != nil {
		if fl, val, err := in.execStmt(inner, s.Init); err != nil || fl != flowNone {
			return fl, val, err
		}
	}
	for {
		if err := in.checkCancel(); err != nil {
			return flowNone, nil, err
		}
		if s.Cond != nil {
			cond, err := in.evalBool(inner, s.Cond, "for condition")
			if err != nil {
				return flowNone, nil, err
			}
			if !cond {
				return flowNone, nil, nil
			}
		}
		fl, val, err := in.execBlock(inner, s.Body)
		if err != nil {
			return flowNone, nil, err
		}
		switch fl {
		case flowReturn:
			return flowReturn, val, nil
		case flowBreak:
			return flowNone, nil, nil
		}
		if s.Post != nil {
			if fl, val, err := in.execStmt(inner, s.Post); err != nil || fl != flowNone {
				return fl, val, err
			}
		}
	}
}

func (in *interp) execRange(sc *scope, s *ast.RangeStmt) (flow, Value, error) {
	subject, err := in.eval(sc, s.X)
	if err != nil {
		return flowNone, nil, err
	}

	var keys, vals []Value
	switch subj := subject.(type) {
	case []Value:
		for i, v := range subj {
			keys = append(keys, int64(i))
			vals = append(vals, v)
		}
	case string:
		for i, r := range subj {
			keys = append(keys, int64(i))
			vals = append(vals, string(r))
		}
	case map[Value]Value:
		// deterministic iteration order
		mk := make([]Value, 0, len(subj))
		for k := range subj {
			mk = append(mk, k)
		}
		sort.Slice(mk, func(i, j int) bool { return Repr(mk[i]) < Repr(mk[j]) })
		for _, k := range mk {
			keys = append(keys, k)
			vals = append(vals, subj[k])
		}
	case int64:
		for i := int64(0); i < subj; i++ {
			keys = append(keys, i)
			vals = append(vals, None)
		}
	default:
		return flowNone, nil, typeErr("cannot range over %s", TypeName(subject))
	}

	inner := newScope(sc)
	define := s.Tok == token.DEFINE
	for i := range keys {
		if err := in.checkCancel(); err != nil {
			return flowNone, nil, err
		}
		if s.Key != nil {
			if err := in.assignTo(inner, s.Key, keys[i], define); err != nil {
				return flowNone, nil, err
			}
		}
		if s.Value != nil {
			if err := in.assignTo(inner, s.Value, vals[i], define); err != nil {
				return flowNone, nil, err
			}
		}
		fl, val, err := in.execBlock(inner, s.Body)
		if err != nil {
			return flowNone, nil, err
		}
		switch fl {
		case flowReturn:
			return flowReturn, val, nil
		case flowBreak:
			return flowNone, nil, nil
		}
	}
	return flowNone, nil, nil
}

func (in *interp) execSwitch(sc *scope, s *ast.SwitchStmt) (flow, Value, error) {
	inner := newScope(sc)
	if s.Init != nil {
		if fl, val, err := in.execStmt(inner, s.Init); err != nil || fl != flowNone {
			return fl, val, err
		}
	}
	var tag Value
	hasTag := s.Tag != nil
	if hasTag {
		var err error
		tag, err = in.eval(inner, s.Tag)
		if err != nil {
			return flowNone, nil, err
		}
	}

	var defaultClause *ast.CaseClause
	for _, stmt := range s.Body.List {
		clause, ok := stmt.(*ast.CaseClause)
		if !ok {
			return flowNone, nil, otherErr("unsupported statement in switch")
		}
		if clause.List == nil {
			defaultClause = clause
			continue
		}
		for _, expr := range clause.List {
			var match bool
			if hasTag {
				v, err := in.eval(inner, expr)
				if err != nil {
					return flowNone, nil, err
				}
				match = Equal(tag, v)
			} else {
				var err error
				match, err = in.evalBool(inner, expr, "switch case")
				if err != nil {
					return flowNone, nil, err
				}
			}
			if match {
				return in.execClause(inner, clause)
			}
		}
	}
	if defaultClause != nil {
		return in.execClause(inner, defaultClause)
	}
	return flowNone, nil, nil
}

func (in *interp) execClause(sc *scope, clause *ast.CaseClause) (flow, Value, error) {
	fl, val, err := in.execStmts(newScope(sc), clause.Body)
	if fl == flowBreak {
		// break inside a switch leaves the switch only
		return flowNone, nil, err
	}
	return fl, val, err
}

func (in *interp) evalBool(sc *scope, expr ast.Expr, where string) (bool, error) {
	v, err := in.eval(sc, expr)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, typeErr("%s must be a bool, got %s", where, TypeName(v))
	}
	return b, nil
}

func (in *interp) eval(sc *scope, expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.BasicLit:
		return evalLiteral(e)

	case *ast.Ident:
		return in.evalIdent(sc, e)

	case *ast.ParenExpr:
		return in.eval(sc, e.X)

	case *ast.UnaryExpr:
		return in.evalUnary(sc, e)

	case *ast.BinaryExpr:
		return in.evalBinary(sc, e)

	case *ast.CallExpr:
		return in.evalCall(sc, e)

	case *ast.IndexExpr:
		return in.evalIndex(sc, e)

	case *ast.SliceExpr:
		return in.evalSlice(sc, e)

	case *ast.CompositeLit:
		return in.evalComposite(sc, e)

	case *ast.SelectorExpr:
		return nil, typeErr("attribute access is not supported")

	case *ast.FuncLit:
		return nil, typeErr("function literals are not supported")

	default:
		return nil, otherErr("unsupported expression")
	}
}

func evalLiteral(lit *ast.BasicLit) (Value, error) {
	switch lit.Kind {
	case token.INT:
		n, err := strconv.ParseInt(lit.Value, 0, 64)
		if err != nil {
			return nil, arithErr("integer literal %s out of range", lit.Value)
		}
		return n, nil
	case token.FLOAT:
		f, err := strconv.ParseFloat(lit.Value, 64)
		if err != nil {
			return nil, arithErr("invalid float literal %s", lit.Value)
		}
		return f, nil
	case token.STRING:
		s, err := strconv.Unquote(lit.Value)
		if err != nil {
			return nil, otherErr("invalid string literal")
		}
		return s, nil
	case token.CHAR:
		s, err := strconv.Unquote(lit.Value)
		if err != nil {
			return nil, otherErr("invalid character literal")
		}
		return s, nil // characters are one-element strings in the dialect
	default:
		return nil, otherErr("unsupported literal %s", lit.Kind)
	}
}

func (in *interp) evalIdent(sc *scope, id *ast.Ident) (Value, error) {
	// locals shadow the predeclared names, like Go's predeclared identifiers
	if v, ok := sc.lookup(id.Name); ok {
		return v, nil
	}
	switch id.Name {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "nil", "none":
		return None, nil
	}
	if fn, ok := in.env.Lookup(id.Name); ok {
		return fn, nil
	}
	return nil, nameErr("undefined: %s", id.Name)
}

func (in *interp) evalUnary(sc *scope, e *ast.UnaryExpr) (Value, error) {
	v, err := in.eval(sc, e.X)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case token.SUB:
		switch n := v.(type) {
		case int64:
			return -n, nil
		case float64:
			return -n, nil
		}
		return nil, typeErr("cannot negate %s", TypeName(v))
	case token.ADD:
		switch v.(type) {
		case int64, float64:
			return v, nil
		}
		return nil, typeErr("unary + requires a number, got %s", TypeName(v))
	case token.NOT:
		b, ok := v.(bool)
		if !ok {
			return nil, typeErr("operator ! requires a bool, got %s", TypeName(v))
		}
		return !b, nil
	case token.XOR:
		n, ok := v.(int64)
		if !ok {
			return nil, typeErr("operator ^ requires an int, got %s", TypeName(v))
		}
		return ^n, nil
	default:
		return nil, typeErr("unsupported unary operator %s", e.Op)
	}
}

func (in *interp) evalBinary(sc *scope, e *ast.BinaryExpr) (Value, error) {
	if e.Op == token.LAND || e.Op == token.LOR {
		left, err := in.evalBool(sc, e.X, "operand of "+e.Op.String())
		if err != nil {
			return nil, err
		}
		if (e.Op == token.LAND && !left) || (e.Op == token.LOR && left) {
			return left, nil
		}
		return in.evalBool(sc, e.Y, "operand of "+e.Op.String())
	}

	left, err := in.eval(sc, e.X)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(sc, e.Y)
	if err != nil {
		return nil, err
	}
	return binop(e.Op, left, right)
}

func binop(op token.Token, a, b Value) (Value, error) {
	switch op {
	case token.EQL:
		return Equal(a, b), nil
	case token.NEQ:
		return !Equal(a, b), nil
	}

	ai, aIsInt := a.(int64)
	bi, bIsInt := b.(int64)
	if aIsInt && bIsInt {
		return intBinop(op, ai, bi)
	}

	// numeric promotion: int op float runs in float
	af, aIsNum := toFloat(a)
	bf, bIsNum := toFloat(b)
	if aIsNum && bIsNum {
		return floatBinop(op, af, bf)
	}

	as, aIsStr := a.(string)
	bs, bIsStr := b.(string)
	if aIsStr && bIsStr {
		return stringBinop(op, as, bs)
	}

	return nil, typeErr("unsupported operand types for %s: %s and %s",
		op, TypeName(a), TypeName(b))
}

func toFloat(v Value) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func intBinop(op token.Token, a, b int64) (Value, error) {
	switch op {
	case token.ADD:
		return a + b, nil
	case token.SUB:
		return a - b, nil
	case token.MUL:
		return a * b, nil
	case token.QUO:
		if b == 0 {
			return nil, arithErr("integer division by zero")
		}
		return a / b, nil
	case token.REM:
		if b == 0 {
			return nil, arithErr("modulo by zero")
		}
		return a % b, nil
	case token.AND:
		return a & b, nil
	case token.OR:
		return a | b, nil
	case token.XOR:
		return a ^ b, nil
	case token.AND_NOT:
		return a &^ b, nil
	case token.SHL:
		if b < 0 || b > 63 {
			return nil, arithErr("shift count %d out of range", b)
		}
		return a << uint(b), nil
	case token.SHR:
		if b < 0 || b > 63 {
			return nil, arithErr("shift count %d out of range", b)
		}
		return a >> uint(b), nil
	case token.LSS:
		return a < b, nil
	case token.LEQ:
		return a <= b, nil
	case token.GTR:
		return a > b, nil
	case token.GEQ:
		return a >= b, nil
	default:
		return nil, typeErr("unsupported operator %s for int", op)
	}
}

func floatBinop(op token.Token, a, b float64) (Value, error) {
	switch op {
	case token.ADD:
		return a + b, nil
	case token.SUB:
		return a - b, nil
	case token.MUL:
		return a * b, nil
	case token.QUO:
		if b == 0 {
			return nil, arithErr("division by zero")
		}
		return a / b, nil
	case token.LSS:
		return a < b, nil
	case token.LEQ:
		return a <= b, nil
	case token.GTR:
		return a > b, nil
	case token.GEQ:
		return a >= b, nil
	default:
		return nil, typeErr("unsupported operator %s for float", op)
	}
}

func stringBinop(op token.Token, a, b string) (Value, error) {
	switch op {
	case token.ADD:
		return a + b, nil
	case token.LSS:
		return a < b, nil
	case token.LEQ:
		return a <= b, nil
	case token.GTR:
		return a > b, nil
	case token.GEQ:
		return a >= b, nil
	default:
		return nil, typeErr("unsupported operator %s for str", op)
	}
}

func (in *interp) evalCall(sc *scope, call *ast.CallExpr) (Value, error) {
	args := make([]Value, len(call.Args))
	for i, argExpr := range call.Args {
		v, err := in.eval(sc, argExpr)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if id, ok := call.Fun.(*ast.Ident); ok {
		if v, found := sc.lookup(id.Name); found {
			fn, isFn := v.(*Func)
			if !isFn {
				return nil, typeErr("%s is not callable (%s)", id.Name, TypeName(v))
			}
			return in.callFunc(fn, args)
		}
		if fn, found := in.env.Lookup(id.Name); found {
			return in.callFunc(fn, args)
		}
		if b, found := builtins[id.Name]; found {
			return b(in, id.Name, args)
		}
		return nil, nameErr("undefined function: %s", id.Name)
	}

	callee, err := in.eval(sc, call.Fun)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(*Func)
	if !ok {
		return nil, typeErr("%s is not callable", TypeName(callee))
	}
	return in.callFunc(fn, args)
}

func (in *interp) evalIndex(sc *scope, e *ast.IndexExpr) (Value, error) {
	container, err := in.eval(sc, e.X)
	if err != nil {
		return nil, err
	}
	idx, err := in.eval(sc, e.Index)
	if err != nil {
		return nil, err
	}

	switch c := container.(type) {
	case []Value:
		i, ok := idx.(int64)
		if !ok {
			return nil, typeErr("list index must be an int, got %s", TypeName(idx))
		}
		if i < 0 || i >= int64(len(c)) {
			return nil, indexErr("list index %d out of range for length %d", i, len(c))
		}
		return c[i], nil
	case string:
		i, ok := idx.(int64)
		if !ok {
			return nil, typeErr("string index must be an int, got %s", TypeName(idx))
		}
		if i < 0 || i >= int64(len(c)) {
			return nil, indexErr("string index %d out of range for length %d", i, len(c))
		}
		return string(c[i]), nil
	case map[Value]Value:
		if err := checkMapKey(idx); err != nil {
			return nil, err
		}
		v, ok := c[idx]
		if !ok {
			return nil, keyErr("key not found: %s", Repr(idx))
		}
		return v, nil
	default:
		return nil, typeErr("%s is not indexable", TypeName(container))
	}
}

func (in *interp) evalSlice(sc *scope, e *ast.SliceExpr) (Value, error) {
	if e.Slice3 {
		return nil, typeErr("three-index slices are not supported")
	}
	container, err := in.eval(sc, e.X)
	if err != nil {
		return nil, err
	}

	length := 0
	switch c := container.(type) {
	case []Value:
		length = len(c)
	case string:
		length = len(c)
	default:
		return nil, typeErr("%s cannot be sliced", TypeName(container))
	}

	lo := int64(0)
	hi := int64(length)
	if e.Low != nil {
		lo, err = in.evalIntOperand(sc, e.Low, "slice bound")
		if err != nil {
			return nil, err
		}
	}
	if e.High != nil {
		hi, err = in.evalIntOperand(sc, e.High, "slice bound")
		if err != nil {
			return nil, err
		}
	}
	if lo < 0 || hi > int64(length) || lo > hi {
		return nil, indexErr("slice bounds [%d:%d] out of range for length %d", lo, hi, length)
	}

	switch c := container.(type) {
	case []Value:
		out := make([]Value, hi-lo)
		copy(out, c[lo:hi])
		return out, nil
	case string:
		return c[lo:hi], nil
	}
	return nil, nil // unreachable
}

func (in *interp) evalIntOperand(sc *scope, expr ast.Expr, where string) (int64, error) {
	v, err := in.eval(sc, expr)
	if err != nil {
		return 0, err
	}
	n, ok := v.(int64)
	if !ok {
		return 0, typeErr("%s must be an int, got %s", where, TypeName(v))
	}
	return n, nil
}

func (in *interp) evalComposite(sc *scope, lit *ast.CompositeLit) (Value, error) {
	isMap := false
	switch lit.Type.(type) {
	case *ast.MapType:
		isMap = true
	case *ast.ArrayType:
	case nil:
		// nested untyped literal: decide by element shape
		for _, elt := range lit.Elts {
			if _, ok := elt.(*ast.KeyValueExpr); ok {
				isMap = true
			}
			break
		}
	default:
		return nil, typeErr("unsupported composite literal")
	}

	if isMap {
		m := make(map[Value]Value, len(lit.Elts))
		for _, elt := range lit.Elts {
			kv, ok := elt.(*ast.KeyValueExpr)
			if !ok {
				return nil, typeErr("map literal elements must be key: value pairs")
			}
			k, err := in.eval(sc, kv.Key)
			if err != nil {
				return nil, err
			}
			if err := checkMapKey(k); err != nil {
				return nil, err
			}
			v, err := in.eval(sc, kv.Value)
			if err != nil {
				return nil, err
			}
			m[k] = v
		}
		return m, nil
	}

	list := make([]Value, 0, len(lit.Elts))
	for _, elt := range lit.Elts {
		if _, ok := elt.(*ast.KeyValueExpr); ok {
			return nil, typeErr("keyed list literals are not supported")
		}
		v, err := in.eval(sc, elt)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, nil
}

func checkMapKey(k Value) error {
	switch k.(type) {
	case int64, float64, string, bool:
		return nil
	default:
		return typeErr("unhashable map key type: %s", TypeName(k))
	}
}
