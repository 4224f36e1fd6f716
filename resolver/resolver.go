package resolver

import (
	"github.com/hashicorp/go-multierror"
	"github.com/loxlang/loxcore/ast"
	"github.com/loxlang/loxcore/token"
)

// variableStatus tracks the lifecycle of a name within a single scope,
// mirroring spec.md §4.3's {Declared, Initialized, Used} states.
type variableStatus int

const (
	statusDeclared variableStatus = iota
	statusInitialized
	statusUsed
)

type varInfo struct {
	index     uint16
	definedAt token.Span
	status    variableStatus
}

type scope struct {
	vars map[string]*varInfo
}

func newScope() *scope {
	return &scope{vars: make(map[string]*varInfo)}
}

type classType int

const (
	classNone classType = iota
	classClass
	classSubClass
)

type functionType int

const (
	functionNone functionType = iota
	functionFunction
	functionInitializer
	functionMethod
)

// Resolver walks a parsed AST exactly once, filling in every
// ast.Variable.Target it can and recording diagnostics for the rest.
type Resolver struct {
	scopes       []*scope
	errs         *multierror.Error
	classType    classType
	functionType functionType
}

// New returns a fresh Resolver.
func New() *Resolver {
	return &Resolver{}
}

// Resolve walks stmts, mutating the AST in place. It always completes the
// whole walk even after errors; the returned error is a non-nil
// *multierror.Error iff any diagnostic was recorded.
func (r *Resolver) Resolve(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		r.resolveStmt(stmt)
	}
	if r.errs == nil {
		return nil
	}
	return r.errs
}

func (r *Resolver) addError(err error) {
	r.errs = multierror.Append(r.errs, err)
}

func (r *Resolver) declare(v *ast.Variable, initialized bool) {
	if len(r.scopes) == 0 {
		// Top-level: names live in the global namespace, addressed by
		// name rather than slot. Target stays nil.
		return
	}
	s := r.scopes[len(r.scopes)-1]
	if existing, ok := s.vars[v.Ident.Name]; ok {
		r.addError(&Error{
			Kind:      RedefineVar,
			Span:      v.Ident.Span,
			Name:      v.Ident.Name,
			DefinedAt: existing.definedAt,
		})
		return
	}
	status := statusDeclared
	if initialized {
		status = statusInitialized
	}
	index := uint16(len(s.vars))
	s.vars[v.Ident.Name] = &varInfo{index: index, definedAt: v.Ident.Span, status: status}
	v.Target = &ast.Target{ScopeCount: 0, Index: index}
}

// access searches the scope stack innermost-first, updates the matching
// variable's status, and binds v.Target. A miss leaves v.Target nil,
// which the interpreter treats as a global reference.
func (r *Resolver) access(v *ast.Variable, status variableStatus) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if info, ok := r.scopes[i].vars[v.Ident.Name]; ok {
			info.status = status
			v.Target = &ast.Target{ScopeCount: uint16(len(r.scopes) - 1 - i), Index: info.index}
			return
		}
	}
}

func (r *Resolver) assign(v *ast.Variable) { r.access(v, statusInitialized) }
func (r *Resolver) get(v *ast.Variable)    { r.access(v, statusUsed) }

func (r *Resolver) startScope() {
	r.scopes = append(r.scopes, newScope())
}

// startClassScope pushes a synthetic scope binding the single name
// "super" or "this" at slot 0, used for class method resolution.
func (r *Resolver) startClassScope(span token.Span, name string) {
	r.startScope()
	r.scopes[len(r.scopes)-1].vars[name] = &varInfo{index: 0, definedAt: span, status: statusInitialized}
}

func (r *Resolver) endScope() uint16 {
	top := r.scopes[len(r.scopes)-1]
	r.scopes = r.scopes[:len(r.scopes)-1]
	return uint16(len(top.vars))
}

func (r *Resolver) resolveFunction(fn *ast.FnDecl) {
	r.startScope()
	for _, param := range fn.Params {
		r.declare(param, true)
	}
	for _, stmt := range fn.Body {
		r.resolveStmt(stmt)
	}
	fn.NumLocals = r.endScope()
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Print:
		r.resolveExpr(s.Expr)
	case *ast.ExprStmt:
		r.resolveExpr(s.Expr)
	case *ast.VarDecl:
		r.declare(s.Var, false)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
			r.assign(s.Var)
		}
	case *ast.Block:
		r.startScope()
		for _, inner := range s.Statements {
			r.resolveStmt(inner)
		}
		s.NumLocals = r.endScope()
	case *ast.If:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *ast.While:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)
	case *ast.FnDecl:
		r.declare(s.Var, true)
		previous := r.functionType
		r.functionType = functionFunction
		r.resolveFunction(s)
		r.functionType = previous
	case *ast.Return:
		r.resolveReturn(s)
	case *ast.ClassDecl:
		r.resolveClass(s)
	}
}

func (r *Resolver) resolveReturn(s *ast.Return) {
	if r.functionType == functionNone {
		r.addError(&Error{Kind: InvalidReturn, Span: s.Span})
		return
	}
	if s.Expr == nil {
		return
	}
	if r.functionType == functionInitializer {
		r.addError(&Error{Kind: ReturnInConstructor, Span: s.Span})
	}
	r.resolveExpr(s.Expr)
}

func (r *Resolver) resolveClass(c *ast.ClassDecl) {
	r.declare(c.Var, true)
	previousClass := r.classType
	r.classType = classClass

	if c.SuperClass != nil {
		r.get(c.SuperClass)
		r.startClassScope(c.SuperClass.Ident.Span, "super")
		r.classType = classSubClass
	}

	r.startClassScope(c.Var.Ident.Span, "this")
	for _, method := range c.Methods {
		previousFn := r.functionType
		if method.Var.Ident.Name == "init" {
			r.functionType = functionInitializer
		} else {
			r.functionType = functionMethod
		}
		r.resolveFunction(method)
		r.functionType = previousFn
	}
	r.endScope() // this

	if c.SuperClass != nil {
		r.endScope() // super
	}
	r.classType = previousClass
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Unary:
		r.resolveExpr(e.Operand)
	case *ast.Group:
		r.resolveExpr(e.Inner)
	case *ast.Literal:
		// no references
	case *ast.Ternary:
		r.resolveExpr(e.Cond)
		r.resolveExpr(e.Truthy)
		r.resolveExpr(e.Falsy)
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.assign(e.Var)
	case *ast.VarExpr:
		if e.Var.Ident.Name == "this" && r.functionType == functionNone {
			r.addError(&Error{Kind: InvalidThis, Span: e.Var.Ident.Span})
		}
		r.get(e.Var)
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpr(arg)
		}
	case *ast.Get:
		r.resolveExpr(e.Object)
	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Target.Object)
	case *ast.SuperExpr:
		switch r.classType {
		case classSubClass:
			r.get(e.Var)
		case classClass:
			r.addError(&Error{Kind: NotSubClass, Span: e.Var.Ident.Span})
		case classNone:
			r.addError(&Error{Kind: InvalidSuper, Span: e.Var.Ident.Span})
		}
	}
}
