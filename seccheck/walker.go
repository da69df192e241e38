package seccheck

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"
)

// walkFile walks the parsed submission and rejects any syntax-tree node
// kind that is not on the explicit allow-list of the restricted dialect.
// Rejection by node kind is what makes the filter obfuscation-proof: there
// is no spelling of a goroutine, import, pointer or attribute access that
// does not produce the corresponding node.
func walkFile(file *ast.File) *Violation {
	var violation *Violation
	ast.Inspect(file, func(node ast.Node) bool {
		if violation != nil || node == nil {
			return false
		}
		violation = checkNode(node)
		return violation == nil
	})
	return violation
}

func checkNode(node ast.Node) *Violation {
	switch n := node.(type) {
	// declarations and structure
	case *ast.File, *ast.FuncDecl, *ast.FuncType, *ast.FieldList, *ast.Field,
		*ast.BlockStmt, *ast.ValueSpec, *ast.DeclStmt, *ast.Ellipsis:
		return nil
	case *ast.GenDecl:
		if n.Tok == token.IMPORT {
			return &Violation{
				Construct: "import declaration",
				Reason:    "importing packages is not allowed",
			}
		}
		if n.Tok == token.TYPE {
			return violationf("type declaration", "type declarations are not allowed")
		}
		return nil
	case *ast.ImportSpec:
		path := strings.Trim(n.Path.Value, `"`)
		return violationf(fmt.Sprintf("import %q", path),
			"importing package %q is not allowed", path)

	// statements
	case *ast.ReturnStmt, *ast.AssignStmt, *ast.IfStmt, *ast.ForStmt,
		*ast.RangeStmt, *ast.SwitchStmt, *ast.CaseClause, *ast.ExprStmt,
		*ast.IncDecStmt, *ast.EmptyStmt:
		return nil
	case *ast.BranchStmt:
		if n.Tok == token.GOTO {
			return violationf("goto statement", "goto statements are not allowed")
		}
		return nil
	case *ast.GoStmt:
		return violationf("go statement", "starting goroutines is not allowed")
	case *ast.DeferStmt:
		return violationf("defer statement", "defer statements are not allowed")
	case *ast.SelectStmt:
		return violationf("select statement", "select statements are not allowed")
	case *ast.SendStmt:
		return violationf("channel send", "channel operations are not allowed")
	case *ast.LabeledStmt:
		return violationf("labeled statement", "labeled statements are not allowed")
	case *ast.TypeSwitchStmt:
		return violationf("type switch", "type switches are not allowed")

	// expressions
	case *ast.Ident, *ast.BasicLit, *ast.ParenExpr, *ast.BinaryExpr,
		*ast.CallExpr, *ast.IndexExpr, *ast.SliceExpr, *ast.CompositeLit,
		*ast.KeyValueExpr, *ast.ArrayType, *ast.MapType:
		return nil
	case *ast.UnaryExpr:
		switch n.Op {
		case token.AND:
			return violationf("address-of operator", "taking addresses is not allowed")
		case token.ARROW:
			return violationf("channel receive", "channel operations are not allowed")
		}
		return nil
	case *ast.SelectorExpr:
		construct := "." + n.Sel.Name
		if x, ok := n.X.(*ast.Ident); ok {
			construct = x.Name + "." + n.Sel.Name
		}
		return violationf(construct, "attribute access %q is not allowed", construct)
	case *ast.StarExpr:
		return violationf("pointer operation", "pointer operations are not allowed")
	case *ast.ChanType:
		return violationf("channel type", "channels are not allowed")
	case *ast.FuncLit:
		return violationf("function literal", "function literals are not allowed")
	case *ast.TypeAssertExpr:
		return violationf("type assertion", "type assertions are not allowed")
	case *ast.StructType:
		return violationf("struct type", "struct types are not allowed")
	case *ast.InterfaceType:
		return violationf("interface type", "interface types are not allowed")
	case *ast.IndexListExpr:
		return violationf("generic instantiation", "generics are not allowed")

	default:
		return violationf("unsupported construct", "construct is not part of the restricted dialect")
	}
}

func violationf(construct, format string, args ...any) *Violation {
	return &Violation{
		Construct: construct,
		Reason:    fmt.Sprintf(format, args...),
	}
}
