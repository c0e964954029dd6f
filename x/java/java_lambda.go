package java

import (
	"github.com/CodMac/java-autotemplate/core"
	"github.com/CodMac/java-autotemplate/model"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// 这些节点的 name 字段是声明出来的名字, 不是对已有符号的引用
var declarationKinds = map[string]bool{
	"formal_parameter":       true,
	"catch_formal_parameter": true,
	"variable_declarator":    true,
	"resource":               true,
	"enhanced_for_statement": true,
}

// LambdaConverter 把 tree-sitter 的 lambda 子树转换为 model.Expr，并为简单名做类型归属。
// 每次转换使用一个新的实例。
type LambdaConverter struct {
	gc     *core.GlobalContext
	fc     *core.FileContext
	locals map[string]struct{}
}

func NewLambdaConverter(gc *core.GlobalContext, fc *core.FileContext) *LambdaConverter {
	return &LambdaConverter{gc: gc, fc: fc, locals: make(map[string]struct{})}
}

// Convert 转换以 lambda 为根的子树 (参数类型 + 主体)
func (lc *LambdaConverter) Convert(lambda *sitter.Node) model.Expr {
	lc.collectLocals(lambda)
	return lc.convert(lambda)
}

// collectLocals 收集 lambda 内声明的所有变量名。不区分作用域:
// 同名的局部变量会遮蔽同名类型, 这与 javac 在表达式位置上的行为一致。
func (lc *LambdaConverter) collectLocals(node *sitter.Node) {
	switch node.Kind() {
	case "lambda_expression":
		if params := node.ChildByFieldName("parameters"); params != nil && params.Kind() == "identifier" {
			lc.locals[lc.text(params)] = struct{}{}
		}
	case "inferred_parameters":
		for i := uint(0); i < node.NamedChildCount(); i++ {
			lc.locals[lc.text(node.NamedChild(i))] = struct{}{}
		}
	default:
		if declarationKinds[node.Kind()] {
			if name := node.ChildByFieldName("name"); name != nil {
				lc.locals[lc.text(name)] = struct{}{}
			}
		}
	}

	for i := uint(0); i < node.NamedChildCount(); i++ {
		lc.collectLocals(node.NamedChild(i))
	}
}

func (lc *LambdaConverter) convert(node *sitter.Node) model.Expr {
	loc := extractLocation(node, lc.fc.FilePath)

	switch node.Kind() {
	case "identifier":
		name := lc.text(node)
		return &model.Identifier{Name: name, Type: lc.attribute(name, false), Location: loc}

	case "type_identifier":
		name := lc.text(node)
		return &model.Identifier{Name: name, Type: lc.attribute(name, true), Location: loc}

	case "field_access":
		object, field := node.ChildByFieldName("object"), node.ChildByFieldName("field")
		if object != nil && field != nil && field.Kind() == "identifier" {
			return &model.MemberAccess{Receiver: lc.convert(object), Name: lc.text(field), Location: loc}
		}

	case "scoped_identifier":
		scopeNode, name := node.ChildByFieldName("scope"), node.ChildByFieldName("name")
		if scopeNode != nil && name != nil {
			return &model.MemberAccess{Receiver: lc.convert(scopeNode), Name: lc.text(name), Location: loc}
		}

	case "scoped_type_identifier":
		if n := node.NamedChildCount(); n >= 2 {
			last := node.NamedChild(n - 1)
			if last.Kind() == "type_identifier" {
				return &model.MemberAccess{Receiver: lc.convert(node.NamedChild(0)), Name: lc.text(last), Location: loc}
			}
		}

	case "method_invocation":
		return lc.convertInvocation(node, loc)

	case "method_reference":
		// String::valueOf 中 :: 之后是成员名
		out := &model.Other{Kind: node.Kind(), Location: loc}
		for i := uint(0); i < node.NamedChildCount(); i++ {
			child := node.NamedChild(i)
			if i > 0 && child.Kind() == "identifier" {
				continue
			}
			out.Nodes = append(out.Nodes, lc.convert(child))
		}
		return out

	case "lambda_expression":
		out := &model.Other{Kind: node.Kind(), Location: loc}
		if params := node.ChildByFieldName("parameters"); params != nil && params.Kind() != "identifier" {
			out.Nodes = append(out.Nodes, lc.convert(params))
		}
		if body := node.ChildByFieldName("body"); body != nil {
			out.Nodes = append(out.Nodes, lc.convert(body))
		}
		return out

	case "inferred_parameters":
		return &model.Other{Kind: node.Kind(), Location: loc}
	}

	return lc.convertGeneric(node, loc)
}

func (lc *LambdaConverter) convertInvocation(node *sitter.Node, loc *model.Location) model.Expr {
	out := &model.Other{Kind: node.Kind(), Location: loc}

	if name := node.ChildByFieldName("name"); name != nil {
		var callee model.Expr
		if object := node.ChildByFieldName("object"); object != nil {
			callee = &model.MemberAccess{Receiver: lc.convert(object), Name: lc.text(name), Location: loc}
		} else {
			callee = &model.Identifier{
				Name:     lc.text(name),
				Type:     &model.TypeDescriptor{Kind: model.Method},
				Location: extractLocation(name, lc.fc.FilePath),
			}
		}
		out.Nodes = append(out.Nodes, callee)
	}
	if typeArgs := node.ChildByFieldName("type_arguments"); typeArgs != nil {
		out.Nodes = append(out.Nodes, lc.convert(typeArgs))
	}
	if args := node.ChildByFieldName("arguments"); args != nil {
		out.Nodes = append(out.Nodes, lc.convert(args))
	}
	return out
}

func (lc *LambdaConverter) convertGeneric(node *sitter.Node, loc *model.Location) model.Expr {
	out := &model.Other{Kind: node.Kind(), Location: loc}

	var declName *sitter.Node
	if declarationKinds[node.Kind()] {
		declName = node.ChildByFieldName("name")
	}

	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if declName != nil && sameNode(child, declName) {
			continue
		}
		out.Nodes = append(out.Nodes, lc.convert(child))
	}
	return out
}

// attribute 为一个简单名做类型归属。表达式位置上变量优先于类型。
func (lc *LambdaConverter) attribute(name string, typeContext bool) *model.TypeDescriptor {
	if !typeContext {
		if _, ok := lc.locals[name]; ok {
			return &model.TypeDescriptor{Kind: model.Variable}
		}
		if defs := lc.fc.FindDefinitions(name, isMemberKind); len(defs) > 0 {
			return &model.TypeDescriptor{Kind: defs[0].Element.Kind}
		}
	}
	return lc.gc.ResolveType(lc.fc, name)
}

func (lc *LambdaConverter) text(n *sitter.Node) string {
	return getNodeContent(n, lc.fc.SourceBytes)
}

func isMemberKind(k model.ElementKind) bool {
	return k == model.Field || k == model.EnumConstant
}

func sameNode(a, b *sitter.Node) bool {
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Kind() == b.Kind()
}

// LambdaParameters 提取 lambda 声明的参数
func LambdaParameters(lambda *sitter.Node, src []byte) []model.Parameter {
	params := lambda.ChildByFieldName("parameters")
	if params == nil {
		return nil
	}

	switch params.Kind() {
	case "identifier":
		return []model.Parameter{{Name: getNodeContent(params, src)}}
	case "inferred_parameters":
		var out []model.Parameter
		for i := uint(0); i < params.NamedChildCount(); i++ {
			out = append(out, model.Parameter{Name: getNodeContent(params.NamedChild(i), src)})
		}
		return out
	}

	var out []model.Parameter
	for i := uint(0); i < params.NamedChildCount(); i++ {
		p := params.NamedChild(i)
		switch p.Kind() {
		case "formal_parameter":
			out = append(out, model.Parameter{
				Name: getNodeContent(p.ChildByFieldName("name"), src),
				Type: getNodeContent(p.ChildByFieldName("type"), src),
			})
		case "spread_parameter":
			var param model.Parameter
			for j := uint(0); j < p.NamedChildCount(); j++ {
				c := p.NamedChild(j)
				switch {
				case c.Kind() == "variable_declarator":
					param.Name = getNodeContent(c.ChildByFieldName("name"), src)
				case c.Kind() != "modifiers" && param.Type == "":
					param.Type = getNodeContent(c, src) + "..."
				}
			}
			out = append(out, param)
		}
	}
	return out
}
