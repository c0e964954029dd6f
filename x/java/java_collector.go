package java

import (
	"strings"

	"github.com/CodMac/java-autotemplate/core"
	"github.com/CodMac/java-autotemplate/model"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

type Collector struct{}

func NewJavaCollector() *Collector {
	return &Collector{}
}

// scope 是递归收集时的命名前缀
type scope struct {
	qn     string // 源码形式的限定名前缀
	binary string // 二进制名前缀
	inType bool   // 前缀是否为类型 (决定内部类用 '$' 还是 '.')
}

func (c *Collector) CollectDefinitions(rootNode *sitter.Node, filePath string, sourceBytes []byte) (*core.FileContext, error) {
	fCtx := core.NewFileContext(filePath, rootNode, sourceBytes)

	// 1. 处理顶级声明 (Package & Imports)
	c.processTopLevelDeclarations(fCtx)

	// 2. 递归收集类型与字段定义
	initial := scope{qn: fCtx.PackageName, binary: fCtx.PackageName}
	c.collectDefinitionsRecursive(fCtx.RootNode, fCtx, initial)

	return fCtx, nil
}

func (c *Collector) processTopLevelDeclarations(fCtx *core.FileContext) {
	for i := uint(0); i < fCtx.RootNode.ChildCount(); i++ {
		child := fCtx.RootNode.Child(i)
		if child == nil {
			continue
		}

		switch child.Kind() {
		case "package_declaration":
			for j := uint(0); j < child.ChildCount(); j++ {
				sub := child.Child(j)
				if sub.Kind() == "scoped_identifier" || sub.Kind() == "identifier" {
					fCtx.PackageName = getNodeContent(sub, fCtx.SourceBytes)
					break
				}
			}
		case "import_declaration":
			c.handleImport(child, fCtx)
		}
	}
}

func (c *Collector) handleImport(node *sitter.Node, fCtx *core.FileContext) {
	isStatic := false
	var pathParts []string

	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		kind := child.Kind()

		if kind == "static" {
			isStatic = true
			continue
		}

		if kind == "scoped_identifier" || kind == "identifier" || kind == "asterisk" {
			pathParts = append(pathParts, getNodeContent(child, fCtx.SourceBytes))
		}
	}

	if len(pathParts) == 0 {
		return
	}

	fullPath := strings.Join(pathParts, ".")
	isWildcard := pathParts[len(pathParts)-1] == "*"

	entry := &core.ImportEntry{
		RawImportPath: fullPath,
		IsWildcard:    isWildcard,
		IsStatic:      isStatic,
		Location:      extractLocation(node, fCtx.FilePath),
	}

	alias := "*"
	if isWildcard {
		entry.Kind = model.Package
	} else {
		alias = fullPath[strings.LastIndex(fullPath, ".")+1:]
		entry.Kind = model.Class
		if isStatic {
			entry.Kind = model.Constant
		}
	}
	entry.Alias = alias
	fCtx.AddImport(alias, entry)
}

func (c *Collector) collectDefinitionsRecursive(node *sitter.Node, fCtx *core.FileContext, sc scope) {
	kind := node.Kind()

	switch kind {
	case "class_declaration", "interface_declaration", "enum_declaration", "record_declaration", "annotation_type_declaration":
		elem := c.typeElement(node, fCtx, sc)
		if elem == nil {
			return
		}
		fCtx.AddDefinition(elem, sc.qn, node)
		inner := scope{qn: elem.QualifiedName, binary: elem.BinaryName, inType: true}

		// record 组件视为字段
		if kind == "record_declaration" {
			if params := node.ChildByFieldName("parameters"); params != nil {
				for i := uint(0); i < params.NamedChildCount(); i++ {
					c.addField(params.NamedChild(i), model.Field, fCtx, inner)
				}
			}
		}
		if body := node.ChildByFieldName("body"); body != nil {
			c.collectDefinitionsRecursive(body, fCtx, inner)
		}
		return

	case "field_declaration", "constant_declaration":
		for i := uint(0); i < node.NamedChildCount(); i++ {
			if child := node.NamedChild(i); child.Kind() == "variable_declarator" {
				c.addField(child, model.Field, fCtx, sc)
			}
		}
		return

	case "enum_constant":
		c.addField(node, model.EnumConstant, fCtx, sc)
		return

	case "method_declaration", "constructor_declaration", "compact_constructor_declaration", "static_initializer", "block":
		// 方法体内的声明是局部的, 不进入全局符号表
		return
	}

	for i := uint(0); i < node.NamedChildCount(); i++ {
		c.collectDefinitionsRecursive(node.NamedChild(i), fCtx, sc)
	}
}

func (c *Collector) typeElement(node *sitter.Node, fCtx *core.FileContext, sc scope) *model.CodeElement {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	name := getNodeContent(nameNode, fCtx.SourceBytes)

	binary := model.BuildQualifiedName(sc.binary, name)
	if sc.inType {
		binary = sc.binary + "$" + name
	}

	return &model.CodeElement{
		Kind:          typeKind(node.Kind()),
		Name:          name,
		QualifiedName: model.BuildQualifiedName(sc.qn, name),
		BinaryName:    binary,
		Path:          fCtx.FilePath,
		Location:      extractLocation(node, fCtx.FilePath),
	}
}

func (c *Collector) addField(node *sitter.Node, kind model.ElementKind, fCtx *core.FileContext, sc scope) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	name := getNodeContent(nameNode, fCtx.SourceBytes)
	fCtx.AddDefinition(&model.CodeElement{
		Kind:          kind,
		Name:          name,
		QualifiedName: model.BuildQualifiedName(sc.qn, name),
		Path:          fCtx.FilePath,
		Location:      extractLocation(node, fCtx.FilePath),
	}, sc.qn, node)
}

func typeKind(nodeKind string) model.ElementKind {
	switch nodeKind {
	case "interface_declaration":
		return model.Interface
	case "enum_declaration":
		return model.Enum
	case "record_declaration":
		return model.Record
	case "annotation_type_declaration":
		return model.KAnnotation
	default:
		return model.Class
	}
}

func extractLocation(n *sitter.Node, filePath string) *model.Location {
	if n == nil {
		return nil
	}
	return &model.Location{
		FilePath:    filePath,
		StartLine:   int(n.StartPosition().Row) + 1,
		EndLine:     int(n.EndPosition().Row) + 1,
		StartColumn: int(n.StartPosition().Column),
		EndColumn:   int(n.EndPosition().Column),
	}
}

func getNodeContent(n *sitter.Node, sourceBytes []byte) string {
	if n == nil {
		return ""
	}
	return n.Utf8Text(sourceBytes)
}
