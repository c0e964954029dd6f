package java

import (
	"fmt"
	"strings"

	"github.com/CodMac/java-autotemplate/core"
	"github.com/CodMac/java-autotemplate/model"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Extractor 实现了 extractor.Extractor 接口
type Extractor struct{}

func NewJavaExtractor() *Extractor {
	return &Extractor{}
}

// Extract 找出文件中所有 AutoTemplate.compile 调用点并编译为 TemplateSpec
func (e *Extractor) Extract(filePath string, gc *core.GlobalContext) ([]*model.TemplateSpec, error) {
	fCtx, ok := gc.FileContext(filePath)
	if !ok {
		return nil, fmt.Errorf("failed to get FileContext: %s", filePath)
	}
	if fCtx.RootNode == nil {
		return nil, fmt.Errorf("FileContext has no syntax tree: %s", filePath)
	}

	specs := make([]*model.TemplateSpec, 0)
	e.walk(fCtx.RootNode, fCtx, gc, scope{qn: fCtx.PackageName, binary: fCtx.PackageName}, &specs)
	return specs, nil
}

func (e *Extractor) walk(node *sitter.Node, fCtx *core.FileContext, gc *core.GlobalContext, sc scope, specs *[]*model.TemplateSpec) {
	switch node.Kind() {
	case "class_declaration", "interface_declaration", "enum_declaration", "record_declaration":
		if nameNode := node.ChildByFieldName("name"); nameNode != nil {
			name := getNodeContent(nameNode, fCtx.SourceBytes)
			binary := model.BuildQualifiedName(sc.binary, name)
			if sc.inType {
				binary = sc.binary + "$" + name
			}
			sc = scope{qn: model.BuildQualifiedName(sc.qn, name), binary: binary, inType: true}
		}

	case "method_invocation":
		if spec := e.compileCall(node, fCtx, gc, sc); spec != nil {
			*specs = append(*specs, spec)
			// lambda 内部不会再有 compile 调用
			return
		}
	}

	for i := uint(0); i < node.NamedChildCount(); i++ {
		e.walk(node.NamedChild(i), fCtx, gc, sc, specs)
	}
}

// compileCall 识别 AutoTemplate.compile("name", lambda) 或静态导入的 compile("name", lambda)
func (e *Extractor) compileCall(node *sitter.Node, fCtx *core.FileContext, gc *core.GlobalContext, sc scope) *model.TemplateSpec {
	if !sc.inType || !isCompileInvocation(node, fCtx) {
		return nil
	}

	args := node.ChildByFieldName("arguments")
	if args == nil || args.NamedChildCount() != 2 {
		return nil
	}
	nameArg, lambda := args.NamedChild(0), args.NamedChild(1)
	if nameArg.Kind() != "string_literal" || lambda.Kind() != "lambda_expression" {
		return nil
	}
	name := stringLiteralValue(nameArg, fCtx.SourceBytes)
	if name == "" {
		return nil
	}

	expr := NewLambdaConverter(gc, fCtx).Convert(lambda)

	spec := &model.TemplateSpec{
		Owner:      sc.binary,
		Name:       name,
		Parameters: LambdaParameters(lambda, fCtx.SourceBytes),
		Imports:    core.DetectImports(expr),
		Classpath:  isolatedClasspath(node, fCtx.SourceBytes),
		Location:   extractLocation(node, fCtx.FilePath),
	}
	if body := lambda.ChildByFieldName("body"); body != nil {
		spec.Code = getNodeContent(body, fCtx.SourceBytes)
	}
	if spec.Parameters == nil {
		spec.Parameters = []model.Parameter{}
	}
	return spec
}

func isCompileInvocation(node *sitter.Node, fCtx *core.FileContext) bool {
	if getNodeContent(node.ChildByFieldName("name"), fCtx.SourceBytes) != CompileMethod {
		return false
	}

	object := node.ChildByFieldName("object")
	if object == nil {
		// 静态导入: import static ...AutoTemplate.compile; 或 ...AutoTemplate.*;
		for _, imp := range fCtx.Imports[CompileMethod] {
			if imp.IsStatic && strings.HasSuffix(imp.RawImportPath, AutoTemplateClass+"."+CompileMethod) {
				return true
			}
		}
		for _, imp := range fCtx.Imports["*"] {
			if imp.IsStatic && strings.HasSuffix(imp.RawImportPath, AutoTemplateClass+".*") {
				return true
			}
		}
		return false
	}

	receiver := getNodeContent(object, fCtx.SourceBytes)
	return receiver == AutoTemplateClass || strings.HasSuffix(receiver, "."+AutoTemplateClass)
}

// isolatedClasspath 读取紧跟在 compile(...) 之后的 .isolateClasspath("a", ...) 参数
func isolatedClasspath(compile *sitter.Node, src []byte) []string {
	parent := compile.Parent()
	if parent == nil || parent.Kind() != "method_invocation" {
		return nil
	}
	if getNodeContent(parent.ChildByFieldName("name"), src) != IsolateClasspathMethod {
		return nil
	}
	if object := parent.ChildByFieldName("object"); object == nil || !sameNode(object, compile) {
		return nil
	}

	args := parent.ChildByFieldName("arguments")
	if args == nil {
		return nil
	}
	var entries []string
	for i := uint(0); i < args.NamedChildCount(); i++ {
		if arg := args.NamedChild(i); arg.Kind() == "string_literal" {
			entries = append(entries, stringLiteralValue(arg, src))
		}
	}
	return entries
}

func stringLiteralValue(n *sitter.Node, src []byte) string {
	return strings.Trim(getNodeContent(n, src), `"`)
}
