package java_test

import (
	"testing"

	"github.com/CodMac/java-autotemplate/core"
	"github.com/CodMac/java-autotemplate/model"
	"github.com/CodMac/java-autotemplate/parser"
	"github.com/CodMac/java-autotemplate/x/java"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// parseSnippet 解析内存中的源码并注册到新的全局上下文
func parseSnippet(t *testing.T, source string) (*core.GlobalContext, *core.FileContext) {
	t.Helper()

	javaParser, err := parser.NewParser(model.LangJava)
	require.NoError(t, err)
	defer javaParser.Close()

	src := []byte(source)
	tree, err := javaParser.ParseSource(src)
	require.NoError(t, err)
	t.Cleanup(tree.Close)

	fCtx, err := java.NewJavaCollector().CollectDefinitions(tree.RootNode(), "Snippet.java", src)
	require.NoError(t, err)

	gc := core.NewGlobalContext(java.NewJavaSymbolResolver())
	gc.RegisterFileContext(fCtx)
	return gc, fCtx
}

func findLambdas(node *sitter.Node, out *[]*sitter.Node) {
	if node.Kind() == "lambda_expression" {
		*out = append(*out, node)
	}
	for i := uint(0); i < node.NamedChildCount(); i++ {
		findLambdas(node.NamedChild(i), out)
	}
}

func firstLambda(t *testing.T, fCtx *core.FileContext) *sitter.Node {
	t.Helper()
	var lambdas []*sitter.Node
	findLambdas(fCtx.RootNode, &lambdas)
	require.NotEmpty(t, lambdas)
	return lambdas[0]
}

func TestLambdaParameters(t *testing.T) {
	tests := []struct {
		name     string
		lambda   string
		expected []model.Parameter
	}{
		{"Single identifier", "x -> x", []model.Parameter{{Name: "x"}}},
		{"Inferred", "(a, b) -> a", []model.Parameter{{Name: "a"}, {Name: "b"}}},
		{"Empty", "() -> 1", nil},
		{"Typed", "(int a, java.util.List<String> b) -> a", []model.Parameter{{Name: "a", Type: "int"}, {Name: "b", Type: "java.util.List<String>"}}},
		{"Varargs", "(String first, String... rest) -> first", []model.Parameter{{Name: "first", Type: "String"}, {Name: "rest", Type: "String..."}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, fCtx := parseSnippet(t, "class A { Object f = "+tt.lambda+"; }")
			lambda := firstLambda(t, fCtx)
			assert.Equal(t, tt.expected, java.LambdaParameters(lambda, fCtx.SourceBytes))
		})
	}
}

func TestLambdaConverter_Convert(t *testing.T) {
	gc, fCtx := parseSnippet(t, `
package demo;

class A {
    static final int MAX = 3;

    void run() {
        AutoTemplate.compile("t", (String s) -> s.substring(MAX));
    }
}
`)
	expr := java.NewLambdaConverter(gc, fCtx).Convert(firstLambda(t, fCtx))

	root, ok := expr.(*model.Other)
	require.True(t, ok)
	assert.Equal(t, "lambda_expression", root.Kind)
	require.Len(t, root.Nodes, 2)

	// 参数: formal_parameters -> formal_parameter -> String, 声明的名字 s 不出现
	var idents []*model.Identifier
	var collect func(e model.Expr)
	collect = func(e model.Expr) {
		if ident, ok := e.(*model.Identifier); ok {
			idents = append(idents, ident)
		}
		for _, child := range e.Children() {
			collect(child)
		}
	}
	collect(root)

	require.Len(t, idents, 3)
	assert.Equal(t, "String", idents[0].Name)
	assert.Equal(t, &model.TypeDescriptor{BinaryName: "java.lang.String", Kind: model.Class}, idents[0].Type)
	assert.Equal(t, "s", idents[1].Name)
	assert.Equal(t, model.Variable, idents[1].Type.Kind)
	assert.Equal(t, "MAX", idents[2].Name)
	assert.Equal(t, model.Field, idents[2].Type.Kind)

	assert.Equal(t, []string{"java.lang.String"}, core.DetectImports(expr))
}

func TestLambdaConverter_LocalDeclarations(t *testing.T) {
	gc, fCtx := parseSnippet(t, `
import java.util.List;

class A {
    void run() {
        AutoTemplate.compile("t", () -> {
            for (String List : new String[0]) {
                List.isEmpty();
            }
            return null;
        });
    }
}
`)
	expr := java.NewLambdaConverter(gc, fCtx).Convert(firstLambda(t, fCtx))

	// List 在循环中被声明为变量, 不需要 import
	assert.Equal(t, []string{"java.lang.String"}, core.DetectImports(expr))
}
