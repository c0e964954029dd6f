package java_test

import (
	"path/filepath"
	"testing"

	"github.com/CodMac/java-autotemplate/core"
	"github.com/CodMac/java-autotemplate/model"
	"github.com/CodMac/java-autotemplate/parser"
	"github.com/CodMac/java-autotemplate/x/java" // 触发 init() 注册
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// getTestFilePath 返回 testdata/com/example 下的文件路径
func getTestFilePath(parts ...string) string {
	return filepath.Join(append([]string{"testdata", "com", "example"}, parts...)...)
}

var fixtureFiles = []string{
	getTestFilePath("model", "User.java"),
	getTestFilePath("model", "Status.java"),
	getTestFilePath("model", "Point.java"),
	getTestFilePath("recipe", "UserRecipe.java"),
	getTestFilePath("recipe", "StaticRecipe.java"),
}

// runPhase1Collection 解析并收集定义, 语法树在测试结束时释放
func runPhase1Collection(t *testing.T, files []string) *core.GlobalContext {
	t.Helper()

	javaParser, err := parser.NewParser(model.LangJava)
	require.NoError(t, err)
	defer javaParser.Close()

	gc := core.NewGlobalContext(java.NewJavaSymbolResolver())
	col := java.NewJavaCollector()

	for _, file := range files {
		tree, source, err := javaParser.ParseFile(file)
		require.NoError(t, err, "failed to parse %s", file)
		t.Cleanup(tree.Close)

		fCtx, err := col.CollectDefinitions(tree.RootNode(), file, source)
		require.NoError(t, err, "failed to collect definitions for %s", file)
		gc.RegisterFileContext(fCtx)
	}
	return gc
}

func findDefinition(t *testing.T, fCtx *core.FileContext, name string) *model.CodeElement {
	t.Helper()
	defs := fCtx.FindDefinitions(name, nil)
	require.Len(t, defs, 1, "expected exactly one definition named %s", name)
	return defs[0].Element
}

func TestJavaCollector_User(t *testing.T) {
	file := getTestFilePath("model", "User.java")
	gc := runPhase1Collection(t, []string{file})
	fCtx, ok := gc.FileContext(file)
	require.True(t, ok)

	assert.Equal(t, "com.example.model", fCtx.PackageName)

	user := findDefinition(t, fCtx, "User")
	assert.Equal(t, model.Class, user.Kind)
	assert.Equal(t, "com.example.model.User", user.QualifiedName)
	assert.Equal(t, "com.example.model.User", user.BinaryName)
	assert.Equal(t, 3, user.Location.StartLine)

	address := findDefinition(t, fCtx, "Address")
	assert.Equal(t, "com.example.model.User.Address", address.QualifiedName)
	assert.Equal(t, "com.example.model.User$Address", address.BinaryName)

	name := findDefinition(t, fCtx, "name")
	assert.Equal(t, model.Field, name.Kind)
	assert.Equal(t, "com.example.model.User.name", name.QualifiedName)

	city := findDefinition(t, fCtx, "city")
	assert.Equal(t, "com.example.model.User.Address.city", city.QualifiedName)

	// 方法与构造函数参数不是全局定义
	assert.Empty(t, fCtx.FindDefinitions("getName", nil))
}

func TestJavaCollector_EnumAndRecord(t *testing.T) {
	statusFile := getTestFilePath("model", "Status.java")
	pointFile := getTestFilePath("model", "Point.java")
	gc := runPhase1Collection(t, []string{statusFile, pointFile})

	statusCtx, _ := gc.FileContext(statusFile)
	assert.Equal(t, model.Enum, findDefinition(t, statusCtx, "Status").Kind)
	active := findDefinition(t, statusCtx, "ACTIVE")
	assert.Equal(t, model.EnumConstant, active.Kind)
	assert.Equal(t, "com.example.model.Status.ACTIVE", active.QualifiedName)
	assert.Equal(t, model.EnumConstant, findDefinition(t, statusCtx, "INACTIVE").Kind)

	pointCtx, _ := gc.FileContext(pointFile)
	assert.Equal(t, model.Record, findDefinition(t, pointCtx, "Point").Kind)
	for _, component := range []string{"x", "y", "ORIGIN"} {
		elem := findDefinition(t, pointCtx, component)
		assert.Equal(t, model.Field, elem.Kind)
		assert.Equal(t, "com.example.model.Point."+component, elem.QualifiedName)
	}
}

func TestJavaCollector_Imports(t *testing.T) {
	recipeFile := getTestFilePath("recipe", "UserRecipe.java")
	staticFile := getTestFilePath("recipe", "StaticRecipe.java")
	gc := runPhase1Collection(t, []string{recipeFile, staticFile})

	t.Run("Explicit imports", func(t *testing.T) {
		fCtx, _ := gc.FileContext(recipeFile)
		require.Len(t, fCtx.Imports["Address"], 1)
		imp := fCtx.Imports["Address"][0]
		assert.Equal(t, "com.example.model.User.Address", imp.RawImportPath)
		assert.Equal(t, model.Class, imp.Kind)
		assert.False(t, imp.IsStatic)
		assert.False(t, imp.IsWildcard)
		assert.Equal(t, 5, imp.Location.StartLine)

		require.Len(t, fCtx.Imports["AutoTemplate"], 1)
		assert.Equal(t, "org.openrewrite.java.template.AutoTemplate", fCtx.Imports["AutoTemplate"][0].RawImportPath)
	})

	t.Run("Static and wildcard imports", func(t *testing.T) {
		fCtx, _ := gc.FileContext(staticFile)
		require.Len(t, fCtx.Imports["compile"], 1)
		compile := fCtx.Imports["compile"][0]
		assert.True(t, compile.IsStatic)
		assert.Equal(t, model.Constant, compile.Kind)
		assert.Equal(t, "org.openrewrite.java.template.AutoTemplate.compile", compile.RawImportPath)

		require.Len(t, fCtx.Imports["*"], 1)
		wildcard := fCtx.Imports["*"][0]
		assert.True(t, wildcard.IsWildcard)
		assert.Equal(t, model.Package, wildcard.Kind)
		assert.Equal(t, "java.util.*", wildcard.RawImportPath)
	})

	t.Run("Nested class binary name", func(t *testing.T) {
		fCtx, _ := gc.FileContext(recipeFile)
		visitor := findDefinition(t, fCtx, "UserVisitor")
		assert.Equal(t, "com.example.recipe.UserRecipe.UserVisitor", visitor.QualifiedName)
		assert.Equal(t, "com.example.recipe.UserRecipe$UserVisitor", visitor.BinaryName)
		assert.Equal(t, model.Field, findDefinition(t, fCtx, "LIMIT").Kind)
	})
}

func TestJavaCollector_RegistersPackages(t *testing.T) {
	gc := runPhase1Collection(t, fixtureFiles)

	gc.RLock()
	defer gc.RUnlock()
	for _, pkg := range []string{"com", "com.example", "com.example.model", "com.example.recipe"} {
		defs, ok := gc.DefinitionsByQN[pkg]
		require.True(t, ok, "package %s not registered", pkg)
		assert.Equal(t, model.Package, defs[0].Element.Kind)
	}
	assert.Len(t, gc.FileContexts, len(fixtureFiles))
}
