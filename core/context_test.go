package core

import (
	"sync"
	"testing"

	"github.com/CodMac/java-autotemplate/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapResolver 按固定表解析, 记录注册过的包
type mapResolver struct {
	types    map[string]*model.TypeDescriptor
	packages []string
}

func (m *mapResolver) BuildQualifiedName(parentQN, name string) string {
	return model.BuildQualifiedName(parentQN, name)
}

func (m *mapResolver) Resolve(_ *GlobalContext, _ *FileContext, symbol string) *model.TypeDescriptor {
	return m.types[symbol]
}

func (m *mapResolver) RegisterPackage(_ *GlobalContext, packageName string) {
	m.packages = append(m.packages, packageName)
}

func newFileContext(path, pkg string, defs ...*model.CodeElement) *FileContext {
	fc := NewFileContext(path, nil, nil)
	fc.PackageName = pkg
	for _, def := range defs {
		fc.AddDefinition(def, pkg, nil)
	}
	return fc
}

func TestGlobalContext_RegisterFileContext(t *testing.T) {
	resolver := &mapResolver{}
	gc := NewGlobalContext(resolver)

	fc := newFileContext("src/acme/User.java", "acme",
		&model.CodeElement{Kind: model.Class, Name: "User", QualifiedName: "acme.User"},
		&model.CodeElement{Kind: model.Field, Name: "name", QualifiedName: "acme.User.name"},
	)
	gc.RegisterFileContext(fc)

	got, ok := gc.FileContext("src/acme/User.java")
	require.True(t, ok)
	assert.Same(t, fc, got)

	assert.Equal(t, model.File, gc.DefinitionsByQN["src/acme/User.java"][0].Element.Kind)
	assert.Equal(t, "User.java", gc.DefinitionsByQN["src/acme/User.java"][0].Element.Name)
	assert.Len(t, gc.DefinitionsByQN["acme.User"], 1)
	assert.Len(t, gc.DefinitionsByQN["acme.User.name"], 1)
	assert.Equal(t, []string{"acme"}, resolver.packages)

	_, ok = gc.FileContext("missing")
	assert.False(t, ok)
}

func TestGlobalContext_ResolveDelegates(t *testing.T) {
	desc := &model.TypeDescriptor{BinaryName: "acme.User", Kind: model.Class}
	gc := NewGlobalContext(&mapResolver{types: map[string]*model.TypeDescriptor{"User": desc}})
	fc := newFileContext("A.java", "")

	assert.Same(t, desc, gc.ResolveType(fc, "User"))
	assert.Nil(t, gc.ResolveType(fc, "Other"))
	assert.Equal(t, "acme.User", gc.BuildQualifiedName("acme", "User"))
}

func TestFileContext_FindDefinitions(t *testing.T) {
	fc := newFileContext("A.java", "acme",
		&model.CodeElement{Kind: model.Class, Name: "Item", QualifiedName: "acme.Item"},
		&model.CodeElement{Kind: model.Field, Name: "Item", QualifiedName: "acme.Other.Item"},
	)

	assert.Len(t, fc.FindDefinitions("Item", nil), 2)
	classes := fc.FindDefinitions("Item", model.ElementKind.IsClassLike)
	require.Len(t, classes, 1)
	assert.Equal(t, "acme.Item", classes[0].Element.QualifiedName)
	assert.Empty(t, fc.FindDefinitions("Missing", nil))
}

func TestFileContext_AttachDetachTree(t *testing.T) {
	fc := newFileContext("A.java", "acme",
		&model.CodeElement{Kind: model.Class, Name: "A", QualifiedName: "acme.A"},
	)
	fc.AttachTree(nil, []byte("class A {}"))
	assert.Equal(t, []byte("class A {}"), fc.SourceBytes)

	fc.DetachTree()
	assert.Nil(t, fc.RootNode)
	assert.Nil(t, fc.DefinitionsBySN["A"][0].Node)
	// 源码与定义保留
	assert.NotEmpty(t, fc.SourceBytes)
	assert.Len(t, fc.FindDefinitions("A", nil), 1)
}

func TestGlobalContext_ConcurrentRegister(t *testing.T) {
	gc := NewGlobalContext(&mapResolver{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := string(rune('A' + i%26))
			path := name + string(rune('0'+i/26)) + ".java"
			gc.RegisterFileContext(newFileContext(path, "", &model.CodeElement{Kind: model.Class, Name: name, QualifiedName: name}))
		}(i)
	}
	wg.Wait()

	assert.Len(t, gc.FileContexts, 50)
	assert.Len(t, gc.DefinitionsByQN["A"], 2)
}
