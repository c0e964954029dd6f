package core

import (
	"path/filepath"
	"sync"

	"github.com/CodMac/java-autotemplate/model"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

type DefinitionEntry struct {
	Element  *model.CodeElement
	ParentQN string
	Node     *sitter.Node // 保留 AST 节点引用, 仅在所属 Tree 存活期间有效
}

type ImportEntry struct {
	RawImportPath string            `json:"RawImportPath"`
	Alias         string            `json:"Alias"`
	Kind          model.ElementKind `json:"Kind"`
	IsWildcard    bool              `json:"IsWildcard"`
	IsStatic      bool              `json:"IsStatic"`
	Location      *model.Location   `json:"Location,omitempty"`
}

type FileContext struct {
	FilePath        string
	PackageName     string
	RootNode        *sitter.Node
	SourceBytes     []byte
	DefinitionsBySN map[string][]*DefinitionEntry
	Imports         map[string][]*ImportEntry
	mutex           sync.RWMutex
}

func NewFileContext(filePath string, rootNode *sitter.Node, sourceBytes []byte) *FileContext {
	return &FileContext{
		FilePath:        filePath,
		RootNode:        rootNode,
		SourceBytes:     sourceBytes,
		DefinitionsBySN: make(map[string][]*DefinitionEntry),
		Imports:         make(map[string][]*ImportEntry),
	}
}

func (fc *FileContext) AddDefinition(elem *model.CodeElement, parentQN string, node *sitter.Node) {
	fc.mutex.Lock()
	defer fc.mutex.Unlock()

	fc.DefinitionsBySN[elem.Name] = append(fc.DefinitionsBySN[elem.Name], &DefinitionEntry{Element: elem, ParentQN: parentQN, Node: node})
}

func (fc *FileContext) AddImport(alias string, imp *ImportEntry) {
	fc.mutex.Lock()
	defer fc.mutex.Unlock()
	fc.Imports[alias] = append(fc.Imports[alias], imp)
}

// AttachTree 绑定 (重新) 解析得到的语法树
func (fc *FileContext) AttachTree(rootNode *sitter.Node, sourceBytes []byte) {
	fc.mutex.Lock()
	defer fc.mutex.Unlock()
	fc.RootNode = rootNode
	fc.SourceBytes = sourceBytes
}

// DetachTree 在语法树被释放后清除对其节点的引用, 源码与定义保留
func (fc *FileContext) DetachTree() {
	fc.mutex.Lock()
	defer fc.mutex.Unlock()
	fc.RootNode = nil
	for _, defs := range fc.DefinitionsBySN {
		for _, def := range defs {
			def.Node = nil
		}
	}
}

// FindDefinitions 按短名称和类型过滤本文件内的定义
func (fc *FileContext) FindDefinitions(name string, match func(model.ElementKind) bool) []*DefinitionEntry {
	fc.mutex.RLock()
	defer fc.mutex.RUnlock()

	var found []*DefinitionEntry
	for _, def := range fc.DefinitionsBySN[name] {
		if match == nil || match(def.Element.Kind) {
			found = append(found, def)
		}
	}
	return found
}

// GlobalContext 汇总所有文件的定义，用于跨文件解析类型
type GlobalContext struct {
	FileContexts    map[string]*FileContext
	DefinitionsByQN map[string][]*DefinitionEntry
	resolver        SymbolResolver // 持有具体语言的解析器
	mutex           sync.RWMutex
}

func NewGlobalContext(resolver SymbolResolver) *GlobalContext {
	return &GlobalContext{
		FileContexts:    make(map[string]*FileContext),
		DefinitionsByQN: make(map[string][]*DefinitionEntry),
		resolver:        resolver,
	}
}

// RegisterFileContext 注册文件节点、包节点与文件内定义
func (gc *GlobalContext) RegisterFileContext(fc *FileContext) {
	gc.mutex.Lock()
	defer gc.mutex.Unlock()

	gc.FileContexts[fc.FilePath] = fc

	// 1. 注册文件节点
	fileElem := &model.CodeElement{
		Kind:          model.File,
		Name:          filepath.Base(fc.FilePath),
		QualifiedName: fc.FilePath,
		Path:          fc.FilePath,
	}
	gc.DefinitionsByQN[fc.FilePath] = []*DefinitionEntry{{Element: fileElem}}

	// 2. 委托 Resolver 处理包注册
	gc.resolver.RegisterPackage(gc, fc.PackageName)

	// 3. 注册文件内定义
	for _, entries := range fc.DefinitionsBySN {
		for _, entry := range entries {
			gc.DefinitionsByQN[entry.Element.QualifiedName] = append(gc.DefinitionsByQN[entry.Element.QualifiedName], entry)
		}
	}
}

// FileContext 返回已注册的文件上下文
func (gc *GlobalContext) FileContext(filePath string) (*FileContext, bool) {
	gc.mutex.RLock()
	defer gc.mutex.RUnlock()
	fc, ok := gc.FileContexts[filePath]
	return fc, ok
}

// ResolveType 由 Resolver 驱动, 返回简单名对应的类型描述, 找不到时返回 nil
func (gc *GlobalContext) ResolveType(fc *FileContext, symbol string) *model.TypeDescriptor {
	return gc.resolver.Resolve(gc, fc, symbol)
}

func (gc *GlobalContext) BuildQualifiedName(parentQN, name string) string {
	return gc.resolver.BuildQualifiedName(parentQN, name)
}

func (gc *GlobalContext) RLock() { gc.mutex.RLock() }

func (gc *GlobalContext) RUnlock() { gc.mutex.RUnlock() }
