package java

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/CodMac/java-autotemplate/core"
	"github.com/CodMac/java-autotemplate/model"
)

type SymbolResolver struct{}

func NewJavaSymbolResolver() *SymbolResolver {
	return &SymbolResolver{}
}

func (j *SymbolResolver) BuildQualifiedName(parentQN, name string) string {
	if parentQN == "" || parentQN == "." {
		return name
	}
	return parentQN + "." + name
}

func (j *SymbolResolver) RegisterPackage(gc *core.GlobalContext, packageName string) {
	if packageName == "" {
		return
	}
	parts := strings.Split(packageName, ".")
	var current []string
	for _, part := range parts {
		current = append(current, part)
		pkgQN := strings.Join(current, ".")
		if _, ok := gc.DefinitionsByQN[pkgQN]; !ok {
			gc.DefinitionsByQN[pkgQN] = []*core.DefinitionEntry{{
				Element: &model.CodeElement{Kind: model.Package, Name: part, QualifiedName: pkgQN},
			}}
		}
	}
}

func (j *SymbolResolver) Resolve(gc *core.GlobalContext, fc *core.FileContext, symbol string) *model.TypeDescriptor {
	gc.RLock()
	defer gc.RUnlock()

	// 1. 本文件定义 (含内部类)
	if defs := fc.FindDefinitions(symbol, model.ElementKind.IsClassLike); len(defs) > 0 {
		return describe(defs[0].Element)
	}

	// 2. 精确导入 (静态导入的是成员, 不参与类型解析)
	for _, imp := range fc.Imports[symbol] {
		if imp.IsStatic || imp.IsWildcard {
			continue
		}
		if desc := lookupQN(gc, imp.RawImportPath); desc != nil {
			return desc
		}
		if b, ok := BuiltinTable[symbol]; ok && core.SourceName(b.BinaryName) == imp.RawImportPath {
			return &model.TypeDescriptor{BinaryName: b.BinaryName, Kind: b.Kind}
		}
		return &model.TypeDescriptor{BinaryName: guessBinaryName(imp.RawImportPath), Kind: model.Class}
	}

	// 3. 同包
	if desc := lookupQN(gc, j.BuildQualifiedName(fc.PackageName, symbol)); desc != nil {
		return desc
	}

	// 4. 通配符导入: 先查项目内定义, 再查 JDK 表
	for _, imp := range fc.Imports["*"] {
		if imp.IsStatic {
			continue
		}
		base := strings.TrimSuffix(imp.RawImportPath, "*")
		if desc := lookupQN(gc, base+symbol); desc != nil {
			return desc
		}
		if b, ok := BuiltinTable[symbol]; ok && core.SourceName(b.BinaryName) == base+symbol {
			return &model.TypeDescriptor{BinaryName: b.BinaryName, Kind: b.Kind}
		}
	}

	// 5. java.lang 隐式导入
	if b, ok := BuiltinTable[symbol]; ok && b.BinaryName == "java.lang."+symbol {
		return &model.TypeDescriptor{BinaryName: b.BinaryName, Kind: b.Kind}
	}

	// 6. 包名前缀 (e.g. java.util.List 中的 java)
	if defs, ok := gc.DefinitionsByQN[symbol]; ok && len(defs) > 0 && defs[0].Element.Kind == model.Package {
		return &model.TypeDescriptor{BinaryName: symbol, Kind: model.Package}
	}

	return nil
}

// lookupQN 在全局定义中按源码限定名查找类型, 调用方持有读锁
func lookupQN(gc *core.GlobalContext, qn string) *model.TypeDescriptor {
	for _, def := range gc.DefinitionsByQN[qn] {
		if def.Element.Kind.IsClassLike() {
			return describe(def.Element)
		}
	}
	return nil
}

func describe(elem *model.CodeElement) *model.TypeDescriptor {
	binary := elem.BinaryName
	if binary == "" {
		binary = elem.QualifiedName
	}
	return &model.TypeDescriptor{BinaryName: binary, Kind: elem.Kind}
}

// guessBinaryName 按命名约定推测项目外类型的二进制名:
// 第一个大写开头的段是顶层类, 其后的段都是内部类。
func guessBinaryName(qn string) string {
	parts := strings.Split(qn, ".")
	for i, part := range parts {
		if r, _ := utf8.DecodeRuneInString(part); unicode.IsUpper(r) {
			return strings.Join(parts[:i+1], ".") + joinNested(parts[i+1:])
		}
	}
	return qn
}

func joinNested(parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	return "$" + strings.Join(parts, "$")
}
