package core

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/CodMac/java-autotemplate/model"
)

// ImportSet 是按首次出现顺序排列、去重后的全限定名集合
type ImportSet struct {
	names []string
	seen  map[string]struct{}
}

func NewImportSet() *ImportSet {
	return &ImportSet{seen: make(map[string]struct{})}
}

// Add 加入一个名称, 已存在时保持原位置, 返回是否为新名称
func (s *ImportSet) Add(name string) bool {
	if _, ok := s.seen[name]; ok {
		return false
	}
	s.seen[name] = struct{}{}
	s.names = append(s.names, name)
	return true
}

func (s *ImportSet) Contains(name string) bool {
	_, ok := s.seen[name]
	return ok
}

func (s *ImportSet) Len() int { return len(s.names) }

// Names 返回结果的拷贝
func (s *ImportSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// DetectImports 找出 lambda (参数类型 + 主体) 中直接以简单名引用、
// 因而在模板中需要 import 的类型。
func DetectImports(root model.Expr) []string {
	set := NewImportSet()
	scanImports(root, set)
	return set.Names()
}

func scanImports(e model.Expr, set *ImportSet) {
	if e == nil {
		return
	}

	if access, ok := e.(*model.MemberAccess); ok && startsWithUpper(access.Name) {
		if isQualifiedTypeChain(access) {
			// 可能是用户写出的全限定名或内部类路径, 不为它补 import,
			// 同时跳过链条末端代表类简单名的 identifier
			return
		}
	}

	if ident, ok := e.(*model.Identifier); ok {
		if fqn, ok := importNameOf(ident); ok {
			set.Add(fqn)
		}
	}

	for _, child := range e.Children() {
		scanImports(child, set)
	}
}

// isQualifiedTypeChain 沿 receiver 向左走, 第一个不是 MemberAccess 的 receiver
// 若是大写开头的 Identifier 则视为限定类型名
func isQualifiedTypeChain(access *model.MemberAccess) bool {
	var current model.Expr = access
	for {
		next, ok := current.(*model.MemberAccess)
		if !ok {
			return false
		}
		current = next.Receiver
		if ident, ok := current.(*model.Identifier); ok && startsWithUpper(ident.Name) {
			return true
		}
	}
}

// importNameOf 返回 identifier 需要导入的全限定名。
// '$' 先折叠成 '.', 再取最后一段与源码拼写比较。
func importNameOf(ident *model.Identifier) (string, bool) {
	if ident.Type == nil || !ident.Type.IsClassLike() || ident.Type.BinaryName == "" {
		return "", false
	}

	fqn := SourceName(ident.Type.BinaryName)
	if SimpleName(fqn) != ident.Name {
		return "", false
	}
	return fqn, true
}

// SourceName 把二进制名中的内部类分隔符 '$' 转为 '.'
func SourceName(binaryName string) string {
	return strings.ReplaceAll(binaryName, "$", ".")
}

// SimpleName 返回限定名的最后一段
func SimpleName(qn string) string {
	return qn[strings.LastIndex(qn, ".")+1:]
}

func startsWithUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && unicode.IsUpper(r)
}
