package core

import (
	"fmt"
	"sync"

	"github.com/CodMac/java-autotemplate/model"
)

// --- 语言特有的符号解析接口 ---

type SymbolResolver interface {
	// BuildQualifiedName 根据父节点和当前名构建 QN
	BuildQualifiedName(parentQN, name string) string

	// Resolve 把简单名解析为类型描述：处理本地定义、导入、同包、通配符等逻辑
	Resolve(gc *GlobalContext, fc *FileContext, symbol string) *model.TypeDescriptor

	// RegisterPackage 注册包/命名空间逻辑 (Java 需要拆分点号)
	// 调用方已持有 gc 的写锁
	RegisterPackage(gc *GlobalContext, packageName string)
}

var (
	resolverMu        sync.RWMutex
	symbolResolverMap = make(map[model.Language]SymbolResolver)
)

// RegisterSymbolResolver 注册一个语言与其对应的 SymbolResolver。
func RegisterSymbolResolver(lang model.Language, resolver SymbolResolver) {
	resolverMu.Lock()
	defer resolverMu.Unlock()
	symbolResolverMap[lang] = resolver
}

// GetSymbolResolver 根据语言类型获取对应的 SymbolResolver 实例。
func GetSymbolResolver(lang model.Language) (SymbolResolver, error) {
	resolverMu.RLock()
	defer resolverMu.RUnlock()

	resolver, ok := symbolResolverMap[lang]
	if !ok {
		return nil, fmt.Errorf("no SymbolResolver for language: %s", lang)
	}

	return resolver, nil
}
