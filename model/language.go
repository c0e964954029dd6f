package model

import (
	"fmt"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Language 标识支持的编程语言
type Language string

const (
	LangJava Language = "java"
)

var (
	langMu  sync.RWMutex
	langMap = make(map[Language]*sitter.Language) // langMap 存储语言标识到 Tree-sitter 语言对象的映射
)

// RegisterLanguage 用于注册 Tree-sitter 语言库
func RegisterLanguage(lang Language, tsLang *sitter.Language) {
	langMu.Lock()
	defer langMu.Unlock()
	langMap[lang] = tsLang
}

// GetLanguage 获取已注册的 Tree-sitter 语言对象
func GetLanguage(lang Language) (*sitter.Language, error) {
	langMu.RLock()
	defer langMu.RUnlock()

	tsLang, ok := langMap[lang]
	if !ok {
		return nil, fmt.Errorf("language %s not registered", lang)
	}

	return tsLang, nil
}

// FileExtension 返回语言对应的源文件后缀
func FileExtension(lang Language) string {
	switch lang {
	case LangJava:
		return ".java"
	default:
		return ""
	}
}
