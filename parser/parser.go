package parser

import (
	"fmt"
	"os"

	"github.com/CodMac/java-autotemplate/model"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Parser 定义了所有语言解析器的通用能力
type Parser interface {
	// ParseFile 读取文件内容并解析，返回语法树与源码。调用方负责 Close 返回的 Tree。
	ParseFile(filePath string) (*sitter.Tree, []byte, error)
	// ParseSource 直接解析内存中的源码
	ParseSource(content []byte) (*sitter.Tree, error)
	Close()
}

// TreeSitterParser 是 Parser 的具体实现，不是并发安全的，每个 goroutine 各自创建
type TreeSitterParser struct {
	Language model.Language // 当前解析器针对的语言
	tsParser *sitter.Parser
}

// NewParser 创建一个新的 TreeSitterParser 实例
func NewParser(lang model.Language) (*TreeSitterParser, error) {
	tsLang, err := model.GetLanguage(lang)
	if err != nil {
		return nil, err
	}

	tsParser := sitter.NewParser()
	if err := tsParser.SetLanguage(tsLang); err != nil {
		tsParser.Close()
		return nil, fmt.Errorf("failed to set language %s: %w", lang, err)
	}

	return &TreeSitterParser{
		Language: lang,
		tsParser: tsParser,
	}, nil
}

// ParseFile 实现了 Parser 接口
func (p *TreeSitterParser) ParseFile(filePath string) (*sitter.Tree, []byte, error) {
	// 1. 读取文件内容
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	// 2. 解析文件内容
	tree, err := p.ParseSource(content)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", err, filePath)
	}
	return tree, content, nil
}

// ParseSource 实现了 Parser 接口
func (p *TreeSitterParser) ParseSource(content []byte) (*sitter.Tree, error) {
	tree := p.tsParser.Parse(content, nil)
	if tree == nil {
		return nil, fmt.Errorf("tree-sitter failed to parse %s source", p.Language)
	}
	return tree, nil
}

// Close 释放 Tree-sitter 内部资源
func (p *TreeSitterParser) Close() {
	if p.tsParser != nil {
		p.tsParser.Close()
	}
}
