package extractor

import (
	"fmt"
	"sync"

	"github.com/CodMac/java-autotemplate/core"
	"github.com/CodMac/java-autotemplate/model"
)

// Extractor 定义了第二阶段提取模板的能力，需要全局上下文。
type Extractor interface {
	// Extract 接收文件路径和全局上下文，返回该文件中所有 compile 调用点编译出的模板。
	Extract(filePath string, gc *core.GlobalContext) ([]*model.TemplateSpec, error)
}

var (
	mu           sync.RWMutex
	extractorMap = make(map[model.Language]Extractor)
)

// RegisterExtractor 注册一个语言与其对应的 Extractor。
func RegisterExtractor(lang model.Language, ext Extractor) {
	mu.Lock()
	defer mu.Unlock()
	extractorMap[lang] = ext
}

// GetExtractor 根据语言类型获取对应的 Extractor 实例。
func GetExtractor(lang model.Language) (Extractor, error) {
	mu.RLock()
	defer mu.RUnlock()

	ext, ok := extractorMap[lang]
	if !ok {
		return nil, fmt.Errorf("no extractor registered for language: %s", lang)
	}
	return ext, nil
}
