package noisefilter

import (
	"sync"

	"github.com/CodMac/java-autotemplate/model"
)

// NoiseFilter 识别不需要写进模板 import 列表的类型 (语言隐式可见的类型)
type NoiseFilter interface {
	IsNoise(qualifiedName string) bool
}

var (
	mu             sync.RWMutex
	noiseFilterMap = make(map[model.Language]NoiseFilter)
)

// RegisterNoiseFilter 注册一个语言与其对应的 NoiseFilter
func RegisterNoiseFilter(lang model.Language, noiseFilter NoiseFilter) {
	mu.Lock()
	defer mu.Unlock()
	noiseFilterMap[lang] = noiseFilter
}

// GetNoiseFilter 根据语言类型获取对应的 NoiseFilter 实例。
func GetNoiseFilter(lang model.Language) NoiseFilter {
	mu.RLock()
	defer mu.RUnlock()

	noiseFilter, ok := noiseFilterMap[lang]
	if !ok {
		// 如果没注册，返回一个默认不进行过滤的过滤器
		return &DefaultNoiseFilter{}
	}

	return noiseFilter
}

// Filter 返回去掉噪音后的名称列表，保持原有顺序
func Filter(f NoiseFilter, names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if !f.IsNoise(name) {
			out = append(out, name)
		}
	}
	return out
}

// DefaultNoiseFilter 默认过滤器：不对任何 QN 进行噪音判定
type DefaultNoiseFilter struct{}

func (d *DefaultNoiseFilter) IsNoise(qn string) bool { return false }
