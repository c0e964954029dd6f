package java

import "strings"

// NoiseFilter 过滤 java.lang 下的顶层类型: 它们隐式可见, 模板里不需要 import
type NoiseFilter struct{}

func NewJavaNoiseFilter() *NoiseFilter {
	return &NoiseFilter{}
}

func (f *NoiseFilter) IsNoise(qn string) bool {
	rest, ok := strings.CutPrefix(qn, "java.lang.")
	return ok && rest != "" && !strings.Contains(rest, ".")
}
