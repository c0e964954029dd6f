package template

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrTemplateNotFound  = errors.New("template not found")
	ErrFactoryFailed     = errors.New("template factory failed")
	ErrDuplicateTemplate = errors.New("template already registered")
)

// Factory 生成模板。失败时返回 error, 调用方按配置错误处理, 不重试。
type Factory func() (*Template, error)

// Registry 是 (owner, name) -> Factory 的静态映射, 并发安全
type Registry struct {
	mu        sync.RWMutex
	factories map[Key]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[Key]Factory)}
}

// DefaultRegistry 由生成代码的 init 函数或 LoadManifest 填充
var DefaultRegistry = NewRegistry()

// Register 注册一个模板工厂, 同一个 key 只能注册一次
func (r *Registry) Register(owner, name string, factory Factory) error {
	if factory == nil {
		return fmt.Errorf("nil factory for %s", Key{owner, name})
	}
	key := Key{Owner: owner, Name: name}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTemplate, key)
	}
	r.factories[key] = factory
	return nil
}

// Lookup 找到并调用工厂, 返回模板
func (r *Registry) Lookup(owner, name string) (*Template, error) {
	key := Key{Owner: owner, Name: name}

	r.mu.RLock()
	factory, ok := r.factories[key]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, key)
	}
	return invoke(key, factory)
}

// Keys 返回所有已注册的 key, 按字符串排序
func (r *Registry) Keys() []Key {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]Key, 0, len(r.factories))
	for k := range r.factories {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}

func invoke(key Key, factory Factory) (tmpl *Template, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			tmpl, err = nil, fmt.Errorf("%w: %s: panic: %v", ErrFactoryFailed, key, rec)
		}
	}()

	tmpl, err = factory()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFactoryFailed, key, err)
	}
	if tmpl == nil {
		return nil, fmt.Errorf("%w: %s: factory returned nil", ErrFactoryFailed, key)
	}
	return tmpl, nil
}

// Register 向 DefaultRegistry 注册
func Register(owner, name string, factory Factory) error {
	return DefaultRegistry.Register(owner, name, factory)
}

// Lookup 从 DefaultRegistry 查找
func Lookup(owner, name string) (*Template, error) {
	return DefaultRegistry.Lookup(owner, name)
}
