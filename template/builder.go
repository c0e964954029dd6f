package template

import "github.com/CodMac/java-autotemplate/model"

// Builder 对应源码中的 AutoTemplate.compile(name, lambda) 调用。
// 参数个数不固定, 用 Parameter 列表表示。
type Builder struct {
	name       string
	parameters []model.Parameter
	classpath  []string
}

// Compile 声明一个名为 name 的模板
func Compile(name string, params ...model.Parameter) *Builder {
	return &Builder{name: name, parameters: cloneSlice(params)}
}

// Param 是 model.Parameter 的便捷构造
func Param(name, typ string) model.Parameter {
	return model.Parameter{Name: name, Type: typ}
}

func (b *Builder) Name() string                  { return b.name }
func (b *Builder) Parameters() []model.Parameter { return cloneSlice(b.parameters) }
func (b *Builder) Classpath() []string           { return cloneSlice(b.classpath) }

// IsolateClasspath 记录生成模板时使用的隔离 classpath 条目, 运行期不起作用
func (b *Builder) IsolateClasspath(entries ...string) *Builder {
	b.classpath = append(b.classpath, entries...)
	return b
}

// Build 从 DefaultRegistry 取出 owner 的模板
func (b *Builder) Build(owner string) (*Template, error) {
	return b.BuildFrom(DefaultRegistry, owner)
}

func (b *Builder) BuildFrom(reg *Registry, owner string) (*Template, error) {
	return reg.Lookup(owner, b.name)
}

// MustBuild 与 Build 相同, 但找不到模板时 panic: 生成物应当在构建期就存在
func (b *Builder) MustBuild(owner string) *Template {
	tmpl, err := b.Build(owner)
	if err != nil {
		panic(err)
	}
	return tmpl
}
