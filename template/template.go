package template

import "github.com/CodMac/java-autotemplate/model"

// Key 定位一个模板: 所属 visitor 的二进制名 + 模板名
type Key struct {
	Owner string
	Name  string
}

// String 返回生成类的命名约定 Owner_Name
func (k Key) String() string {
	return k.Owner + "_" + k.Name
}

// Template 是编译好的模板，创建后不可变，访问器均返回拷贝
type Template struct {
	key        Key
	code       string
	imports    []string
	parameters []model.Parameter
	classpath  []string
}

// New 创建一个模板, 会拷贝传入的切片
func New(key Key, code string, imports []string, parameters []model.Parameter, classpath []string) *Template {
	return &Template{
		key:        key,
		code:       code,
		imports:    cloneSlice(imports),
		parameters: cloneSlice(parameters),
		classpath:  cloneSlice(classpath),
	}
}

// FromSpec 由处理器输出的 TemplateSpec 组装模板
func FromSpec(spec *model.TemplateSpec) *Template {
	return New(Key{Owner: spec.Owner, Name: spec.Name}, spec.Code, spec.Imports, spec.Parameters, spec.Classpath)
}

func (t *Template) Key() Key                      { return t.key }
func (t *Template) Code() string                  { return t.code }
func (t *Template) Imports() []string             { return cloneSlice(t.imports) }
func (t *Template) Parameters() []model.Parameter { return cloneSlice(t.parameters) }
func (t *Template) Classpath() []string           { return cloneSlice(t.classpath) }

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
