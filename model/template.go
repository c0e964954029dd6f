package model

// Parameter 描述模板 lambda 的一个参数
type Parameter struct {
	Name string `json:"Name"`
	Type string `json:"Type,omitempty"` // Type: 源码中声明的参数类型, 隐式类型的 lambda 参数为空
}

// TemplateSpec 是工具的核心输出结构，描述了一个 compile 调用点编译出的模板
type TemplateSpec struct {
	Owner      string      `json:"Owner"`               // Owner: 所属 visitor 类的二进制名 (e.g., "com.acme.MyRecipe$MyVisitor")
	Name       string      `json:"Name"`                // Name: 模板名, 即 compile 的第一个参数
	Parameters []Parameter `json:"Parameters"`          // Parameters: lambda 参数
	Code       string      `json:"Code"`                // Code: lambda 主体的源码文本
	Imports    []string    `json:"Imports"`             // Imports: 主体中需要显式 import 的全限定类型名, 按首次出现排序
	Classpath  []string    `json:"Classpath,omitempty"` // Classpath: isolateClasspath 声明的条目
	Location   *Location   `json:"Location,omitempty"`  // Location: compile 调用的位置
}
