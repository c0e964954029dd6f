package java

// 模板调用点的约定名称
const (
	AutoTemplateClass      = "AutoTemplate"     // compile 的宿主类
	CompileMethod          = "compile"          // AutoTemplate.compile(name, lambda)
	IsolateClasspathMethod = "isolateClasspath" // .isolateClasspath("a", "b")
)
