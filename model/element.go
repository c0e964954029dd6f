package model

// --- 代码元素类型 (Code Element Kinds) ---

// ElementKind 是表示代码实体类型的字符串常量
type ElementKind string

const (
	// 基本结构体
	File    ElementKind = "FILE"    // 对应源文件
	Package ElementKind = "PACKAGE" // 对应包 (Java package)

	// 面向对象/复合类型
	Class       ElementKind = "CLASS"      // 对应类
	Interface   ElementKind = "INTERFACE"  // 对应接口
	Enum        ElementKind = "ENUM"       // 对应枚举
	Record      ElementKind = "RECORD"     // 对应 record
	KAnnotation ElementKind = "ANNOTATION" // 对应注解类型 (@interface)

	// 可执行体
	Method ElementKind = "METHOD" // 对应类的方法

	// 存储和声明
	Variable     ElementKind = "VARIABLE"      // 对应局部变量、lambda 参数
	Constant     ElementKind = "CONSTANT"      // 对应静态导入的成员
	Field        ElementKind = "FIELD"         // 对应类的成员字段
	EnumConstant ElementKind = "ENUM_CONSTANT" // 对应枚举常量

	// 未知类型
	Unknown ElementKind = "UNKNOWN"
)

// IsClassLike 判断该类型是否为类/接口/枚举/record/注解这类可被 import 的类型
func (k ElementKind) IsClassLike() bool {
	switch k {
	case Class, Interface, Enum, Record, KAnnotation:
		return true
	}
	return false
}

// Location 描述了代码元素在源码中的位置
type Location struct {
	FilePath    string `json:"FilePath"`
	StartLine   int    `json:"StartLine"`
	EndLine     int    `json:"EndLine"`
	StartColumn int    `json:"StartColumn"`
	EndColumn   int    `json:"EndColumn"`
}

// CodeElement 描述了源码中的一个可识别实体
type CodeElement struct {
	Kind          ElementKind `json:"Kind"`                 // Kind: 元素的类型 (e.g., CLASS, FIELD)
	Name          string      `json:"Name"`                 // Name: 元素的短名称 (e.g., "Inner")
	QualifiedName string      `json:"QualifiedName"`        // QualifiedName: 源码形式的限定名 (e.g., "com.acme.Outer.Inner")
	BinaryName    string      `json:"BinaryName,omitempty"` // BinaryName: 二进制名, 内部类以 '$' 分隔 (e.g., "com.acme.Outer$Inner")
	Path          string      `json:"Path"`                 // Path: 元素所在的文件路径
	Location      *Location   `json:"Location,omitempty"`   // Location: 元素的位置
}

// BuildQualifiedName 拼接父级 QN 与短名称
func BuildQualifiedName(parentQN, name string) string {
	if parentQN == "" {
		return name
	}
	return parentQN + "." + name
}
