package model

// ExprKind 区分表达式树中的节点种类
type ExprKind string

const (
	KindMemberAccess ExprKind = "MEMBER_ACCESS"
	KindIdentifier   ExprKind = "IDENTIFIER"
	KindOther        ExprKind = "OTHER"
)

// Expr 是表达式树中的一个节点。树由前端 (x/java) 构建，解析期间只读。
type Expr interface {
	ExprKind() ExprKind
	Children() []Expr
}

// TypeDescriptor 是前端做类型归属 (attribution) 后挂在 Identifier 上的元数据
type TypeDescriptor struct {
	BinaryName string      `json:"BinaryName,omitempty"` // 二进制名, 内部类用 '$' 分隔; 非类型符号可为空
	Kind       ElementKind `json:"Kind"`
}

// IsClassLike 判断描述的符号是否为类型 (而非变量、方法、包)
func (t *TypeDescriptor) IsClassLike() bool {
	return t != nil && t.Kind.IsClassLike()
}

// MemberAccess 形如 receiver.Name, 例如 a.b、Outer.Inner、obj.method
type MemberAccess struct {
	Receiver Expr
	Name     string
	Location *Location
}

func (m *MemberAccess) ExprKind() ExprKind { return KindMemberAccess }

func (m *MemberAccess) Children() []Expr {
	if m.Receiver == nil {
		return nil
	}
	return []Expr{m.Receiver}
}

// Identifier 是一个独立的简单名称
type Identifier struct {
	Name     string
	Type     *TypeDescriptor // nil 表示前端没有做类型归属
	Location *Location
}

func (i *Identifier) ExprKind() ExprKind { return KindIdentifier }

func (i *Identifier) Children() []Expr { return nil }

// Other 是其余所有节点种类, 仅用于到达子节点
type Other struct {
	Kind     string // 前端的原始节点类型, e.g. "lambda_expression"
	Nodes    []Expr
	Location *Location
}

func (o *Other) ExprKind() ExprKind { return KindOther }

func (o *Other) Children() []Expr { return o.Nodes }
