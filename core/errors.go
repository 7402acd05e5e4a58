package core

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 所有领域层错误都使用此类型
//   - 提供错误代码（Code）和消息（Message）
//   - 通过 IsXXX 检查函数消费，不做字符串匹配
//
// 使用场景：
//   - 存储错误：NOT_FOUND, CONFLICT
//   - 特征错误：INVALID_INPUT
//   - 目录错误：UNAVAILABLE
type DomainError struct {
	Code    string // 错误代码（如 "NOT_FOUND", "CONFLICT"）
	Message string // 错误消息
	Module  string // 模块名称（如 "store", "profile", "catalog"）
}

func (e *DomainError) Error() string {
	return e.Message
}

// GetDomainError 获取 DomainError，如果不是则返回 nil。
func GetDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	if domainErr, ok := err.(*DomainError); ok {
		return domainErr
	}
	return nil
}

// NewDomainError 创建新的领域错误。
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// 错误代码常量
const (
	ErrorCodeNotFound      = "NOT_FOUND"      // 资源不存在
	ErrorCodeConflict      = "CONFLICT"       // 乐观并发冲突
	ErrorCodeInvalidInput  = "INVALID_INPUT"  // 输入无效
	ErrorCodeUnavailable   = "UNAVAILABLE"    // 外部依赖不可用
	ErrorCodeNotSupported  = "NOT_SUPPORTED"  // 操作不支持
	ErrorCodeInternalError = "INTERNAL_ERROR" // 内部错误
)

// 模块名称常量
const (
	ModuleStore    = "store"    // 存储模块
	ModuleFeature  = "feature"  // 特征模块
	ModuleProfile  = "profile"  // 画像模块
	ModuleRanker   = "ranker"   // 排序模块
	ModuleCatalog  = "catalog"  // 目录模块
	ModuleConsumer = "consumer" // 消费者模块
)

// 预定义的领域错误。
var (
	// ErrItemFeatureNotFound 表示事件引用了没有特征向量的物品。
	// 策略：事件被拒绝（返回错误而非静默丢弃），由调用方按自身策略记录/重试；
	// 核心绝不为未知物品伪造默认特征向量。
	ErrItemFeatureNotFound = NewDomainError(ModuleStore, ErrorCodeNotFound, "store: item feature not found")

	// ErrProfileNotFound 表示画像不存在。对更新通道而言这不是错误
	// （画像惰性创建），只有存储层内部使用。
	ErrProfileNotFound = NewDomainError(ModuleStore, ErrorCodeNotFound, "store: user profile not found")

	// ErrProfileConflict 表示画像保存时版本不匹配（并发写冲突）。
	// 调用方应重试整段读-改-写；重试耗尽后作为瞬态失败上抛。
	ErrProfileConflict = NewDomainError(ModuleStore, ErrorCodeConflict, "store: concurrent profile write conflict")
)

// IsNotFound 检查错误是否为 NOT_FOUND。
func IsNotFound(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeNotFound
	}
	return false
}

// IsConflict 检查错误是否为乐观并发冲突。
func IsConflict(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeConflict
	}
	return false
}

// IsInvalidInput 检查错误是否为无效输入。
func IsInvalidInput(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeInvalidInput
	}
	return false
}

// IsUnavailable 检查错误是否为外部依赖不可用。
func IsUnavailable(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeUnavailable
	}
	return false
}
