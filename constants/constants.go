package constants

// ginのコンテキストキー
const (
	ContextUserKey = "user"
)

// エラーメッセージ
const (
	ErrNotAuthenticated      = "Not authenticated"
	ErrInvalidCredentialsJWT = "Could not validate credentials"
	ErrInvalidCredentials    = "Invalid credentials"
	ErrInactiveUser          = "Inactive user"
	ErrEmailRegistered       = "Email already registered"
	ErrNotEnoughPrivileges   = "The user doesn't have enough privileges"
	ErrSelfDelete            = "Super users are not allowed to delete themselves"
	ErrItemNotFound          = "Item not found"
	ErrUserNotFound          = "User not found"
	ErrUnexpected            = "Unexpected error"
)

// 成功メッセージ
const (
	MsgUserDeleted = "User deleted successfully"
)

// ページネーションの既定値
const (
	DefaultLimit = 100
	MaxLimit     = 1000
)
