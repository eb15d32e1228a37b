package dto

// RegisterRequest HTTP注册请求
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=50" example:"张三"`
	Email    string `json:"email" binding:"required,email" example:"zhangsan@example.com"`
	Password string `json:"password" binding:"required,min=8,max=20" example:"abc12345"`
}

// LoginRequest HTTP登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"zhangsan@example.com"`
	Password string `json:"password" binding:"required" example:"abc12345"`
}

// UpdateUserRequest HTTP更新用户资料请求(空字段表示不修改)
type UpdateUserRequest struct {
	Name     string `json:"name" binding:"omitempty,min=2,max=50" example:"李四"`
	Email    string `json:"email" binding:"omitempty,email" example:"lisi@example.com"`
	Password string `json:"password" binding:"omitempty,min=8,max=20" example:"xyz67890"`
}
