package user

import (
	"context"

	"github.com/xiebiao/estore/internal/domain/user"
)

// GetUserUseCase 用户详情查询用例
type GetUserUseCase struct {
	userService user.Service
}

// NewGetUserUseCase 创建用户详情用例
func NewGetUserUseCase(userService user.Service) *GetUserUseCase {
	return &GetUserUseCase{userService: userService}
}

// Execute 执行用户详情查询
func (uc *GetUserUseCase) Execute(ctx context.Context, id uint) (*UserInfo, error) {
	u, err := uc.userService.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	info := toUserInfo(u)
	return &info, nil
}

// ListUsersUseCase 用户列表查询用例
type ListUsersUseCase struct {
	userService user.Service
}

// NewListUsersUseCase 创建用户列表用例
func NewListUsersUseCase(userService user.Service) *ListUsersUseCase {
	return &ListUsersUseCase{userService: userService}
}

// ListUsersResponse 用户列表响应DTO
type ListUsersResponse struct {
	List  []UserInfo `json:"list"`
	Total int        `json:"total"`
}

// Execute 执行用户列表查询
func (uc *ListUsersUseCase) Execute(ctx context.Context) (*ListUsersResponse, error) {
	users, err := uc.userService.List(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]UserInfo, len(users))
	for i, u := range users {
		list[i] = toUserInfo(u)
	}

	return &ListUsersResponse{List: list, Total: len(list)}, nil
}

// UpdateUserUseCase 更新用户资料用例
type UpdateUserUseCase struct {
	userService user.Service
}

// NewUpdateUserUseCase 创建更新用户用例
func NewUpdateUserUseCase(userService user.Service) *UpdateUserUseCase {
	return &UpdateUserUseCase{userService: userService}
}

// UpdateUserRequest 更新用户请求DTO(空字段表示不修改)
type UpdateUserRequest struct {
	ID       uint
	Name     string
	Email    string
	Password string
}

// Execute 执行更新用户资料
func (uc *UpdateUserUseCase) Execute(ctx context.Context, req UpdateUserRequest) (*UserInfo, error) {
	u, err := uc.userService.UpdateProfile(ctx, req.ID, req.Name, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	info := toUserInfo(u)
	return &info, nil
}
