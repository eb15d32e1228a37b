package user

import (
	"context"
	"errors"
	"regexp"
	"unicode"

	apperrors "github.com/xiebiao/estore/pkg/errors"
)

// Service 用户领域服务接口
type Service interface {
	// Register 注册用户
	// 业务规则: 邮箱格式合法且未注册;密码8-20位且同时包含字母和数字
	Register(ctx context.Context, name, email, password string) (*User, error)

	// Authenticate 校验邮箱+密码,用于登录
	Authenticate(ctx context.Context, email, password string) (*User, error)

	// GetByID 根据ID获取用户
	GetByID(ctx context.Context, id uint) (*User, error)

	// List 查询全部用户
	List(ctx context.Context) ([]*User, error)

	// UpdateProfile 更新用户资料,password非空时重新哈希
	UpdateProfile(ctx context.Context, id uint, name, email, password string) (*User, error)
}

type service struct {
	repo Repository
}

// NewService 创建用户领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Register 注册用户
func (s *service) Register(ctx context.Context, name, email, password string) (*User, error) {
	if !emailPattern.MatchString(email) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "邮箱格式不正确")
	}
	if !isStrongPassword(password) {
		return nil, apperrors.ErrWeakPassword
	}

	// 先查重,拿到友好错误;数据库唯一索引兜底并发窗口
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return nil, apperrors.ErrEmailDuplicate
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	u, err := NewUser(name, email, password)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate 校验登录凭证
func (s *service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		// 不区分"用户不存在"和"密码错误",防止账号枚举
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidPassword
		}
		return nil, err
	}

	if !u.CheckPassword(password) {
		return nil, apperrors.ErrInvalidPassword
	}
	return u, nil
}

// GetByID 根据ID获取用户
func (s *service) GetByID(ctx context.Context, id uint) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

// List 查询全部用户
func (s *service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

// UpdateProfile 更新用户资料
func (s *service) UpdateProfile(ctx context.Context, id uint, name, email, password string) (*User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if email != "" && !emailPattern.MatchString(email) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "邮箱格式不正确")
	}
	u.UpdateProfile(name, email)

	if password != "" {
		if !isStrongPassword(password) {
			return nil, apperrors.ErrWeakPassword
		}
		if err := u.ChangePassword(password); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// isStrongPassword 8-20位,同时包含字母和数字
func isStrongPassword(password string) bool {
	if len(password) < 8 || len(password) > 20 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}
