package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/estore/pkg/errors"
)

// memoryRepo 内存用户仓储,测试用
type memoryRepo struct {
	users  map[uint]*User
	nextID uint
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{users: make(map[uint]*User), nextID: 1}
}

func (r *memoryRepo) Create(ctx context.Context, u *User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return apperrors.ErrEmailDuplicate
		}
	}
	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = u
	return nil
}

func (r *memoryRepo) FindByID(ctx context.Context, id uint) (*User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *memoryRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *memoryRepo) List(ctx context.Context) ([]*User, error) {
	var users []*User
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

func (r *memoryRepo) Update(ctx context.Context, u *User) error {
	r.users[u.ID] = u
	return nil
}

func TestRegister(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	t.Run("正常注册", func(t *testing.T) {
		u, err := svc.Register(ctx, "张三", "zhangsan@example.com", "abc12345")
		require.NoError(t, err)
		assert.NotZero(t, u.ID)
		assert.NotEqual(t, "abc12345", u.PasswordHash, "密码不应该明文存储")
		assert.True(t, u.CheckPassword("abc12345"))
	})

	t.Run("邮箱重复应失败", func(t *testing.T) {
		_, err := svc.Register(ctx, "李四", "zhangsan@example.com", "xyz67890")
		assert.ErrorIs(t, err, apperrors.ErrEmailDuplicate)
	})

	t.Run("邮箱格式错误应失败", func(t *testing.T) {
		_, err := svc.Register(ctx, "王五", "not-an-email", "abc12345")
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidParams, apperrors.GetAppError(err).Code)
	})

	t.Run("弱密码应失败", func(t *testing.T) {
		cases := []string{
			"short1",   // 太短
			"abcdefgh", // 没有数字
			"12345678", // 没有字母
		}
		for _, password := range cases {
			_, err := svc.Register(ctx, "王五", "wangwu@example.com", password)
			assert.ErrorIs(t, err, apperrors.ErrWeakPassword, "密码%q应该被拒绝", password)
		}
	})
}

func TestAuthenticate(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "张三", "zhangsan@example.com", "abc12345")
	require.NoError(t, err)

	t.Run("正确密码", func(t *testing.T) {
		u, err := svc.Authenticate(ctx, "zhangsan@example.com", "abc12345")
		require.NoError(t, err)
		assert.Equal(t, "zhangsan@example.com", u.Email)
	})

	t.Run("错误密码", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "zhangsan@example.com", "wrong999")
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})

	t.Run("用户不存在时返回密码错误", func(t *testing.T) {
		// 防止账号枚举:不区分"用户不存在"和"密码错误"
		_, err := svc.Authenticate(ctx, "nobody@example.com", "abc12345")
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})
}

func TestUpdateProfile(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	u, err := svc.Register(ctx, "张三", "zhangsan@example.com", "abc12345")
	require.NoError(t, err)

	t.Run("修改昵称", func(t *testing.T) {
		updated, err := svc.UpdateProfile(ctx, u.ID, "张三丰", "", "")
		require.NoError(t, err)
		assert.Equal(t, "张三丰", updated.Name)
		assert.Equal(t, "zhangsan@example.com", updated.Email, "空邮箱表示不修改")
	})

	t.Run("修改密码后旧密码失效", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, u.ID, "", "", "newpass99")
		require.NoError(t, err)

		_, err = svc.Authenticate(ctx, "zhangsan@example.com", "abc12345")
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)

		_, err = svc.Authenticate(ctx, "zhangsan@example.com", "newpass99")
		assert.NoError(t, err)
	})

	t.Run("新密码太弱应失败", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, u.ID, "", "", "weak")
		assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
	})
}
