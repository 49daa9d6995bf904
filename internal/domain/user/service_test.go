package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	users  map[string]*User
	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]*User)}
}

func (f *fakeRepo) Create(_ context.Context, u *User) error {
	if _, ok := f.users[u.Email]; ok {
		return ErrEmailDuplicate
	}
	f.nextID++
	u.ID = f.nextID
	f.users[u.Email] = u
	return nil
}

func (f *fakeRepo) FindByEmail(_ context.Context, email string) (*User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (f *fakeRepo) FindByID(_ context.Context, id uint) (*User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func TestRegister(t *testing.T) {
	svc := NewService(newFakeRepo())

	u, err := svc.Register(context.Background(), RegisterInput{
		FullName: "张三",
		Email:    "Zhang.San@Example.COM",
		Password: "passw0rd1",
	})
	require.NoError(t, err)

	assert.Equal(t, "zhang.san@example.com", u.Email, "邮箱应统一转小写")
	assert.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "passw0rd1", u.PasswordHash, "密码不能明文落库")
	assert.False(t, u.Admin, "注册用户不应获得管理员标记")
}

func TestRegister_InvalidEmail(t *testing.T) {
	svc := NewService(newFakeRepo())

	for _, email := range []string{"", "not-an-email", "a@b", "@example.com"} {
		_, err := svc.Register(context.Background(), RegisterInput{
			Email:    email,
			Password: "passw0rd1",
		})
		assert.ErrorIs(t, err, ErrInvalidEmail, "邮箱: %q", email)
	}
}

func TestRegister_WeakPassword(t *testing.T) {
	svc := NewService(newFakeRepo())

	cases := map[string]string{
		"太短":   "a1",
		"无数字":  "onlyletters",
		"无字母":  "12345678",
		"超过上限": "a1a1a1a1a1a1a1a1a1a1a1a1",
	}
	for name, password := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), RegisterInput{
				Email:    "user@example.com",
				Password: password,
			})
			assert.ErrorIs(t, err, ErrWeakPassword)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewService(newFakeRepo())

	input := RegisterInput{Email: "user@example.com", Password: "passw0rd1"}
	_, err := svc.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), input)
	assert.ErrorIs(t, err, ErrEmailDuplicate)
}

func TestAuthenticate(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "user@example.com",
		Password: "passw0rd1",
	})
	require.NoError(t, err)

	t.Run("正确密码", func(t *testing.T) {
		u, err := svc.Authenticate(context.Background(), "user@example.com", "passw0rd1")
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", u.Email)
	})

	t.Run("错误密码", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "user@example.com", "wrongpass1")
		assert.ErrorIs(t, err, ErrInvalidPassword)
	})

	t.Run("用户不存在时返回相同错误", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "ghost@example.com", "passw0rd1")
		assert.ErrorIs(t, err, ErrInvalidPassword)
	})
}
