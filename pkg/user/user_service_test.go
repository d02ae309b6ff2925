package user

import (
	"Pick-My-Dish/domain"
	"Pick-My-Dish/entities"
	"Pick-My-Dish/internal/testutil"
	"Pick-My-Dish/pkg/jwt"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	to  []string
	err error
}

func (m *recordingMailer) SendMail(toEmail, _, _ string) error {
	m.to = append(m.to, toEmail)
	return m.err
}

func newService(t *testing.T, mailer *recordingMailer) (UserService, UserRepository) {
	t.Helper()
	repo := NewUserRepository(testutil.NewDB(t))
	var svc UserService
	if mailer != nil {
		svc = NewUserService(repo, jwt.NewJWTService("secret", "TEST"), mailer, "http://localhost")
	} else {
		svc = NewUserService(repo, jwt.NewJWTService("secret", "TEST"), nil, "http://localhost")
	}
	return svc, repo
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newService(t, nil)
	ctx := context.Background()

	id, err := svc.Register(ctx, domain.RegisterRequest{Username: "kyn", Email: "kyn@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotZero(t, id)

	_, err = svc.Register(ctx, domain.RegisterRequest{Username: "other", Email: "KYN@example.com ", Password: "secret2"})
	assert.ErrorIs(t, err, domain.ErrDuplicateUser)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _ := newService(t, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterRequest{Username: "kyn", Email: "a@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, domain.RegisterRequest{Username: "kyn", Email: "b@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrDuplicateUser)
}

func TestRegister_StoresHashNotPlaintext(t *testing.T) {
	svc, repo := newService(t, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterRequest{Username: "kyn", Email: "kyn@example.com", Password: "secret1"})
	require.NoError(t, err)

	stored, err := repo.GetUserByEmail(ctx, "kyn@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.True(t, CheckPasswordHash("secret1", stored.PasswordHash))
}

func TestRegister_WelcomeMailFailureIsNotFatal(t *testing.T) {
	mailer := &recordingMailer{err: errors.New("smtp down")}
	svc, _ := newService(t, mailer)

	_, err := svc.Register(context.Background(), domain.RegisterRequest{Username: "kyn", Email: "kyn@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"kyn@example.com"}, mailer.to)
}

func TestLogin(t *testing.T) {
	svc, _ := newService(t, nil)
	ctx := context.Background()

	id, err := svc.Register(ctx, domain.RegisterRequest{Username: "kyn", Email: "kyn@example.com", Password: "secret1"})
	require.NoError(t, err)

	res, err := svc.Login(ctx, domain.LoginRequest{Email: "kyn@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, id, res.User.ID)
	assert.Equal(t, "kyn", res.User.Username)
	assert.NotEmpty(t, res.Token)

	for _, req := range []domain.LoginRequest{
		{Email: "kyn@example.com", Password: "wrong"},
		{Email: "nobody@example.com", Password: "secret1"},
	} {
		res, err := svc.Login(ctx, req)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Equal(t, domain.LoginResponse{}, res)
	}
}

func TestUpdateUsername(t *testing.T) {
	svc, repo := newService(t, nil)
	ctx := context.Background()

	id, err := svc.Register(ctx, domain.RegisterRequest{Username: "kyn", Email: "kyn@example.com", Password: "secret1"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, domain.RegisterRequest{Username: "taken", Email: "t@example.com", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateUsername(ctx, id, "chef_kyn"))
	got, err := repo.GetUserByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "chef_kyn", got.Username)

	assert.ErrorIs(t, svc.UpdateUsername(ctx, id, "taken"), domain.ErrDuplicateUser)
	assert.ErrorIs(t, svc.UpdateUsername(ctx, 9999, "ghost"), domain.ErrUserNotFound)
}

func TestMe(t *testing.T) {
	svc, repo := newService(t, nil)
	ctx := context.Background()

	name := "Kyn Marshall"
	user := &entities.User{Username: "kyn", Email: "kyn@example.com", PasswordHash: "x", FullName: &name}
	require.NoError(t, repo.CreateUser(ctx, user))

	me, err := svc.Me(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, &name, me.FullName)

	_, err = svc.Me(ctx, 9999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
