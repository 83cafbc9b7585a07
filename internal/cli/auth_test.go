package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ebalashova/healthapp-cli/internal/models"
	"github.com/ebalashova/healthapp-cli/internal/tokenx"
)

func stubInputs(t *testing.T, answers []string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		a := answers[i]
		i++
		return a, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

type fakeAuth struct {
	// Login
	loginUser   string
	loginPass   []byte
	loginClaims *tokenx.Claims
	loginErr    error

	// Register
	regReq *models.RegisterRequest
	regErr error

	logoutCalled bool
	pingErr      error
}

func (f *fakeAuth) Login(_ context.Context, user string, pass []byte) (*tokenx.Claims, error) {
	f.loginUser, f.loginPass = user, append([]byte(nil), pass...)
	return f.loginClaims, f.loginErr
}
func (f *fakeAuth) Register(_ context.Context, req *models.RegisterRequest) (*models.UserProfile, error) {
	f.regReq = req
	return &models.UserProfile{}, f.regErr
}
func (f *fakeAuth) Ping(ctx context.Context) error  { return f.pingErr }
func (f *fakeAuth) Logout()                         { f.logoutCalled = true }
func (f *fakeAuth) Close(ctx context.Context) error { return nil }

func TestRegister_Success(t *testing.T) {
	f := &fakeAuth{}
	a := &App{authService: f}

	restore := stubInputs(t, []string{"alice", "alice@example.org"}, []byte("secret"))
	defer restore()

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if f.regReq == nil {
		t.Fatal("Register request not sent")
	}
	if f.regReq.Username != "alice" || f.regReq.Email != "alice@example.org" {
		t.Fatalf("Register request mismatch: %+v", f.regReq)
	}
	if f.regReq.Password != "secret" {
		t.Fatalf("Register password mismatch: %q", f.regReq.Password)
	}
}

func TestRegister_ErrorPropagates(t *testing.T) {
	f := &fakeAuth{regErr: errors.New("taken")}
	a := &App{authService: f}

	restore := stubInputs(t, []string{"alice", "alice@example.org"}, []byte("secret"))
	defer restore()

	if err := a.Register(context.Background()); err == nil {
		t.Fatal("want error from Register")
	}
}

func TestLogin_SetsIdentityAndMode(t *testing.T) {
	f := &fakeAuth{
		loginClaims: &tokenx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"},
			UserID:           7,
			Role:             "user",
		},
	}
	a := &App{authService: f}

	restore := stubInputs(t, []string{"alice"}, []byte("secret"))
	defer restore()

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if f.loginUser != "alice" || string(f.loginPass) != "secret" {
		t.Fatalf("credentials mismatch: %q / %q", f.loginUser, f.loginPass)
	}
	if a.userID != 7 || a.userName != "alice" {
		t.Fatalf("identity not set: id=%d name=%q", a.userID, a.userName)
	}
	if a.Mode != ModeOnline {
		t.Fatalf("expected %q mode, got %q", ModeOnline, a.Mode)
	}
}

func TestLogin_ErrorLeavesLoggedOut(t *testing.T) {
	f := &fakeAuth{loginErr: errors.New("bad credentials")}
	a := &App{authService: f}

	restore := stubInputs(t, []string{"alice"}, []byte("wrong"))
	defer restore()

	if err := a.Login(context.Background()); err == nil {
		t.Fatal("want error from Login")
	}
	if a.isLoggedIn() {
		t.Fatal("must not be logged in after a failed login")
	}
}

func TestLogout(t *testing.T) {
	f := &fakeAuth{}
	a := &App{authService: f, userID: 7, userName: "alice"}

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if !f.logoutCalled {
		t.Fatal("AuthService.Logout not called")
	}
	if a.userID != 0 || a.userName != "" {
		t.Fatalf("identity not cleared: id=%d name=%q", a.userID, a.userName)
	}
}
