package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/TopUP/blog/internal/core/apperr"
	authEntity "github.com/TopUP/blog/internal/core/auth"
	authapp "github.com/TopUP/blog/internal/core/auth/service"
	categoryPort "github.com/TopUP/blog/internal/ports/category"
	commentPort "github.com/TopUP/blog/internal/ports/comment"
	postPort "github.com/TopUP/blog/internal/ports/post"
	userPort "github.com/TopUP/blog/internal/ports/user"
)

func init() { gin.SetMode(gin.TestMode) }

var testSecret = []byte("test-secret")

type mockAuthUC struct {
	registerFn func(ctx context.Context, fullName, email, password, passwordConfirmation string) (*authapp.TokenDTO, error)
	validateFn func(ctx context.Context, email, password string) (*userPort.UserDTO, error)
	loginFn    func(u *userPort.UserDTO) (*authapp.TokenDTO, error)
}

func (m *mockAuthUC) Register(ctx context.Context, fullName, email, password, passwordConfirmation string) (*authapp.TokenDTO, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, fullName, email, password, passwordConfirmation)
	}
	return &authapp.TokenDTO{AccessToken: "signed"}, nil
}

func (m *mockAuthUC) ValidateCredentials(ctx context.Context, email, password string) (*userPort.UserDTO, error) {
	if m.validateFn != nil {
		return m.validateFn(ctx, email, password)
	}
	return nil, nil
}

func (m *mockAuthUC) Login(u *userPort.UserDTO) (*authapp.TokenDTO, error) {
	if m.loginFn != nil {
		return m.loginFn(u)
	}
	return &authapp.TokenDTO{AccessToken: "signed"}, nil
}

type mockUserUC struct{}

func (m *mockUserUC) Create(ctx context.Context, fullName, email, password string) (*userPort.UserDTO, error) {
	return &userPort.UserDTO{ID: 1, FullName: fullName, Email: email}, nil
}

func (m *mockUserUC) FindAll(ctx context.Context) ([]*userPort.UserDTO, error) { return nil, nil }

func (m *mockUserUC) FindOne(ctx context.Context, id uint) (*userPort.UserDTO, error) {
	return nil, apperr.ErrNotFound
}

func (m *mockUserUC) Update(ctx context.Context, id, callerID uint, in userPort.UpdateUserInput) (*userPort.UserDTO, error) {
	return nil, apperr.ErrNotFound
}

func (m *mockUserUC) Remove(ctx context.Context, id, callerID uint) error { return apperr.ErrNotFound }

type mockCategoryUC struct {
	removeFn func(ctx context.Context, id uint) error
}

func (m *mockCategoryUC) Create(ctx context.Context, title string) (*categoryPort.CategoryDTO, error) {
	return &categoryPort.CategoryDTO{ID: 1, Title: title}, nil
}

func (m *mockCategoryUC) FindAll(ctx context.Context) ([]*categoryPort.CategoryDTO, error) {
	return nil, nil
}

func (m *mockCategoryUC) FindOne(ctx context.Context, id uint) (*categoryPort.CategoryDTO, error) {
	return nil, apperr.ErrNotFound
}

func (m *mockCategoryUC) Update(ctx context.Context, id uint, in categoryPort.UpdateCategoryInput) (*categoryPort.CategoryDTO, error) {
	return nil, apperr.ErrNotFound
}

func (m *mockCategoryUC) Remove(ctx context.Context, id uint) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, id)
	}
	return nil
}

type mockPostUC struct {
	createFn  func(ctx context.Context, in postPort.CreatePostInput) (*postPort.PostDTO, error)
	findOneFn func(ctx context.Context, id uint) (*postPort.PostDTO, error)
}

func (m *mockPostUC) Create(ctx context.Context, in postPort.CreatePostInput) (*postPort.PostDTO, error) {
	if m.createFn != nil {
		return m.createFn(ctx, in)
	}
	return &postPort.PostDTO{ID: 1, Title: in.Title, Body: in.Body, UserID: in.UserID, CategoryID: in.CategoryID}, nil
}

func (m *mockPostUC) FindAll(ctx context.Context) ([]*postPort.PostDTO, error) { return nil, nil }

func (m *mockPostUC) FindOne(ctx context.Context, id uint) (*postPort.PostDTO, error) {
	if m.findOneFn != nil {
		return m.findOneFn(ctx, id)
	}
	return nil, apperr.ErrNotFound
}

func (m *mockPostUC) Update(ctx context.Context, id, callerID uint, in postPort.UpdatePostInput) (*postPort.PostDTO, error) {
	return nil, apperr.ErrNotFound
}

func (m *mockPostUC) Remove(ctx context.Context, id, callerID uint) error { return apperr.ErrNotFound }

type mockCommentUC struct{}

func (m *mockCommentUC) Create(ctx context.Context, in commentPort.CreateCommentInput) (*commentPort.CommentDTO, error) {
	return &commentPort.CommentDTO{ID: 1, Body: in.Body, PostID: in.PostID, UserID: in.UserID}, nil
}

func (m *mockCommentUC) FindAll(ctx context.Context) ([]*commentPort.CommentDTO, error) {
	return nil, nil
}

func (m *mockCommentUC) FindOne(ctx context.Context, id uint) (*commentPort.CommentDTO, error) {
	return nil, apperr.ErrNotFound
}

func (m *mockCommentUC) Update(ctx context.Context, id, callerID uint, body string) (*commentPort.CommentDTO, error) {
	return nil, apperr.ErrNotFound
}

func (m *mockCommentUC) Remove(ctx context.Context, id, callerID uint) error {
	return apperr.ErrNotFound
}

type testApp struct {
	auth     *mockAuthUC
	category *mockCategoryUC
	post     *mockPostUC
	router   *gin.Engine
}

func newTestApp() *testApp {
	app := &testApp{
		auth:     &mockAuthUC{},
		category: &mockCategoryUC{},
		post:     &mockPostUC{},
	}
	app.router = SetupRoutes(app.auth, &mockUserUC{}, app.category, app.post, &mockCommentUC{}, testSecret, zap.NewNop())
	return app
}

func (a *testApp) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func bearerToken(t *testing.T) string {
	t.Helper()
	claims := &authEntity.Claims{
		FullName: "Full Name",
		Email:    "a@b.c",
		ID:       9,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v: %s", err, w.Body.String())
	}
	return body
}

func TestRegister_Success(t *testing.T) {
	app := newTestApp()

	w := app.do(t, http.MethodPost, "/auth/register",
		`{"full_name":"Full Name","email":"a@b.c","password":"pw","password_confirmation":"pw"}`, "")

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["access_token"] != "signed" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestRegister_PasswordMismatchBody(t *testing.T) {
	app := newTestApp()
	app.auth.registerFn = func(ctx context.Context, fullName, email, password, passwordConfirmation string) (*authapp.TokenDTO, error) {
		return nil, apperr.ErrPasswordMismatch
	}

	w := app.do(t, http.MethodPost, "/auth/register",
		`{"full_name":"Full Name","email":"a@b.c","password":"one","password_confirmation":"two"}`, "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	body := decodeBody(t, w)
	messages, ok := body["message"].([]interface{})
	if !ok || len(messages) != 1 || messages[0] != "Password not confirmed" {
		t.Errorf("unexpected message: %v", body["message"])
	}
	if body["error"] != "Bad Request" || body["statusCode"] != float64(400) {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestRegister_ValidationMessages(t *testing.T) {
	app := newTestApp()
	app.auth.registerFn = func(ctx context.Context, fullName, email, password, passwordConfirmation string) (*authapp.TokenDTO, error) {
		t.Error("use case must not run on a binding failure")
		return nil, nil
	}

	w := app.do(t, http.MethodPost, "/auth/register", `{"email":"not-an-email"}`, "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	body := decodeBody(t, w)
	messages, ok := body["message"].([]interface{})
	if !ok || len(messages) == 0 {
		t.Fatalf("expected message array, got %v", body["message"])
	}
	joined := make([]string, 0, len(messages))
	for _, m := range messages {
		joined = append(joined, m.(string))
	}
	all := strings.Join(joined, "; ")
	if !strings.Contains(all, "full_name should not be empty") {
		t.Errorf("missing full_name message: %s", all)
	}
	if !strings.Contains(all, "email must be an email") {
		t.Errorf("missing email message: %s", all)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	app := newTestApp()

	w := app.do(t, http.MethodPost, "/auth/login", `{"email":"a@b.c","password":"wrong"}`, "")

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["message"] != "Unauthorized" || body["statusCode"] != float64(401) {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestLogin_Success(t *testing.T) {
	app := newTestApp()
	app.auth.validateFn = func(ctx context.Context, email, password string) (*userPort.UserDTO, error) {
		return &userPort.UserDTO{ID: 9, FullName: "Full Name", Email: email}, nil
	}

	w := app.do(t, http.MethodPost, "/auth/login", `{"email":"a@b.c","password":"correct"}`, "")

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if decodeBody(t, w)["access_token"] != "signed" {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	app := newTestApp()
	app.post.createFn = func(ctx context.Context, in postPort.CreatePostInput) (*postPort.PostDTO, error) {
		t.Error("use case must not run without a token")
		return nil, nil
	}

	w := app.do(t, http.MethodPost, "/post", `{"title":"T","body":"B","categoryId":1}`, "")

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if decodeBody(t, w)["message"] != "Unauthorized" {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestPostCreate_OwnerFromToken(t *testing.T) {
	app := newTestApp()
	var gotOwner uint
	app.post.createFn = func(ctx context.Context, in postPort.CreatePostInput) (*postPort.PostDTO, error) {
		gotOwner = in.UserID
		return &postPort.PostDTO{ID: 1, Title: in.Title, Body: in.Body, UserID: in.UserID, CategoryID: in.CategoryID}, nil
	}

	w := app.do(t, http.MethodPost, "/post", `{"title":"T","body":"B","categoryId":2}`, bearerToken(t))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if gotOwner != 9 {
		t.Errorf("expected owner from the token (9), got %d", gotOwner)
	}
}

func TestCategoryRemove_HasPosts(t *testing.T) {
	app := newTestApp()
	app.category.removeFn = func(ctx context.Context, id uint) error {
		return apperr.ErrCategoryHasPosts
	}

	w := app.do(t, http.MethodDelete, "/category/1", "", bearerToken(t))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	body := decodeBody(t, w)
	messages, ok := body["message"].([]interface{})
	if !ok || len(messages) != 1 || messages[0] != "Category has posts" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}

func TestCategoryRemove_Success(t *testing.T) {
	app := newTestApp()

	w := app.do(t, http.MethodDelete, "/category/1", "", bearerToken(t))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("expected empty body, got %s", w.Body.String())
	}
}

func TestGetPost_NotFoundBody(t *testing.T) {
	app := newTestApp()

	w := app.do(t, http.MethodGet, "/post/999", "", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	body := decodeBody(t, w)
	messages, ok := body["message"].([]interface{})
	if !ok || len(messages) != 1 || messages[0] != "Entity not found" {
		t.Errorf("unexpected message: %v", body["message"])
	}
	if body["error"] != "Not Found" || body["statusCode"] != float64(404) {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestGetPost_NonNumericID(t *testing.T) {
	app := newTestApp()
	app.post.findOneFn = func(ctx context.Context, id uint) (*postPort.PostDTO, error) {
		t.Error("use case must not run for a non-numeric id")
		return nil, nil
	}

	w := app.do(t, http.MethodGet, "/post/abc", "", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	body := decodeBody(t, w)
	messages, ok := body["message"].([]interface{})
	if !ok || len(messages) != 1 || messages[0] != "Validation failed (numeric string is expected)" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}
