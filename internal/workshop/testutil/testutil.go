package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/robomate/servicedesk/internal/middleware"
	"github.com/robomate/servicedesk/internal/shared/generator"
	"github.com/robomate/servicedesk/internal/workshop/repository"
)

const JWTSecret = "servicedesk-test-secret-key"

// SetupRepos builds the repository set over an in-memory document
// store, seeded the same way a first boot seeds a real store.
func SetupRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	repos := repository.NewRepositories(repository.NewMemoryDocumentStore())
	if err := repos.Init(context.Background()); err != nil {
		t.Fatalf("Failed to init repositories: %v", err)
	}
	return repos
}

// SetupRouter creates a gin test router
func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	return r
}

// AuthGroup creates an API group with JWT auth middleware for testing
func AuthGroup(r *gin.Engine, path string) *gin.RouterGroup {
	return r.Group(path, middleware.JWTAuth(JWTSecret))
}

// GenerateTestToken creates a valid JWT token for testing
func GenerateTestToken(email, name string, admin bool) string {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   email,
		"email": email,
		"name":  name,
		"admin": admin,
		"iss":   "robomate-servicedesk",
		"iat":   now.Unix(),
		"exp":   now.Add(24 * time.Hour).Unix(),
		"jti":   fmt.Sprintf("test-jti-%d", now.UnixNano()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString([]byte(JWTSecret))
	return tokenString
}

// AdminTestToken returns a token for the bootstrap administrator
func AdminTestToken() string {
	return GenerateTestToken(repository.BootstrapAdminEmail, "Jeff", true)
}

// TechTestToken returns a token for a regular technician
func TechTestToken() string {
	return GenerateTestToken("sam@robomate.co.nz", "Sam", false)
}

// DoRequest executes an HTTP request against the test router
func DoRequest(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ParseResponse parses the JSON response body into a map
func ParseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var result map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}

// StubGenerator is a canned text generator for tests. Set Err to make
// every call fail, exercising the fallback paths.
type StubGenerator struct {
	QuoteText  string
	Report     generator.ReportText
	Err        error
	QuoteCalls  int
	ReportCalls int
}

func (g *StubGenerator) GenerateQuote(ctx context.Context, payload *generator.QuotePayload) (string, error) {
	g.QuoteCalls++
	if g.Err != nil {
		return "", g.Err
	}
	return g.QuoteText, nil
}

func (g *StubGenerator) GenerateReport(ctx context.Context, payload *generator.ReportPayload) (*generator.ReportText, error) {
	g.ReportCalls++
	if g.Err != nil {
		return nil, g.Err
	}
	report := g.Report
	return &report, nil
}
