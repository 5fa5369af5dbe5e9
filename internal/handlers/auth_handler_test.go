package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/oficinahub/workshop-scheduler/internal/config"
	"github.com/oficinahub/workshop-scheduler/internal/models"
)

func newAuthTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Workshop{}, &models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	h := NewAuthHandler(db, &config.Config{JWTSecret: "test-secret"})

	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	return r, db
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var resp struct {
		Code string `json:"error_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return resp.Code
}

func TestRegister_DuplicateSlug(t *testing.T) {
	r, db := newAuthTestRouter(t)

	if err := db.Create(&models.Workshop{Name: "Existing", Slug: "oficina-centro"}).Error; err != nil {
		t.Fatalf("seed workshop: %v", err)
	}

	// Slug is normalized before the uniqueness check.
	w := postJSON(t, r, "/api/auth/register", gin.H{
		"workshop_name": "Another",
		"workshop_slug": "Oficina-Centro",
		"name":          "Owner",
		"email":         "owner@example.com",
		"password":      "secret1",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if code := errorCode(t, w); code != "slug_already_exists" {
		t.Fatalf("expected slug_already_exists, got %q", code)
	}

	var count int64
	db.Model(&models.Workshop{}).Count(&count)
	if count != 1 {
		t.Fatalf("rejected registration created a workshop, count %d", count)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	r, db := newAuthTestRouter(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	shop := models.Workshop{Name: "Shop", Slug: "shop"}
	if err := db.Create(&shop).Error; err != nil {
		t.Fatalf("seed workshop: %v", err)
	}
	if err := db.Create(&models.User{
		WorkshopID:   shop.ID,
		Name:         "Owner",
		Email:        "owner@example.com",
		PasswordHash: string(hash),
		Role:         "owner",
	}).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	cases := []struct {
		name  string
		email string
		pass  string
	}{
		{"wrong password", "owner@example.com", "wrong-password"},
		{"unknown email", "nobody@example.com", "right-password"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(t, r, "/api/auth/login", gin.H{
				"email":    tc.email,
				"password": tc.pass,
			})

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
			}
			if code := errorCode(t, w); code != "invalid_credentials" {
				t.Fatalf("expected invalid_credentials, got %q", code)
			}
		})
	}
}

func TestLogin_Succeeds(t *testing.T) {
	r, db := newAuthTestRouter(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	shop := models.Workshop{Name: "Shop", Slug: "shop"}
	if err := db.Create(&shop).Error; err != nil {
		t.Fatalf("seed workshop: %v", err)
	}
	if err := db.Create(&models.User{
		WorkshopID:   shop.ID,
		Name:         "Owner",
		Email:        "owner@example.com",
		PasswordHash: string(hash),
		Role:         "owner",
	}).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	w := postJSON(t, r, "/api/auth/login", gin.H{
		"email":    "Owner@Example.com",
		"password": "right-password",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token    string `json:"token"`
		Workshop struct {
			Slug string `json:"slug"`
		} `json:"workshop"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected a token in the response")
	}
	if resp.Workshop.Slug != "shop" {
		t.Fatalf("expected workshop slug, got %q", resp.Workshop.Slug)
	}
}
