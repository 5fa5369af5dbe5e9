package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/oficinahub/workshop-scheduler/internal/config"
	"github.com/oficinahub/workshop-scheduler/internal/httperr"
	"github.com/oficinahub/workshop-scheduler/internal/httpresp"
	"github.com/oficinahub/workshop-scheduler/internal/models"
	"github.com/oficinahub/workshop-scheduler/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	WorkshopName    string `json:"workshop_name" binding:"required"`
	WorkshopSlug    string `json:"workshop_slug" binding:"required"`
	WorkshopPhone   string `json:"workshop_phone"`
	WorkshopAddress string `json:"workshop_address"`

	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	user, shop, err := h.register(req)
	if err != nil {
		mapAuthError(c, err)
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Failed to generate token.")
		return
	}

	c.JSON(http.StatusCreated, authResponse(user, shop, token))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	user, err := h.authenticate(req)
	if err != nil {
		mapAuthError(c, err)
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Failed to generate token.")
		return
	}

	httpresp.OK(c, authResponse(user, &user.Workshop, token))
}

// --------- Business rules ---------

// register creates the workshop and its owner account. Rule violations come
// back as BusinessError codes so the handler can map them without string
// matching on messages.
func (h *AuthHandler) register(req RegisterRequest) (*models.User, *models.Workshop, error) {
	slug := strings.ToLower(strings.TrimSpace(req.WorkshopSlug))

	var count int64
	if err := h.db.Model(&models.Workshop{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return nil, nil, err
	}
	if count > 0 {
		return nil, nil, httperr.ErrBusiness("slug_already_exists")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		return nil, nil, httperr.ErrBusiness("invalid_email_domain")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	shop := models.Workshop{
		Name:    req.WorkshopName,
		Slug:    slug,
		Phone:   req.WorkshopPhone,
		Address: req.WorkshopAddress,
	}
	if err := h.db.Create(&shop).Error; err != nil {
		return nil, nil, err
	}

	user := models.User{
		WorkshopID:   shop.ID,
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         "owner",
	}
	if err := h.db.Create(&user).Error; err != nil {
		return nil, nil, err
	}

	return &user, &shop, nil
}

// authenticate never distinguishes an unknown email from a wrong password.
func (h *AuthHandler) authenticate(req LoginRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Preload("Workshop").
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusiness("invalid_credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	return &user, nil
}

func mapAuthError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "slug_already_exists"):
		httperr.BadRequest(c, "slug_already_exists", "Workshop slug already in use.")
	case httperr.IsBusiness(err, "invalid_email_domain"):
		httperr.BadRequest(c, "invalid_email_domain", "The e-mail domain does not look valid.")
	case httperr.IsBusiness(err, "invalid_credentials"):
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
	default:
		httperr.Internal(c, "auth_failed", "Failed to process request.")
	}
}

func authResponse(user *models.User, shop *models.Workshop, token string) gin.H {
	return gin.H{
		"user": gin.H{
			"id":          user.ID,
			"name":        user.Name,
			"email":       user.Email,
			"phone":       user.Phone,
			"workshop_id": user.WorkshopID,
		},
		"workshop": gin.H{
			"id":      shop.ID,
			"name":    shop.Name,
			"slug":    shop.Slug,
			"phone":   shop.Phone,
			"address": shop.Address,
		},
		"token": token,
	}
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":        user.ID,
		"workshopId": user.WorkshopID,
		"role":       user.Role,
		"exp":        time.Now().Add(24 * time.Hour).Unix(),
		"iat":        time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
