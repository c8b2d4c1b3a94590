package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"esquadrao_backend/internals/configs"
	"esquadrao_backend/internals/features/auth/dto"
	"esquadrao_backend/internals/features/auth/model"
	helper "esquadrao_backend/internals/helpers"
)

const accessTokenTTL = 12 * time.Hour

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

// 🟢 POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationErrorJSON(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := ctrl.DB.Model(&model.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		log.Printf("[ERROR] Register count: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao verificar email")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email já cadastrado")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao processar senha")
	}

	user := model.UserModel{
		UserName: strings.TrimSpace(req.UserName),
		Email:    email,
		Password: string(hash),
		Role:     "user",
		IsActive: true,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&user).Error; err != nil {
		log.Printf("[ERROR] Register create: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar usuário")
	}

	return helper.JsonCreated(c, "Usuário criado", dto.ToUserResponse(&user))
}

// 🟢 POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationErrorJSON(c, err)
	}

	var user model.UserModel
	err := ctrl.DB.Where("email = ? AND is_active = true", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email ou senha incorretos")
	}
	if err != nil {
		log.Printf("[ERROR] Login find: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar usuário")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email ou senha incorretos")
	}

	return ctrl.issueToken(c, &user)
}

// 🟢 POST /api/auth/google — login com ID token do Google
func (ctrl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationErrorJSON(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email, name, googleID := claimSet.Email, claimSet.Name, claimSet.Sub

	var user model.UserModel
	err = ctrl.DB.Where("google_id = ?", googleID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// primeiro acesso -> cria a conta
		user = model.UserModel{
			UserName: name,
			Email:    strings.ToLower(email),
			Password: uuid.NewString(), // dummy; login só via Google
			GoogleID: &googleID,
			Role:     "user",
			IsActive: true,
		}
		if err := ctrl.DB.WithContext(c.Context()).Create(&user).Error; err != nil {
			log.Printf("[ERROR] GoogleLogin create: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar usuário")
		}
	} else if err != nil {
		log.Printf("[ERROR] GoogleLogin find: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar usuário")
	}

	return ctrl.issueToken(c, &user)
}

// 🟢 POST /api/auth/logout — coloca o token atual na blacklist
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	auth := strings.TrimSpace(c.Get("Authorization"))
	fields := strings.Fields(auth)
	if len(fields) < 2 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token ausente")
	}
	token := fields[1]

	entry := model.TokenBlacklist{
		Token:     token,
		ExpiredAt: time.Now().Add(accessTokenTTL),
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&entry).Error; err != nil {
		log.Printf("[ERROR] Logout blacklist: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao encerrar sessão")
	}
	return helper.JsonOK(c, "Sessão encerrada", nil)
}

func (ctrl *AuthController) issueToken(c *fiber.Ctx, user *model.UserModel) error {
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"name": user.UserName,
		"role": user.Role,
		"exp":  time.Now().Add(accessTokenTTL).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Printf("[ERROR] issueToken sign: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao gerar token")
	}

	return helper.JsonOK(c, "Login realizado", dto.LoginResponse{
		AccessToken: signed,
		User:        dto.ToUserResponse(user),
	})
}
