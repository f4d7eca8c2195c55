package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fsdevblog/linkward/internal/models"
	"github.com/fsdevblog/linkward/internal/services"
	"github.com/fsdevblog/linkward/internal/tokens"

	"github.com/gin-gonic/gin"
)

// SessionTokenTTL срок действия сессионного токена.
const SessionTokenTTL = 24 * time.Hour

type UserManager interface {
	Register(ctx context.Context, params services.RegisterParams) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, username string, upd services.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, username string) error
}

type UserController struct {
	userService UserManager
	jwtSecret   []byte
}

func NewUserController(userService UserManager, jwtSecret []byte) *UserController {
	return &UserController{
		userService: userService,
		jwtSecret:   jwtSecret,
	}
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	PhoneNo  string `json:"phoneno"`
	Password string `json:"password" binding:"required"`
}

func (u *UserController) Register(ctx *gin.Context) {
	var req registerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := u.userService.Register(ctx.Request.Context(), services.RegisterParams{
		Username: req.Username,
		Email:    req.Email,
		PhoneNo:  req.PhoneNo,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicateKey) {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("%s or %s already exists", req.Username, req.Email),
			})
			return
		}
		_ = ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": ErrInternal.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login проверяет учетные данные и выдает подписанный сессионный токен.
// Отсутствие пользователя и неверный пароль дают одинаковый ответ.
func (u *UserController) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, authErr := u.userService.Authenticate(ctx.Request.Context(), req.Username, req.Password)
	if authErr != nil {
		if errors.Is(authErr, services.ErrInvalidCredentials) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": ErrInvalidCredentials.Error()})
			return
		}
		_ = ctx.Error(authErr)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": ErrInternal.Error()})
		return
	}

	token, tokenErr := tokens.GenerateSessionJWT(user.ID, SessionTokenTTL, u.jwtSecret)
	if tokenErr != nil {
		_ = ctx.Error(tokenErr)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": ErrInternal.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token": token})
}

func (u *UserController) FetchUser(ctx *gin.Context) {
	username := ctx.Param("username")

	user, err := u.userService.GetByUsername(ctx.Request.Context(), username)
	if err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": ErrUserNotFound.Error()})
			return
		}
		_ = ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": ErrInternal.Error()})
		return
	}

	ctx.JSON(http.StatusOK, user)
}

type editUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email" binding:"omitempty,email"`
	PhoneNo  *string `json:"phoneno"`
	Password *string `json:"password"`
}

// EditUser применяет частичное обновление профиля. Смена username каскадно
// переписывает owner на всех ссылках пользователя.
func (u *UserController) EditUser(ctx *gin.Context) {
	username := ctx.Param("username")

	var req editUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := u.userService.Update(ctx.Request.Context(), username, services.UserUpdate{
		Username: req.Username,
		Email:    req.Email,
		PhoneNo:  req.PhoneNo,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateKey):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": ErrUserOrEmailTaken.Error()})
		case errors.Is(err, services.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("%s not found", username)})
		default:
			_ = ctx.Error(err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": ErrInternal.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// DeleteUser удаляет аккаунт и каскадно все ссылки пользователя.
func (u *UserController) DeleteUser(ctx *gin.Context) {
	username := ctx.Param("username")

	if err := u.userService.Delete(ctx.Request.Context(), username); err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": ErrUserNotFound.Error()})
			return
		}
		_ = ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": ErrInternal.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "User and associated links deleted successfully"})
}
