package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/linkward/internal/models"
	"github.com/fsdevblog/linkward/internal/services"

	"github.com/gin-gonic/gin"
)

type LinkManager interface {
	Create(ctx context.Context, params services.CreateLinkParams) (*models.Link, error)
	List(ctx context.Context, owner string) ([]models.Link, error)
	GetByShortLink(ctx context.Context, shortLink string) (*models.Link, error)
	GetByOwnerShortLink(ctx context.Context, owner, shortLink string) (*models.Link, error)
	Update(ctx context.Context, owner, shortLink string, upd services.LinkUpdate) (*models.Link, error)
	Delete(ctx context.Context, owner, shortLink string) error
	AppendClick(ctx context.Context, shortLink string, click models.Click) ([]models.Click, error)
}

type LinkController struct {
	linkService LinkManager
}

func NewLinkController(linkService LinkManager) *LinkController {
	return &LinkController{linkService: linkService}
}

type createLinkRequest struct {
	OriginalLink string     `json:"original_link" binding:"required"`
	Remarks      string     `json:"remarks"`
	ExpiryDate   *time.Time `json:"expiry_date"`
	Owner        string     `json:"owner" binding:"required"`
}

// CreateLink создает короткую ссылку для владельца.
func (l *LinkController) CreateLink(ctx *gin.Context) {
	var req createLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if _, parseErr := validateURL(req.OriginalLink); parseErr != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": parseErr.Error()})
		return
	}

	link, createErr := l.linkService.Create(ctx.Request.Context(), services.CreateLinkParams{
		OriginalLink: req.OriginalLink,
		Remarks:      req.Remarks,
		ExpiryDate:   req.ExpiryDate,
		Owner:        req.Owner,
	})
	if createErr != nil {
		_ = ctx.Error(createErr)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": ErrInternal.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message":    "Link created successfully",
		"short_link": link.ShortLink,
	})
}

// ListLinks возвращает ссылки владельца из query-параметра username,
// либо все ссылки если параметр не задан.
func (l *LinkController) ListLinks(ctx *gin.Context) {
	owner := ctx.Query("username")

	links, err := l.linkService.List(ctx.Request.Context(), owner)
	if err != nil {
		_ = ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": ErrInternal.Error()})
		return
	}
	if links == nil {
		links = []models.Link{}
	}

	ctx.JSON(http.StatusOK, links)
}

// GetLink отдает ссылку по короткому идентификатору.
// Параметр маршрута называется owner из-за общего префикса с двухсегментным
// маршрутом /link/:owner/:hash, но содержит hash.
func (l *LinkController) GetLink(ctx *gin.Context) {
	hash := ctx.Param("owner")

	link, err := l.linkService.GetByShortLink(ctx.Request.Context(), hash)
	if err != nil {
		l.respondLinkError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, link)
}

// GetOwnerLink отдает ссылку по паре (owner, hash).
func (l *LinkController) GetOwnerLink(ctx *gin.Context) {
	owner := ctx.Param("owner")
	hash := ctx.Param("hash")

	link, err := l.linkService.GetByOwnerShortLink(ctx.Request.Context(), owner, hash)
	if err != nil {
		l.respondLinkError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, link)
}

type editLinkRequest struct {
	OriginalLink *string    `json:"original_link"`
	Remarks      *string    `json:"remarks"`
	ExpiryDate   *time.Time `json:"expiry_date"`
}

// EditLink применяет частичное обновление к ссылке (owner, hash).
func (l *LinkController) EditLink(ctx *gin.Context) {
	owner := ctx.Param("owner")
	hash := ctx.Param("hash")

	var req editLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link, err := l.linkService.Update(ctx.Request.Context(), owner, hash, services.LinkUpdate{
		OriginalLink: req.OriginalLink,
		Remarks:      req.Remarks,
		ExpiryDate:   req.ExpiryDate,
	})
	if err != nil {
		l.respondLinkError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, link)
}

func (l *LinkController) DeleteLink(ctx *gin.Context) {
	owner := ctx.Param("owner")
	hash := ctx.Param("hash")

	if err := l.linkService.Delete(ctx.Request.Context(), owner, hash); err != nil {
		l.respondLinkError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Link deleted successfully"})
}

type clickData struct {
	IPAddr     string `json:"ip_addr" binding:"required"`
	UserDevice string `json:"user_device" binding:"required"`
}

type editClickRequest struct {
	ClickData clickData `json:"clickData" binding:"required"`
}

// EditClick дописывает клик к ссылке и возвращает полную последовательность
// кликов после записи.
func (l *LinkController) EditClick(ctx *gin.Context) {
	shortLink := ctx.Param("short_link")

	var req editClickRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	clicks, err := l.linkService.AppendClick(ctx.Request.Context(), shortLink, models.Click{
		IPAddr:     req.ClickData.IPAddr,
		UserDevice: req.ClickData.UserDevice,
	})
	if err != nil {
		l.respondLinkError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Click data added successfully",
		"clicks":  clicks,
	})
}

func (l *LinkController) respondLinkError(ctx *gin.Context, err error) {
	if errors.Is(err, services.ErrRecordNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": ErrLinkNotFound.Error()})
		return
	}
	_ = ctx.Error(err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": ErrInternal.Error()})
}
