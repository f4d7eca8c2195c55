package controllers

import (
	"net/http"

	"github.com/fsdevblog/linkward/internal/config"
	"github.com/fsdevblog/linkward/internal/controllers/middlewares"
	"github.com/gin-gonic/gin"
)

type RouterParams struct {
	UserService UserManager
	LinkService LinkManager
	AppConf     *config.Config
}

func SetupRouter(params RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware(params.AppConf.Logger))
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.GzipMiddleware())

	userController := NewUserController(params.UserService, []byte(params.AppConf.JWTSecret))
	linkController := NewLinkController(params.LinkService)

	r.GET("/", hello)
	r.GET("/get-ip", getIP)

	r.POST("/register", userController.Register)
	r.POST("/login", userController.Login)
	r.GET("/fetchuser/:username", userController.FetchUser)
	r.PUT("/edituser/:username", userController.EditUser)
	r.DELETE("/deleteuser/:username", userController.DeleteUser)

	r.POST("/createlinks", linkController.CreateLink)
	r.GET("/links", linkController.ListLinks)
	// gin требует одинаковое имя параметра в общей позиции, поэтому
	// односегментный маршрут тоже объявлен через :owner (там это hash)
	r.GET("/link/:owner", linkController.GetLink)
	r.GET("/link/:owner/:hash", linkController.GetOwnerLink)
	r.PUT("/link/:owner/:hash", linkController.EditLink)
	r.DELETE("/link/:owner/:hash", linkController.DeleteLink)
	r.POST("/editclick/:short_link", linkController.EditClick)

	return r
}

func hello(ctx *gin.Context) {
	ctx.String(http.StatusOK, "Hello from the backend!")
}

func getIP(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"ip": clientIP(ctx)})
}
