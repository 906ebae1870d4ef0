package main

import (
	"html/template"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/luachboard/luach/internal/dashboard"
	"github.com/luachboard/luach/internal/http/api"
	boardapi "github.com/luachboard/luach/internal/http/api/board/endpoints"
	"github.com/luachboard/luach/internal/http/middleware"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, dash *dashboard.Dashboard, tmpl *template.Template) {
	r.SetHTMLTemplate(tmpl)

	r.Use(middleware.RequestLogger())

	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/board",
	},
		boardapi.BoardModule(dash),
	)

	r.GET("/", boardapi.PageHandler(dash))
}
