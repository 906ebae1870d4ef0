package endpoints

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/luachboard/luach/internal/dashboard"
	"github.com/luachboard/luach/internal/http/api"
	"github.com/luachboard/luach/internal/http/api/board/packets"
	"github.com/luachboard/luach/internal/view"
)

type BoardController struct {
	dash *dashboard.Dashboard
}

func newBoardController(dash *dashboard.Dashboard) *BoardController {
	return &BoardController{dash: dash}
}

// BoardModule mounts the section fragments and board control endpoints.
func BoardModule(dash *dashboard.Dashboard) api.Module {
	ctl := newBoardController(dash)
	return api.ModuleFunc(func(c *api.Controller) {
		c.RAW_GET("/sections/:name", ctl.getSection)
		c.POST("/refresh", ctl.refreshBoard)
		c.GET("/health", ctl.health)
	})
}

// GET /api/board/sections/:name
func (b *BoardController) getSection(ctx *gin.Context) {
	name := ctx.Param("name")
	container, ok := b.dash.Section(name)
	if !ok {
		ctx.String(http.StatusNotFound, "section not found")
		return
	}

	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(container.HTML()))
}

// POST /api/board/refresh
func (b *BoardController) refreshBoard(ctx *gin.Context) (any, *api.APIError) {
	b.dash.RefreshAll(ctx.Request.Context())
	return packets.RefreshResponse{
		RefreshedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// GET /api/board/health
func (b *BoardController) health(ctx *gin.Context) (any, *api.APIError) {
	return packets.HealthResponse{Status: "ok"}, nil
}

// PageHandler serves the assembled board and fires an async refresh pass,
// so the page a visitor sees is at worst one load stale.
func PageHandler(dash *dashboard.Dashboard) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// detached from the request; the pass outlives the page response
		dash.RefreshAsync(context.Background())

		data := view.PageData{Title: "Jewish Spiritual Companion"}
		for _, name := range dash.SectionNames() {
			container, _ := dash.Section(name)
			data.Sections = append(data.Sections, container.HTML())
		}

		ctx.HTML(http.StatusOK, "board.html", data)
	}
}
