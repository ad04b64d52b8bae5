package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/account"
	"github.com/ecodeclub/jobboard/internal/dashboard"
	"github.com/ecodeclub/jobboard/internal/pkg/middleware"
	"github.com/ecodeclub/jobboard/internal/recruit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	accountHdl *account.Handler,
	postingHdl *recruit.PostingHandler,
	applicationHdl *recruit.ApplicationHandler,
	dashboardHdl *dashboard.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost")
		},
	}))
	res.Use(middleware.NewMetricsBuilder().Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	accountHdl.PublicRoutes(res.Engine)
	postingHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	accountHdl.PrivateRoutes(res.Engine)
	postingHdl.PrivateRoutes(res.Engine)
	applicationHdl.PrivateRoutes(res.Engine)
	dashboardHdl.PrivateRoutes(res.Engine)
	return res
}
