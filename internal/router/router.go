package router

import (
	"html/template"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/webprime/internal/handler"
)

// Options 控制路由装配时的外部差异。
type Options struct {
	SessionSecret string
	TemplateGlob  string
	StaticDir     string
}

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, opts Options) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	secret := opts.SessionSecret
	if secret == "" {
		secret = "webprime-dev-secret"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("webprime_session", store))

	// 加载模板并添加自定义函数
	r.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
	})
	glob := opts.TemplateGlob
	if glob == "" {
		glob = "web/template/*.html"
	}
	r.LoadHTMLGlob(glob)

	// 静态文件服务
	static := opts.StaticDir
	if static == "" {
		static = "./web/static"
	}
	r.Static("/static", static)

	// 公开站点
	r.GET("/", api.ShowHome)
	r.GET("/about", api.ShowAbout)
	r.GET("/services", api.ShowServices)
	r.GET("/services/:slug", api.ShowServiceLanding)
	r.GET("/portfolio", api.ShowPortfolio)
	r.GET("/blog", api.ShowBlog)
	r.GET("/blog/:slug", api.ShowBlogPost)
	r.GET("/contact", api.ShowContact)
	r.POST("/contact", api.SubmitContact)

	// 咨询组件
	r.POST("/api/consultant", api.ConsultantChat)

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.GET("/login", api.ShowLoginPage)
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		// 需要认证的后台路由
		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/dashboard", api.ShowDashboard)
			auth.GET("/services", api.ShowServiceRegistry)
			auth.GET("/posts", api.ShowPostRegistry)
			auth.GET("/projects", api.ShowProjectRegistry)
			auth.GET("/ugc-ads", api.ShowUgcAdRegistry)
			auth.GET("/site-content", api.ShowSiteContentPage)
			auth.GET("/leads", api.ShowLeadInbox)

			// API路由
			apiGroup := auth.Group("/api")
			{
				// 编辑会话
				editor := apiGroup.Group("/editor")
				{
					editor.GET("", api.GetEditorState)
					editor.DELETE("", api.DiscardEditorSession)
					editor.POST("/commit", api.CommitEditorSession)
					editor.POST("/begin/:kind", api.BeginEditorSession)
					editor.POST("/begin/:kind/:id", api.BeginEditorSession)
					editor.PATCH("/buffer/:kind", api.PatchEditorBuffer)

					editor.POST("/features", api.AddFeature)
					editor.PATCH("/features/:index", api.UpdateFeature)
					editor.DELETE("/features/:index", api.RemoveFeature)
					editor.POST("/features/:index/move", api.MoveFeature)

					editor.POST("/process-steps", api.AddProcessStep)
					editor.PATCH("/process-steps/:index", api.UpdateProcessStep)
					editor.DELETE("/process-steps/:index", api.RemoveProcessStep)

					editor.POST("/faqs", api.AddFAQ)
					editor.PATCH("/faqs/:index", api.UpdateFAQ)
					editor.DELETE("/faqs/:index", api.RemoveFAQ)

					editor.POST("/plans", api.AddPricingPlan)
					editor.PATCH("/plans/:planId", api.UpdatePricingPlan)
					editor.DELETE("/plans/:planId", api.RemovePricingPlan)
					editor.POST("/plans/:planId/move", api.MovePricingPlan)
					editor.POST("/plans/:planId/benefits", api.AddPlanBenefit)
					editor.PATCH("/plans/:planId/benefits/:index", api.UpdatePlanBenefit)
					editor.DELETE("/plans/:planId/benefits/:index", api.RemovePlanBenefit)
				}

				// 集合注册表与直接删除
				apiGroup.GET("/collections/:kind", api.ListCollection)
				apiGroup.DELETE("/collections/:kind/:id", api.RemoveRecord)
				apiGroup.POST("/services/:id/reorder", api.ReorderService)

				// 全站文案
				content := apiGroup.Group("/site-content")
				{
					content.GET("", api.GetSiteContent)
					content.PATCH("/landing", api.UpdateLandingContent)
					content.PATCH("/about", api.UpdateAboutContent)
					content.PATCH("/footer", api.UpdateFooterContent)
					content.POST("/team", api.AddTeamMember)
					content.PATCH("/team/:id", api.UpdateTeamMember)
					content.DELETE("/team/:id", api.RemoveTeamMember)
				}

				apiGroup.GET("/leads", api.ListLeads)
				apiGroup.POST("/uploads", api.UploadImage)
			}
		}
	}

	return r
}
