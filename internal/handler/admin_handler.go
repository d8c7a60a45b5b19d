package handler

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const sessionUserKey = "admin_user"

// ShowLoginPage 渲染登录页面
func (a *API) ShowLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.html", gin.H{
		"title": "Admin Login",
	})
}

// Login 处理管理员登录请求
func (a *API) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if username != a.adminUsername {
		c.HTML(http.StatusUnauthorized, "admin_login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid credentials. Access denied.",
		})
		return
	}

	// 验证密码
	if err := bcrypt.CompareHashAndPassword(a.adminPasswordHash, []byte(password)); err != nil {
		c.HTML(http.StatusUnauthorized, "admin_login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid credentials. Access denied.",
		})
		return
	}

	// 设置会话
	session := sessions.Default(c)
	session.Set(sessionUserKey, username)
	if err := session.Save(); err != nil {
		c.HTML(http.StatusInternalServerError, "admin_login.html", gin.H{
			"title": "Admin Login",
			"error": "Could not persist the session. Try again.",
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Logout 清除会话并返回公开站点
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	// 任何未提交的草稿随会话一起作废
	a.editor.Discard()
	c.Redirect(http.StatusFound, "/")
}

// AuthRequired 是后台路由的认证中间件。页面请求重定向到登录页，
// JSON API 请求返回 401。
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(sessionUserKey) == nil {
			if wantsJSON(c) {
				respondError(c, http.StatusUnauthorized, "authentication required")
			} else {
				c.Redirect(http.StatusFound, "/admin/login")
			}
			c.Abort()
			return
		}
		c.Next()
	}
}

func wantsJSON(c *gin.Context) bool {
	return strings.HasPrefix(c.Request.URL.Path, "/admin/api")
}

// ShowDashboard 渲染后台主面板
func (a *API) ShowDashboard(c *gin.Context) {
	session := sessions.Default(c)
	username := session.Get(sessionUserKey)

	a.renderHTML(c, http.StatusOK, "admin_dashboard.html", gin.H{
		"title":        "Dashboard",
		"username":     username,
		"serviceCount": len(a.catalog.ListAll()),
		"postCount":    len(a.blog.ListAll()),
		"projectCount": len(a.portfolio.ListAll()),
		"ugcAdCount":   len(a.ugcAds.ListAll()),
		"leadCount":    a.store.LeadCount(),
	})
}

// ShowServiceRegistry 渲染服务管理列表，含隐藏项
func (a *API) ShowServiceRegistry(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "admin_services.html", gin.H{
		"title":    "Services",
		"services": a.catalog.ListAll(),
	})
}

// ShowPostRegistry 渲染文章管理列表，含草稿与隐藏项
func (a *API) ShowPostRegistry(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "admin_posts.html", gin.H{
		"title": "Blog Posts",
		"posts": a.blog.ListAll(),
	})
}

// ShowProjectRegistry 渲染案例管理列表
func (a *API) ShowProjectRegistry(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "admin_projects.html", gin.H{
		"title":    "Portfolio",
		"projects": a.portfolio.ListAll(),
	})
}

// ShowUgcAdRegistry 渲染 UGC 素材管理列表
func (a *API) ShowUgcAdRegistry(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "admin_ugc_ads.html", gin.H{
		"title":  "UGC Ads",
		"ugcAds": a.ugcAds.ListAll(),
	})
}

// ShowSiteContentPage 渲染全站文案设置页
func (a *API) ShowSiteContentPage(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "admin_site_content.html", gin.H{
		"title": "Site Content",
	})
}

// ShowLeadInbox 渲染询盘收件箱
func (a *API) ShowLeadInbox(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "admin_leads.html", gin.H{
		"title": "Leads",
		"leads": a.leads.List(),
	})
}
