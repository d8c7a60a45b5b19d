package handler

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/webprime/internal/service"
	"github.com/webprime/internal/store"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// renderMarkdown 将 Markdown 渲染为净化后的 HTML
func renderMarkdown(source string) template.HTML {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(source), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}

// ShowHome 渲染首页：英雄区、能力块、精选服务、UGC 精选与口碑。
func (a *API) ShowHome(c *gin.Context) {
	site := a.siteContent.Get()
	a.renderHTML(c, http.StatusOK, "public_home.html", gin.H{
		"title":       "Web Prime AI",
		"site":        site,
		"services":    a.catalog.ListVisible(),
		"featuredAds": a.ugcAds.ListFeatured(),
	})
}

// ShowAbout 渲染关于页
func (a *API) ShowAbout(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "public_about.html", gin.H{
		"title": "About",
	})
}

// ShowServices 渲染服务总览，只含可见项，按展示顺序排列
func (a *API) ShowServices(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "public_services.html", gin.H{
		"title":    "Services",
		"services": a.catalog.ListVisible(),
	})
}

// ShowServiceLanding 按 slug 渲染单个服务的落地页。隐藏的服务
// 不对外提供落地页。
func (a *API) ShowServiceLanding(c *gin.Context) {
	svc, err := a.catalog.GetBySlug(c.Param("slug"))
	if err != nil || svc.Visibility != store.VisibilityShow {
		a.renderNotFound(c)
		return
	}
	a.renderHTML(c, http.StatusOK, "public_service_detail.html", gin.H{
		"title":   svc.Name,
		"service": svc,
	})
}

// ShowPortfolio 渲染案例墙，可选按分类过滤（?category=）
func (a *API) ShowPortfolio(c *gin.Context) {
	category := c.Query("category")
	a.renderHTML(c, http.StatusOK, "public_portfolio.html", gin.H{
		"title":      "Portfolio",
		"projects":   a.portfolio.ListVisible(category),
		"categories": a.portfolio.Categories(),
		"active":     category,
	})
}

// ShowBlog 渲染文章列表，仅含已发布且可见的文章，最新在前
func (a *API) ShowBlog(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "public_blog.html", gin.H{
		"title": "Blog",
		"posts": a.blog.ListPublic(),
	})
}

// ShowBlogPost 渲染文章详情，正文按 Markdown 渲染并净化
func (a *API) ShowBlogPost(c *gin.Context) {
	post, err := a.blog.GetBySlug(c.Param("slug"))
	if err != nil {
		a.renderNotFound(c)
		return
	}
	a.renderHTML(c, http.StatusOK, "public_blog_post.html", gin.H{
		"title":   post.Title,
		"post":    post,
		"content": renderMarkdown(post.Content),
	})
}

// ShowContact 渲染联系页
func (a *API) ShowContact(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "public_contact.html", gin.H{
		"title":    "Contact",
		"services": a.catalog.ListVisible(),
	})
}

// SubmitContact 处理联系表单。缺少必填项时重新渲染并保留已填内容，
// 不落任何状态；成功时渲染确认块。
func (a *API) SubmitContact(c *gin.Context) {
	input := service.LeadInput{
		Name:            c.PostForm("name"),
		Email:           c.PostForm("email"),
		Phone:           c.PostForm("phone"),
		ServiceInterest: c.PostForm("serviceInterest"),
		Message:         c.PostForm("message"),
	}

	if _, err := a.leads.Submit(input); err != nil {
		if errors.Is(err, service.ErrLeadInvalid) {
			a.renderHTML(c, http.StatusBadRequest, "public_contact.html", gin.H{
				"title":    "Contact",
				"services": a.catalog.ListVisible(),
				"error":    "Name, email and message are required.",
				"form":     input,
			})
			return
		}
		a.renderHTML(c, http.StatusInternalServerError, "public_contact.html", gin.H{
			"title":    "Contact",
			"services": a.catalog.ListVisible(),
			"error":    "Something went wrong. Please try again.",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "public_contact.html", gin.H{
		"title":     "Contact",
		"services":  a.catalog.ListVisible(),
		"submitted": true,
	})
}

// renderNotFound 渲染公开站点的 404 页面
func (a *API) renderNotFound(c *gin.Context) {
	a.renderHTML(c, http.StatusNotFound, "public_not_found.html", gin.H{
		"title": "Not Found",
	})
}
