package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/webprime/internal/service"
	"github.com/webprime/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	store       *store.Store
	catalog     *service.ServiceCatalogService
	blog        *service.BlogService
	portfolio   *service.PortfolioService
	ugcAds      *service.UgcAdService
	siteContent *service.SiteContentService
	leads       *service.LeadService
	editor      *service.EditorService
	consultant  *service.ConsultantService

	adminUsername     string
	adminPasswordHash []byte
	uploadDir         string
	uploadURL         string
}

// Options carries the configuration handlers need.
type Options struct {
	AdminUsername string
	AdminPassword string
	GeminiAPIKey  string
	UploadDir     string
	UploadURL     string
}

// NewAPI constructs a handler set with shared services. The admin
// password is only ever held as a bcrypt hash.
func NewAPI(st *store.Store, opts Options) *API {
	hash, _ := bcrypt.GenerateFromPassword([]byte(opts.AdminPassword), bcrypt.DefaultCost)

	return &API{
		store:             st,
		catalog:           service.NewServiceCatalogService(st),
		blog:              service.NewBlogService(st),
		portfolio:         service.NewPortfolioService(st),
		ugcAds:            service.NewUgcAdService(st),
		siteContent:       service.NewSiteContentService(st),
		leads:             service.NewLeadService(st),
		editor:            service.NewEditorService(st),
		consultant:        service.NewConsultantService(opts.GeminiAPIKey),
		adminUsername:     opts.AdminUsername,
		adminPasswordHash: hash,
		uploadDir:         opts.UploadDir,
		uploadURL:         opts.UploadURL,
	}
}

// Consultant exposes the AI client so main can apply endpoint overrides.
func (a *API) Consultant() *service.ConsultantService {
	return a.consultant
}

// renderHTML 渲染模板时自动附加全站文案与导航数据。
func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}
	if _, exists := payload["site"]; !exists {
		payload["site"] = a.siteContent.Get()
	}
	if _, exists := payload["navServices"]; !exists {
		payload["navServices"] = a.catalog.ListVisible()
	}
	if _, exists := payload["year"]; !exists {
		payload["year"] = time.Now().Year()
	}
	c.HTML(status, template, payload)
}
