package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/webprime/internal/store"
)

// recordingHTMLRender captures the template name and data instead of
// executing real templates, which live outside this package.
type recordingHTMLRender struct {
	name string
	data gin.H
}

type recordingHTMLInstance struct {
	render *recordingHTMLRender
}

func (r *recordingHTMLRender) Instance(name string, data interface{}) render.Render {
	r.name = name
	if h, ok := data.(gin.H); ok {
		r.data = h
	}
	return &recordingHTMLInstance{render: r}
}

func (r *recordingHTMLInstance) Render(http.ResponseWriter) error {
	return nil
}

func (r *recordingHTMLInstance) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}

func newTestAPI(t *testing.T) (*API, *store.Store) {
	t.Helper()
	st := store.New()
	st.Seed()
	api := NewAPI(st, Options{
		AdminUsername: "Admin123",
		AdminPassword: "Jhajha123",
		UploadDir:     t.TempDir(),
		UploadURL:     "/static/uploads",
	})
	return api, st
}

func newTestEngine() (*gin.Engine, *recordingHTMLRender) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("webprime_session", cookie.NewStore([]byte("test-secret"))))
	html := &recordingHTMLRender{}
	r.HTMLRender = html
	return r, html
}

func perform(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
