package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func uploadRouter(api *API) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admin/api/uploads", api.UploadImage)
	return r
}

func multipartImage(t *testing.T, field, filename, contentType string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	part.Write([]byte("fake image bytes"))
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/admin/api/uploads", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUploadImageSavesFile(t *testing.T) {
	api, _ := newTestAPI(t)
	r := uploadRouter(api)

	w := perform(r, multipartImage(t, "image", "hero.png", "image/png"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Success int `json:"success"`
		Data    struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Success != 1 {
		t.Fatalf("upload response = %s", w.Body.String())
	}
	if !strings.HasSuffix(resp.Data.URL, ".png") {
		t.Fatalf("url = %s, want original extension kept", resp.Data.URL)
	}

	name := filepath.Base(resp.Data.URL)
	if _, err := os.Stat(filepath.Join(api.uploadDir, name)); err != nil {
		t.Fatalf("saved file missing: %v", err)
	}
}

func TestUploadRejectsNonImage(t *testing.T) {
	api, _ := newTestAPI(t)
	r := uploadRouter(api)

	w := perform(r, multipartImage(t, "image", "notes.txt", "text/plain"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUploadRequiresFileField(t *testing.T) {
	api, _ := newTestAPI(t)
	r := uploadRouter(api)

	w := perform(r, multipartImage(t, "file", "hero.png", "image/png"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
