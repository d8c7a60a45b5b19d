package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/webprime/internal/store"
)

func siteContentRouter(api *API) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/admin/api/site-content")
	g.GET("", api.GetSiteContent)
	g.PATCH("/landing", api.UpdateLandingContent)
	g.PATCH("/about", api.UpdateAboutContent)
	g.PATCH("/footer", api.UpdateFooterContent)
	g.POST("/team", api.AddTeamMember)
	g.PATCH("/team/:id", api.UpdateTeamMember)
	g.DELETE("/team/:id", api.RemoveTeamMember)
	return r
}

func TestUpdateLandingEndpoint(t *testing.T) {
	api, st := newTestAPI(t)
	r := siteContentRouter(api)

	w := perform(r, jsonReq(http.MethodPatch, "/admin/api/site-content/landing", `{"heroHeadline":"New Hook"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if st.SiteContent().Landing.HeroHeadline != "New Hook" {
		t.Fatal("patch did not reach the store")
	}
	if st.SiteContent().Landing.HeroSubheadline == "" {
		t.Fatal("untouched fields must survive")
	}
}

func TestUpdateFooterSocials(t *testing.T) {
	api, st := newTestAPI(t)
	r := siteContentRouter(api)

	w := perform(r, jsonReq(http.MethodPatch, "/admin/api/site-content/footer", `{"email":"new@webprimeai.com","linkedin":"https://linkedin.com/company/webprime"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	doc := st.SiteContent()
	if doc.Footer.Email != "new@webprimeai.com" {
		t.Fatalf("email = %s", doc.Footer.Email)
	}
	if doc.Footer.Socials.LinkedIn != "https://linkedin.com/company/webprime" {
		t.Fatalf("linkedin = %s", doc.Footer.Socials.LinkedIn)
	}
}

func TestTeamEndpoints(t *testing.T) {
	api, st := newTestAPI(t)
	r := siteContentRouter(api)

	w := perform(r, jsonReq(http.MethodPost, "/admin/api/site-content/team", ""))
	if w.Code != http.StatusOK {
		t.Fatalf("add status = %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		MemberID string            `json:"memberId"`
		Site     store.SiteContent `json:"site"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.MemberID == "" {
		t.Fatalf("add response = %s", w.Body.String())
	}

	w = perform(r, jsonReq(http.MethodPatch, "/admin/api/site-content/team/"+resp.MemberID, `{"name":"Kabir"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", w.Code, w.Body.String())
	}

	w = perform(r, jsonReq(http.MethodPatch, "/admin/api/site-content/team/ghost", `{"name":"x"}`))
	if w.Code != http.StatusNotFound {
		t.Fatalf("update ghost status = %d, want 404", w.Code)
	}

	w = perform(r, jsonReq(http.MethodDelete, "/admin/api/site-content/team/"+resp.MemberID, ""))
	if w.Code != http.StatusOK {
		t.Fatalf("remove status = %d", w.Code)
	}
	for _, m := range st.SiteContent().About.Team {
		if m.ID == resp.MemberID {
			t.Fatal("member still present after remove")
		}
	}
}
