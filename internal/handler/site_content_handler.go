package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/webprime/internal/service"
)

// 全站文案是单例文档，设置表单直接落库，没有编辑缓冲。

// GetSiteContent 返回完整文档
func (a *API) GetSiteContent(c *gin.Context) {
	c.JSON(http.StatusOK, a.siteContent.Get())
}

// UpdateLandingContent 更新首页文案
func (a *API) UpdateLandingContent(c *gin.Context) {
	var p service.LandingPatch
	if !bindJSON(c, &p, "invalid landing patch") {
		return
	}
	c.JSON(http.StatusOK, a.siteContent.UpdateLanding(p))
}

// UpdateAboutContent 更新关于页文案
func (a *API) UpdateAboutContent(c *gin.Context) {
	var p service.AboutPatch
	if !bindJSON(c, &p, "invalid about patch") {
		return
	}
	c.JSON(http.StatusOK, a.siteContent.UpdateAbout(p))
}

// UpdateFooterContent 更新页脚文案
func (a *API) UpdateFooterContent(c *gin.Context) {
	var p service.FooterPatch
	if !bindJSON(c, &p, "invalid footer patch") {
		return
	}
	c.JSON(http.StatusOK, a.siteContent.UpdateFooter(p))
}

// AddTeamMember 追加一个默认成员并返回其 id
func (a *API) AddTeamMember(c *gin.Context) {
	doc, id := a.siteContent.AddTeamMember()
	c.JSON(http.StatusOK, gin.H{"memberId": id, "site": doc})
}

// UpdateTeamMember 按 id 更新成员信息
func (a *API) UpdateTeamMember(c *gin.Context) {
	var p service.TeamMemberPatch
	if !bindJSON(c, &p, "invalid team member patch") {
		return
	}
	doc, err := a.siteContent.UpdateTeamMember(c.Param("id"), p)
	if err != nil {
		respondEditorError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// RemoveTeamMember 按 id 删除成员。删除是幂等的。
func (a *API) RemoveTeamMember(c *gin.Context) {
	c.JSON(http.StatusOK, a.siteContent.RemoveTeamMember(c.Param("id")))
}

// ListLeads 返回询盘收件箱，最新在前
func (a *API) ListLeads(c *gin.Context) {
	c.JSON(http.StatusOK, a.leads.List())
}
