package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/webprime/internal/service"
)

// 编辑器 API：后台 UI 通过这些 JSON 端点驱动唯一的编辑会话。
// 所有草稿操作只改缓冲区，提交前集合不受影响。

// GetEditorState 返回当前会话快照
func (a *API) GetEditorState(c *gin.Context) {
	c.JSON(http.StatusOK, a.editor.State())
}

// BeginEditorSession 开启创建或编辑会话。带 id 为编辑，不带为创建。
func (a *API) BeginEditorSession(c *gin.Context) {
	kind, err := service.ParseKind(c.Param("kind"))
	if err != nil {
		respondEditorError(c, err)
		return
	}

	var state service.EditorState
	if id := c.Param("id"); id != "" {
		state, err = a.editor.BeginEdit(kind, id)
	} else {
		state, err = a.editor.BeginCreate(kind)
	}
	if err != nil {
		respondEditorError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// PatchEditorBuffer 向当前草稿合并部分更新。kind 必须与会话一致。
func (a *API) PatchEditorBuffer(c *gin.Context) {
	kind, err := service.ParseKind(c.Param("kind"))
	if err != nil {
		respondEditorError(c, err)
		return
	}

	var state service.EditorState
	switch kind {
	case service.KindServices:
		var p service.ServicePatch
		if !bindJSON(c, &p, "invalid service patch") {
			return
		}
		state, err = a.editor.PatchService(p)
	case service.KindPosts:
		var p service.PostPatch
		if !bindJSON(c, &p, "invalid post patch") {
			return
		}
		state, err = a.editor.PatchPost(p)
	case service.KindProjects:
		var p service.ProjectPatch
		if !bindJSON(c, &p, "invalid project patch") {
			return
		}
		state, err = a.editor.PatchProject(p)
	case service.KindUgcAds:
		var p service.UgcAdPatch
		if !bindJSON(c, &p, "invalid ugc ad patch") {
			return
		}
		state, err = a.editor.PatchUgcAd(p)
	}
	if err != nil {
		respondEditorError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// CommitEditorSession 将草稿写回集合并结束会话
func (a *API) CommitEditorSession(c *gin.Context) {
	id, err := a.editor.Commit()
	if err != nil {
		respondEditorError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// DiscardEditorSession 丢弃草稿。空闲时调用也是安全的。
func (a *API) DiscardEditorSession(c *gin.Context) {
	a.editor.Discard()
	c.JSON(http.StatusOK, gin.H{"mode": service.ModeIdle})
}

// ListCollection 返回某个集合的全部记录，供后台注册表使用
func (a *API) ListCollection(c *gin.Context) {
	kind, err := service.ParseKind(c.Param("kind"))
	if err != nil {
		respondEditorError(c, err)
		return
	}
	switch kind {
	case service.KindServices:
		c.JSON(http.StatusOK, a.catalog.ListAll())
	case service.KindPosts:
		c.JSON(http.StatusOK, a.blog.ListAll())
	case service.KindProjects:
		c.JSON(http.StatusOK, a.portfolio.ListAll())
	case service.KindUgcAds:
		c.JSON(http.StatusOK, a.ugcAds.ListAll())
	}
}

// RemoveRecord 直接从集合删除记录。删除是幂等的：重复删除同一 id
// 仍返回成功。
func (a *API) RemoveRecord(c *gin.Context) {
	kind, err := service.ParseKind(c.Param("kind"))
	if err != nil {
		respondEditorError(c, err)
		return
	}
	id := c.Param("id")
	switch kind {
	case service.KindServices:
		a.catalog.Remove(id)
	case service.KindPosts:
		a.blog.Remove(id)
	case service.KindProjects:
		a.portfolio.Remove(id)
	case service.KindUgcAds:
		a.ugcAds.Remove(id)
	}
	c.JSON(http.StatusOK, gin.H{"removed": id})
}

// ReorderService 上移或下移服务的展示顺序。越界移动是无害的空操作。
func (a *API) ReorderService(c *gin.Context) {
	var body struct {
		Direction string `json:"direction"`
	}
	if !bindJSON(c, &body, "invalid reorder request") {
		return
	}
	dir, err := service.ParseDirection(body.Direction)
	if err != nil {
		respondError(c, http.StatusBadRequest, "direction must be up or down")
		return
	}
	a.catalog.Reorder(c.Param("id"), dir)
	c.JSON(http.StatusOK, a.catalog.ListAll())
}
