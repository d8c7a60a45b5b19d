package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/webprime/internal/service"
)

// 嵌套列表端点：只在服务草稿内操作，提交前不落库。

// AddFeature 追加一个空的能力块
func (a *API) AddFeature(c *gin.Context) {
	state, err := a.editor.AddFeature()
	if err != nil {
		respondEditorError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// UpdateFeature 按下标更新能力块
func (a *API) UpdateFeature(c *gin.Context) {
	i, ok := parseIndexParam(c, "index")
	if !ok {
		return
	}
	var p service.FeaturePatch
	if !bindJSON(c, &p, "invalid feature patch") {
		return
	}
	state, err := a.editor.UpdateFeature(i, p)
	if err != nil {
		respondEditorError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// RemoveFeature 按下标删除能力块
func (a *API) RemoveFeature(c *gin.Context) {
	i, ok := parseIndexParam(c, "index")
	if !ok {
		return
	}
	state, err := a.editor.RemoveFeature(i)
	if err != nil {
		respondEditorError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// MoveFeature 与相邻项交换位置。越过边界是空操作。
func (a *API) MoveFeature(c *gin.Context) {
	i, ok := parseIndexParam(c, "index")
	if !ok {
		return
	}
	dir, ok := bindDirection(c)
	if !ok {
		return
	}
	state, err := a.editor.MoveFeature(i, dir)
	if err != nil {
		respondEditorError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// AddProcessStep 追加一个按序号命名的流程节点
func (a *API) AddProcessStep(c *gin.Context) {
	state, err := a.editor.AddProcessStep()
	if err != nil {
		respondEditorError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// UpdateProcessStep 按下标更新流程节点
func (a *API) UpdateProcessStep(c *gin.Context) {
	i, ok := parseIndexParam(c, "index")
	if !ok {
		return
	}
	var p service.ProcessStepPatch
	if !bindJSON(c, &p, "invalid process step patch") {
		return
	}
	state, err := a.editor.UpdateProcessStep(i, p)
	if err != nil {
		respondEditorError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// RemoveProcessStep 按下标删除流程节点
func (a *API) RemoveProcessStep(c *gin.Context) {
	i, ok := parseIndexParam(c, "index")
	if !ok {
		return
	}
	state, err := a.editor.RemoveProcessStep(i)
	if err != nil {
		respondEditorError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// AddFAQ 追加一个空的问答对
func (a *API) AddFAQ(c *gin.Context) {
	state, err := a.editor.AddFAQ()
	if err != nil {
		respondEditorError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// UpdateFAQ 按下标更新问答对
func (a *API) UpdateFAQ(c *gin.Context) {
	i, ok := parseIndexParam(c, "index")
	if !ok {
		return
	}
	var p service.FAQPatch
	if !bindJSON(c, &p, "invalid faq patch") {
		return
	}
	state, err := a.editor.UpdateFAQ(i, p)
	if err != nil {
		respondEditorError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// RemoveFAQ 按下标删除问答对
func (a *API) RemoveFAQ(c *gin.Context) {
	i, ok := parseIndexParam(c, "index")
	if !ok {
		return
	}
	state, err := a.editor.RemoveFAQ(i)
	if err != nil {
		respondEditorError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// AddPricingPlan 追加一个默认档位并返回其 id
func (a *API) AddPricingPlan(c *gin.Context) {
	state, id, err := a.editor.AddPricingPlan()
	if err != nil {
		respondEditorError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"planId": id, "state": state})
}

// UpdatePricingPlan 按 id 更新档位
func (a *API) UpdatePricingPlan(c *gin.Context) {
	var p service.PricingPlanPatch
	if !bindJSON(c, &p, "invalid pricing plan patch") {
		return
	}
	state, err := a.editor.UpdatePricingPlan(c.Param("planId"), p)
	if err != nil {
		respondEditorError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// RemovePricingPlan 按 id 删除档位
func (a *API) RemovePricingPlan(c *gin.Context) {
	state, err := a.editor.RemovePricingPlan(c.Param("planId"))
	if err != nil {
		respondEditorError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// MovePricingPlan 与相邻档位交换位置
func (a *API) MovePricingPlan(c *gin.Context) {
	dir, ok := bindDirection(c)
	if !ok {
		return
	}
	state, err := a.editor.MovePricingPlan(c.Param("planId"), dir)
	if err != nil {
		respondEditorError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// AddPlanBenefit 向档位追加一条默认卖点
func (a *API) AddPlanBenefit(c *gin.Context) {
	state, err := a.editor.AddPlanBenefit(c.Param("planId"))
	if err != nil {
		respondEditorError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// UpdatePlanBenefit 重写档位中指定下标的卖点
func (a *API) UpdatePlanBenefit(c *gin.Context) {
	i, ok := parseIndexParam(c, "index")
	if !ok {
		return
	}
	var body struct {
		Text string `json:"text"`
	}
	if !bindJSON(c, &body, "invalid benefit text") {
		return
	}
	state, err := a.editor.UpdatePlanBenefit(c.Param("planId"), i, body.Text)
	if err != nil {
		respondEditorError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// RemovePlanBenefit 删除档位中指定下标的卖点
func (a *API) RemovePlanBenefit(c *gin.Context) {
	i, ok := parseIndexParam(c, "index")
	if !ok {
		return
	}
	state, err := a.editor.RemovePlanBenefit(c.Param("planId"), i)
	if err != nil {
		respondEditorError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func bindDirection(c *gin.Context) (service.Direction, bool) {
	var body struct {
		Direction string `json:"direction"`
	}
	if !bindJSON(c, &body, "invalid move request") {
		return "", false
	}
	dir, err := service.ParseDirection(body.Direction)
	if err != nil {
		respondError(c, http.StatusBadRequest, "direction must be up or down")
		return "", false
	}
	return dir, true
}
