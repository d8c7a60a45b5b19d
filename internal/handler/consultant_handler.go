package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/webprime/internal/service"
)

// ConsultantChat 代理咨询组件的对话请求。模型调用失败时返回固定的
// 兜底话术，状态码仍是 200，保证前端聊天窗不中断。
func (a *API) ConsultantChat(c *gin.Context) {
	var body struct {
		Message string `json:"message"`
	}
	if !bindJSON(c, &body, "invalid chat request") {
		return
	}

	prompt := strings.TrimSpace(body.Message)
	if prompt == "" {
		respondError(c, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := a.consultant.GenerateReply(c.Request.Context(), prompt)
	if err != nil {
		log.Printf("consultant reply failed: %v", err)
		c.JSON(http.StatusOK, gin.H{"reply": service.FallbackReply})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
