package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/webprime/internal/service"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

func parseIndexParam(c *gin.Context, key string) (int, bool) {
	raw := c.Param(key)
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 {
		respondError(c, http.StatusBadRequest, "invalid "+key)
		return 0, false
	}
	return idx, true
}

// respondEditorError maps the engine's contract errors onto HTTP codes.
// Session violations are caller bugs surfaced as conflicts; they are
// never retried and never mutate state.
func respondEditorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRecordNotFound):
		respondError(c, http.StatusNotFound, "record not found")
	case errors.Is(err, service.ErrUnknownKind):
		respondError(c, http.StatusBadRequest, "unknown collection")
	case errors.Is(err, service.ErrSessionActive):
		respondError(c, http.StatusConflict, "an edit session is already in progress")
	case errors.Is(err, service.ErrNoActiveSession):
		respondError(c, http.StatusConflict, "no active edit session")
	case errors.Is(err, service.ErrKindMismatch):
		respondError(c, http.StatusConflict, "patch does not match the active draft")
	case errors.Is(err, service.ErrIndexOutOfRange):
		respondError(c, http.StatusBadRequest, "list index out of range")
	default:
		respondError(c, http.StatusInternalServerError, "operation failed")
	}
}
