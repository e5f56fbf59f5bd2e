package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/dinaskp/perikanan-backend/internal/domain"
)

func TestActor_CapturesHeadersAndTransportFacts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var got domain.ActorContext
	engine := gin.New()
	engine.Use(Actor())
	engine.PUT("/api/v1/komoditas/1", func(c *gin.Context) {
		got = GetActor(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("PUT", "/api/v1/komoditas/1", nil)
	req.Header.Set("X-User-Id", "7")
	req.Header.Set("X-User-Name", "admin dinas")
	engine.ServeHTTP(httptest.NewRecorder(), req)

	if got.UserID != "7" || got.UserName != "admin dinas" {
		t.Errorf("identity not captured: %+v", got)
	}
	if got.Method != "PUT" || got.Path != "/api/v1/komoditas/1" {
		t.Errorf("transport facts wrong: %+v", got)
	}
}

func TestGetActor_FallbackWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("DELETE", "/api/v1/role/3", nil)

	got := GetActor(c)
	if got.Method != "DELETE" || got.Path != "/api/v1/role/3" {
		t.Errorf("fallback missing transport facts: %+v", got)
	}
	if got.UserID != "" {
		t.Errorf("fallback must not invent an identity: %+v", got)
	}
}
