package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"salesapi/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler(nil))
	return router
}

func TestErrorHandler_DomainError(t *testing.T) {
	router := newRouter()
	router.GET("/boom", func(c *gin.Context) {
		c.Error(apperror.NotFound("Vendor with name ghost not found!"))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Vendor with name ghost not found!"}`, w.Body.String())
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	router := newRouter()
	router.GET("/boom", func(c *gin.Context) {
		c.Error(fmt.Errorf("listing vendors: %w", apperror.BadRequest("Page and limit must be positive integers.")))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Page and limit must be positive integers."}`, w.Body.String())
}

func TestErrorHandler_UnknownErrorIsOpaque500(t *testing.T) {
	router := newRouter()
	router.GET("/boom", func(c *gin.Context) {
		c.Error(errors.New("pq: connection reset by peer"))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// internal detail must not leak
	assert.JSONEq(t, `{"message":"Internal server error."}`, w.Body.String())
}

func TestErrorHandler_NoErrorPassesThrough(t *testing.T) {
	router := newRouter()
	router.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"OK"}`, w.Body.String())
}
