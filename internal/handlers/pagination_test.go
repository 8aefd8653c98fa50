package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func ctxWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return c
}

func TestPaginateSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, total := PaginateSlice(ctxWithQuery("page=1&pageSize=2"), items)
	assert.Equal(t, int64(5), total)
	assert.Equal(t, []int{1, 2}, page)

	page, _ = PaginateSlice(ctxWithQuery("page=3&pageSize=2"), items)
	assert.Equal(t, []int{5}, page)

	// За пределами последней страницы — пустой срез, не паника.
	page, _ = PaginateSlice(ctxWithQuery("page=99&pageSize=2"), items)
	assert.Empty(t, page)

	// Без параметров действует размер по умолчанию.
	page, _ = PaginateSlice(ctxWithQuery(""), items)
	assert.Len(t, page, 5)
}

func TestCreatePaginatedResponse(t *testing.T) {
	resp := CreatePaginatedResponse(ctxWithQuery("page=2&pageSize=10"), []string{"a"}, 25)
	assert.Equal(t, int64(25), resp.TotalRows)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, 2, resp.CurrentPage)
	assert.Equal(t, 10, resp.PageSize)
}
