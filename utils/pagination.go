package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/inmobiliaria-ica/api-go/config"
	"gorm.io/gorm"
)

// Paginate runs a page-number query over the prepared GORM query and wraps
// the result slice in the {count, next, previous, results} envelope the
// frontend expects. Page size is fixed (PAGE_SIZE, default 10).
func Paginate(c *gin.Context, query *gorm.DB, out interface{}) (gin.H, error) {
	page := pageNumber(c)
	size := config.PageSize()

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, err
	}

	if err := query.Offset((page - 1) * size).Limit(size).Find(out).Error; err != nil {
		return nil, err
	}

	return gin.H{
		"count":    count,
		"next":     pageURL(c, page+1, int64(page*size) < count),
		"previous": pageURL(c, page-1, page > 1),
		"results":  out,
	}, nil
}

func pageNumber(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// pageURL rebuilds the request URL with the given page number, or nil when
// the page does not exist.
func pageURL(c *gin.Context, page int, exists bool) interface{} {
	if !exists {
		return nil
	}
	u := *c.Request.URL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String()
}
