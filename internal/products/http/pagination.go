package http

import (
	"strconv"

	"product-catalog/internal/products"

	"github.com/gin-gonic/gin"
)

func newListResponse(c *gin.Context, page products.Page) listProductsResponse {
	items := page.Items
	if items == nil {
		items = []products.Product{}
	}

	totalPages := 1
	if page.Limit > 0 && page.Total > 0 {
		totalPages = int((page.Total + int64(page.Limit) - 1) / int64(page.Limit))
	}

	resp := listProductsResponse{
		Status:      statusSuccess,
		Payload:     items,
		TotalDocs:   page.Total,
		TotalPages:  totalPages,
		Page:        page.Page,
		Limit:       page.Limit,
		HasPrevPage: page.Page > 1,
		HasNextPage: page.Page < totalPages,
	}
	// An empty page reports status "error".
	if len(items) == 0 {
		resp.Status = statusError
	}
	if resp.HasPrevPage {
		prev := page.Page - 1
		resp.PrevPage = &prev
		resp.PrevLink = pageLink(c, prev)
	}
	if resp.HasNextPage {
		next := page.Page + 1
		resp.NextPage = &next
		resp.NextLink = pageLink(c, next)
	}
	return resp
}

// pageLink is the current request URI with the page query parameter replaced.
func pageLink(c *gin.Context, page int) *string {
	u := *c.Request.URL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	link := u.RequestURI()
	return &link
}
