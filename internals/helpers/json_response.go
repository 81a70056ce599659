package helper

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Success envelopes
=================================*/

type successBody struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

func JsonOK(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(successBody{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func JsonCreated(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(successBody{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func JsonUpdated(c *fiber.Ctx, message string, data interface{}) error {
	return JsonOK(c, message, data)
}

func JsonDeleted(c *fiber.Ctx, message string) error {
	return JsonOK(c, message, nil)
}

func JsonList(c *fiber.Ctx, message string, data interface{}, p Pagination) error {
	return c.Status(fiber.StatusOK).JSON(successBody{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: &p,
	})
}

/* ===============================
   Pagination
=================================*/

// Pagination is the list-response metadata block.
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// Paging carries the resolved query-side values for a list request.
type Paging struct {
	Page    int
	PerPage int
	Offset  int
	Limit   int
}

// ResolvePaging reads page/per_page from the query string and clamps them.
// Out-of-range or garbage values fall back to defaults instead of erroring.
func ResolvePaging(c *fiber.Ctx, defaultPerPage, maxPerPage int) Paging {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(c.Query("per_page", strconv.Itoa(defaultPerPage)))
	if err != nil || perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return Paging{
		Page:    page,
		PerPage: perPage,
		Offset:  (page - 1) * perPage,
		Limit:   perPage,
	}
}

// BuildPagination computes the metadata block from a resolved Paging plus the
// total row count.
func BuildPagination(pg Paging, total int64) Pagination {
	totalPages := 0
	if pg.PerPage > 0 {
		totalPages = int((total + int64(pg.PerPage) - 1) / int64(pg.PerPage))
	}
	return Pagination{
		Page:       pg.Page,
		PerPage:    pg.PerPage,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    pg.Page < totalPages,
		HasPrev:    pg.Page > 1 && total > 0,
	}
}
