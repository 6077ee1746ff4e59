package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"jobboard-service/internal/domain"
)

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}

// pathID parses a positive integer path parameter; anything else is treated
// as an unknown resource.
func pathID(c echo.Context, name, notFound string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, domain.NotFound(notFound)
	}
	return uint(id), nil
}

// queryInt falls back to zero on a malformed value so paging defaults apply.
func queryInt(c echo.Context, name string) int {
	n, err := strconv.Atoi(strings.TrimSpace(c.QueryParam(name)))
	if err != nil {
		return 0
	}
	return n
}

func queryList(c echo.Context, name string) []string {
	return c.QueryParams()[name]
}
