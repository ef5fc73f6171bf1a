package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/menu-catalog-service/internal/service"
)

// queryParser collects parse failures across several query parameters so
// the client gets all of them in one 400.
type queryParser struct {
	fields []service.FieldError
}

func (q *queryParser) intOr(c *gin.Context, name string, def int) int {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		q.fields = append(q.fields, service.FieldError{Field: name, Message: "must be an integer"})
		return def
	}
	return v
}

func (q *queryParser) requiredInt(c *gin.Context, name string) int {
	if raw, ok := c.GetQuery(name); !ok || raw == "" {
		q.fields = append(q.fields, service.FieldError{Field: name, Message: "is required"})
		return 0
	}
	return q.intOr(c, name, 0)
}

func (q *queryParser) err() error {
	return service.NewInvalidInputError(q.fields...)
}

// pathCode reads the :code path parameter. field names it in the error.
func pathCode(c *gin.Context, field string) (int64, error) {
	code, err := strconv.ParseInt(c.Param("code"), 10, 64)
	if err != nil {
		return 0, service.NewInvalidInputError(service.FieldError{Field: field, Message: "must be an integer"})
	}
	return code, nil
}

func formatCode(code int64) string { return strconv.FormatInt(code, 10) }

func malformedBody() error {
	return service.NewInvalidInputError(service.FieldError{Field: "body", Message: "malformed JSON"})
}
