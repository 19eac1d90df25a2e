package shared

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/graylake-dev/postureguard/utils"
	"github.com/labstack/echo/v4"
)

// ListOptions bounds list queries. Limit is capped at 100 so a single request
// can never drag the whole table over the wire.
type ListOptions struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func (l ListOptions) ApplyOnDB(db DB) DB {
	return db.Limit(l.Limit).Offset(l.Offset)
}

func GetListOptions(ctx Context) ListOptions {
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))
	switch {
	case limit > 100:
		limit = 100
	case limit <= 0:
		limit = 50
	}

	offset, _ := strconv.Atoi(ctx.QueryParam("offset"))
	if offset < 0 {
		offset = 0
	}

	return ListOptions{
		Limit:  limit,
		Offset: offset,
	}
}

// GetParamID parses a numeric path parameter.
func GetParamID(ctx Context, param string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(400, fmt.Sprintf("invalid %s", param)).WithInternal(err)
	}
	return uint(id), nil
}

type SortQuery struct {
	Field    string
	Operator string // asc or desc
}

// GetSortQuery collects query params of the form sort[field]=asc|desc.
func GetSortQuery(ctx Context) []SortQuery {
	query := ctx.QueryParams()
	sortQuerys := []SortQuery{}
	for key := range query {
		if !strings.HasPrefix(key, "sort") {
			continue
		}

		operator := query.Get(key)
		// the key looks like this: sort[risk_score]=desc
		key = strings.TrimPrefix(key, "sort")
		field := strings.Split(key, "[")[1]
		field = strings.TrimSuffix(field, "]")

		sortQuerys = append(sortQuerys, SortQuery{
			Field:    field,
			Operator: operator,
		})
	}

	return sortQuerys
}

func quoteFields(field string) string {
	split := strings.Split(field, ".")
	quotedSplits := utils.Map(
		split,
		func(s string) string {
			return fmt.Sprintf(`"%s"`, s)
		},
	)

	return strings.Join(quotedSplits, ".")
}

// Regular expression to validate field names
var validFieldNameRegex = regexp.MustCompile("^[a-zA-Z0-9_.]+$")

func sanitizeField(field string) string {
	if !validFieldNameRegex.MatchString(field) {
		panic("invalid field name - to risky, might be sql injection")
	}

	return quoteFields(field)
}

func (s SortQuery) SQL() string {
	if !validFieldNameRegex.MatchString(s.Field) {
		panic("invalid field name - to risky, might be sql injection")
	}

	field := sanitizeField(s.Field)

	switch s.Operator {
	case "asc":
		return field + " asc"
	case "desc":
		return field + " desc NULLS LAST"
	default:
		return s.Field + " asc NULLS LAST"
	}
}
