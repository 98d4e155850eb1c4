package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDefaults(t *testing.T) {
	p := Parse(url.Values{})

	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)
	assert.Equal(t, "", p.Sort)
	assert.Equal(t, "asc", p.Order)
	assert.Equal(t, "", p.Search)
}

func TestParseValues(t *testing.T) {
	v := url.Values{}
	v.Set("page", "3")
	v.Set("limit", "50")
	v.Set("sort", "created_at")
	v.Set("order", "DESC")
	v.Set("search", "  smith ")

	p := Parse(v)

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 50, p.Limit)
	assert.Equal(t, "created_at", p.Sort)
	assert.Equal(t, "desc", p.Order)
	assert.Equal(t, "smith", p.Search)
	assert.Equal(t, 100, p.Offset())
}

func TestParseClampsLimit(t *testing.T) {
	v := url.Values{}
	v.Set("limit", "9999")
	assert.Equal(t, MaxLimit, Parse(v).Limit)

	v.Set("limit", "-5")
	assert.Equal(t, DefaultLimit, Parse(v).Limit)

	v.Set("page", "0")
	assert.Equal(t, DefaultPage, Parse(v).Page)
}

func TestParseRejectsUnsafeSort(t *testing.T) {
	v := url.Values{}
	v.Set("sort", "name; DROP TABLE users")
	assert.Equal(t, "", Parse(v).Sort)

	v.Set("sort", "full_name")
	assert.Equal(t, "full_name", Parse(v).Sort)

	v.Set("sort", "users.email")
	assert.Equal(t, "users.email", Parse(v).Sort)
}

func TestOrderClause(t *testing.T) {
	p := Params{Sort: "email", Order: "desc"}
	assert.Equal(t, "email desc", p.OrderClause("created_at"))

	p = Params{Order: "asc"}
	assert.Equal(t, "created_at asc", p.OrderClause("created_at"))

	p = Params{Order: "asc"}
	assert.Equal(t, "", p.OrderClause(""))
}

func TestSearchPattern(t *testing.T) {
	assert.Equal(t, "", Params{}.SearchPattern())
	assert.Equal(t, "%ann%", Params{Search: "ann"}.SearchPattern())
}
