package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestParsePagination_Clamping(t *testing.T) {
	cases := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 10},
		{"explicit", "page=3&limit=25", 3, 25},
		{"zero page", "page=0", 1, 10},
		{"negative page", "page=-2", 1, 10},
		{"zero limit", "limit=0", 1, 10},
		{"negative limit", "limit=-5", 1, 1},
		{"limit over max", "limit=500", 1, 100},
		{"limit at max", "limit=100", 1, 100},
		{"garbage", "page=abc&limit=xyz", 1, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			var got Pagination
			app.Get("/", func(c *fiber.Ctx) error {
				got = ParsePagination(c)
				return nil
			})

			req := httptest.NewRequest("GET", "/?"+tc.query, nil)
			if _, err := app.Test(req); err != nil {
				t.Fatalf("request: %v", err)
			}

			if got.Page != tc.wantPage || got.Limit != tc.wantLimit {
				t.Fatalf("got page=%d limit=%d, want page=%d limit=%d",
					got.Page, got.Limit, tc.wantPage, tc.wantLimit)
			}
		})
	}
}
