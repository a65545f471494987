package app

import (
	"context"
	"strconv"
	"strings"

	"github.com/yatube/yatube-be/model"
)

// PageSize is fixed across every feed.
const PageSize = 10

// PostSource is a counted, newest-first collection of posts. Implementations
// must order by descending creation time; pagination only slices.
type PostSource interface {
	Count(ctx context.Context) (int, error)
	Page(ctx context.Context, limit, offset int) ([]*model.Post, error)
}

type Page struct {
	Items    []*model.Post
	Number   int
	NumPages int
	Total    int
}

func (p *Page) HasNext() bool {
	return p.Number < p.NumPages
}

func (p *Page) HasPrev() bool {
	return p.Number > 1
}

func (p *Page) NextNumber() int {
	return p.Number + 1
}

func (p *Page) PrevNumber() int {
	return p.Number - 1
}

// OnePage reports whether the whole collection fits on a single page.
func (p *Page) OnePage() bool {
	return p.NumPages <= 1
}

// Paginate slices src into pages of PageSize and returns the page named by
// rawNumber, an untrusted query parameter. Missing or non-numeric values fall
// back to the first page; out-of-range values (including numbers below 1)
// clamp to the last page. An empty collection yields one empty page.
func Paginate(ctx context.Context, src PostSource, rawNumber string) (*Page, error) {
	total, err := src.Count(ctx)
	if err != nil {
		return nil, err
	}

	numPages := (total + PageSize - 1) / PageSize
	if numPages == 0 {
		numPages = 1
	}
	number := parsePageNumber(rawNumber, numPages)

	items, err := src.Page(ctx, PageSize, (number-1)*PageSize)
	if err != nil {
		return nil, err
	}
	return &Page{
		Items:    items,
		Number:   number,
		NumPages: numPages,
		Total:    total,
	}, nil
}

func parsePageNumber(raw string, numPages int) int {
	number, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 1
	}
	if number < 1 || number > numPages {
		return numPages
	}
	return number
}
