package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yatube/yatube-be/model"
)

// slicePostSource serves a fixed newest-first slice, the way the real sources
// serve ordered query results.
type slicePostSource []*model.Post

func (s slicePostSource) Count(ctx context.Context) (int, error) {
	return len(s), nil
}

func (s slicePostSource) Page(ctx context.Context, limit, offset int) ([]*model.Post, error) {
	if offset >= len(s) {
		return nil, nil
	}
	end := offset + limit
	if end > len(s) {
		end = len(s)
	}
	return s[offset:end], nil
}

func makePosts(n int) slicePostSource {
	posts := make(slicePostSource, n)
	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		posts[i] = &model.Post{
			Id:        int64(n - i),
			Text:      fmt.Sprintf("post %d", n-i),
			Author:    &model.User{Id: 1, Username: "auth"},
			CreatedAt: base.Add(time.Duration(n-i) * time.Minute),
		}
	}
	return posts
}

func TestPaginateSlicesByTen(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		rawNumber  string
		wantNumber int
		wantItems  int
		wantPages  int
	}{
		{"first page full", 29, "1", 1, 10, 3},
		{"middle page full", 29, "2", 2, 10, 3},
		{"last page partial", 29, "3", 3, 9, 3},
		{"exact multiple", 20, "2", 2, 10, 2},
		{"single page", 4, "1", 1, 4, 1},
		{"missing number", 29, "", 1, 10, 3},
		{"non-numeric number", 29, "abc", 1, 10, 3},
		{"beyond last clamps", 29, "7", 3, 9, 3},
		{"zero clamps to last", 29, "0", 3, 9, 3},
		{"negative clamps to last", 29, "-2", 3, 9, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := Paginate(context.Background(), makePosts(tt.total), tt.rawNumber)
			require.NoError(t, err)
			assert.Equal(t, tt.wantNumber, page.Number)
			assert.Equal(t, tt.wantPages, page.NumPages)
			assert.Equal(t, tt.total, page.Total)
			assert.Len(t, page.Items, tt.wantItems)
		})
	}
}

func TestPaginateEmptyCollection(t *testing.T) {
	page, err := Paginate(context.Background(), makePosts(0), "")
	require.NoError(t, err)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.NumPages)
	assert.Empty(t, page.Items)
	assert.True(t, page.OnePage())
}

func TestPaginatePreservesSourceOrder(t *testing.T) {
	page, err := Paginate(context.Background(), makePosts(25), "2")
	require.NoError(t, err)
	for i := 1; i < len(page.Items); i++ {
		previous, current := page.Items[i-1], page.Items[i]
		assert.True(t, previous.CreatedAt.After(current.CreatedAt),
			"post %d should be newer than post %d", previous.Id, current.Id)
	}
}

func TestPageNavigation(t *testing.T) {
	page, err := Paginate(context.Background(), makePosts(29), "2")
	require.NoError(t, err)
	assert.True(t, page.HasPrev())
	assert.True(t, page.HasNext())
	assert.Equal(t, 1, page.PrevNumber())
	assert.Equal(t, 3, page.NextNumber())
	assert.False(t, page.OnePage())
}
