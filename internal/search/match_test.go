package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Guyuepp/blog-comments/internal/search"
)

type row struct {
	ID      int64
	Comment string
	Author  string
}

func rowID(r row) int64 { return r.ID }

var (
	byComment = search.Field[row](func(r row) string { return r.Comment })
	byAuthor  = search.Field[row](func(r row) string { return r.Author })
)

func TestFilterSingleField(t *testing.T) {
	data := []row{{ID: 1, Comment: "Hello world"}, {ID: 2, Comment: "Goodbye"}}

	got := search.Filter(data, rowID, "hello", search.IContains, byComment)
	assert.Equal(t, []row{data[0]}, got)
}

func TestFilterEmptyTermDeduplicates(t *testing.T) {
	data := []row{{ID: 1}, {ID: 2}, {ID: 1}}

	got := search.Filter(data, rowID, "", search.IContains, byComment)
	assert.Equal(t, []row{{ID: 1}, {ID: 2}}, got)
}

func TestFilterNoFieldsMatchesNothing(t *testing.T) {
	data := []row{{ID: 1, Comment: "hello"}}

	assert.Empty(t, search.Filter(data, rowID, "hello", search.IContains))
	assert.Len(t, search.Filter(data, rowID, "", search.IContains), 1)
}

func TestFilterAnyField(t *testing.T) {
	data := []row{
		{ID: 1, Comment: "first", Author: "bob"},
		{ID: 2, Comment: "about bob", Author: "alice"},
		{ID: 2, Comment: "about bob", Author: "carol"},
		{ID: 3, Comment: "third", Author: "dave"},
	}

	got := search.Filter(data, rowID, "BOB", "", byComment, byAuthor)
	assert.Equal(t, []row{data[0], data[1]}, got)
}
