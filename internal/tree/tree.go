// Package tree turns the flat comment list of an article into nested
// comment nodes.
//
// Every function expects the parent links to form a forest. A comment that
// is its own ancestor makes the recursion unbounded; callers are expected to
// hand in well formed data.
package tree

import "github.com/Guyuepp/blog-comments/domain"

// NewNode copies c into a node with no children.
func NewNode(c *domain.Comment) *domain.CommentNode {
	return &domain.CommentNode{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		Text:      c.Text,
		ParentID:  c.ParentID,
		Level:     c.Level,
		IsRoot:    c.IsRoot,
		UserID:    c.UserID,
		CreateDt:  c.CreateDt,
		Children:  []*domain.CommentNode{},
	}
}

// Seed returns a bare node carrying only id, ready to be passed to
// FindChildren.
func Seed(id int64) *domain.CommentNode {
	return &domain.CommentNode{ID: id, Children: []*domain.CommentNode{}}
}

// FindChildren appends to parent.Children every item whose ParentID equals
// parent.ID, in items order, and recurses into each appended node with the
// same items. The whole slice is scanned once per node.
func FindChildren(parent *domain.CommentNode, items []domain.Comment) {
	for i := range items {
		item := &items[i]
		if item.ParentID == nil || *item.ParentID != parent.ID {
			continue
		}
		child := NewNode(item)
		parent.Children = append(parent.Children, child)
		FindChildren(child, items)
	}
}

// Index groups comments by parent id so every node is expanded with a
// single map lookup.
type Index struct {
	children map[int64][]*domain.Comment
}

// NewIndex builds the parent index in one pass. Sibling order follows items.
func NewIndex(items []domain.Comment) *Index {
	ix := &Index{children: make(map[int64][]*domain.Comment)}
	for i := range items {
		if items[i].ParentID == nil {
			continue
		}
		pid := *items[i].ParentID
		ix.children[pid] = append(ix.children[pid], &items[i])
	}
	return ix
}

// Children returns freshly built subtrees for every direct child of id.
func (ix *Index) Children(id int64) []*domain.CommentNode {
	direct := ix.children[id]
	res := make([]*domain.CommentNode, 0, len(direct))
	for _, c := range direct {
		node := NewNode(c)
		node.Children = ix.Children(c.ID)
		res = append(res, node)
	}
	return res
}

// Expand returns a copy of seed whose children are populated from the index.
// seed itself is left untouched.
func (ix *Index) Expand(seed *domain.CommentNode) *domain.CommentNode {
	out := *seed
	out.Children = ix.Children(seed.ID)
	return &out
}

// Forest expands every root comment of items, keeping the order of items.
func Forest(items []domain.Comment) []*domain.CommentNode {
	ix := NewIndex(items)
	res := make([]*domain.CommentNode, 0)
	for i := range items {
		if !items[i].IsRoot {
			continue
		}
		res = append(res, ix.Expand(NewNode(&items[i])))
	}
	return res
}

// Count returns the number of nodes below (not including) root.
func Count(root *domain.CommentNode) int {
	n := 0
	for _, c := range root.Children {
		n += 1 + Count(c)
	}
	return n
}
