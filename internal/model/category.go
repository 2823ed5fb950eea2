package model

// CategoryNode is one main category in the two-level taxonomy, owning an
// ordered set of subcategory names. Transactions reference nodes by name,
// never by pointer, so deleting a node must cascade by name.
type CategoryNode struct {
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
}

// HasSub reports whether sub exists under this node.
func (n CategoryNode) HasSub(sub string) bool {
	for _, s := range n.Subcategories {
		if s == sub {
			return true
		}
	}
	return false
}
