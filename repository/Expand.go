package repository

// Expand names a related collection to load eagerly on a read. Call sites
// state their expansion explicitly instead of relying on query variants.
type Expand string

const (
	ExpandProfile Expand = "Profile"
	ExpandRoles   Expand = "Roles"
)
