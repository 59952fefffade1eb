package domain

import "github.com/uptrace/bun"

// Store is a named catalog owning a collection of items.
type Store struct {
	bun.BaseModel `bun:"table:stores,alias:st"`

	ID    int64   `bun:"id,pk,autoincrement" json:"id"`
	Name  string  `bun:"name,notnull,unique" json:"name"`
	Items []*Item `bun:"rel:has-many,join:id=store_id" json:"items"`
}
