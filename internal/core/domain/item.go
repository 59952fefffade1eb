package domain

import "github.com/uptrace/bun"

// Item is a priced catalog entry belonging to exactly one store.
type Item struct {
	bun.BaseModel `bun:"table:items,alias:itm"`

	ID      int64   `bun:"id,pk,autoincrement" json:"id"`
	Name    string  `bun:"name,notnull,unique" json:"name"`
	Price   float64 `bun:"price,notnull" json:"price"`
	StoreID int64   `bun:"store_id,notnull" json:"store_id"`
	Store   *Store  `bun:"rel:belongs-to,join:store_id=id" json:"-"`
}
