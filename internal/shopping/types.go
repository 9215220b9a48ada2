package shopping

import "time"

// DefaultList is used when a request names no list.
const DefaultList = "default"

// Item is one line of a shopping list.
type Item struct {
	ID        string
	List      string
	Text      string
	Completed bool
	CreatedAt time.Time
}

type AddInput struct {
	List string
	Text string
}
