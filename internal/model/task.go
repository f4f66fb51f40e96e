package model

// Task is a single self goal. It has no ordering beyond its ID.
type Task struct {
	// ID is assigned by the store on insert.
	ID int64 `json:"id" db:"id"`

	// Description is the goal text. Required.
	Description string `json:"description" db:"description"`

	// Completed flips to true once via MarkTaskComplete and never back.
	Completed bool `json:"completed" db:"completed"`
}
