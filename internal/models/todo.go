package models

// Todo is a single task row.
type Todo struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"` // 1..5
	Complete    bool   `json:"complete"`
	OwnerID     int    `json:"owner_id,omitempty"` // FK to users.id; no endpoint populates it
}
