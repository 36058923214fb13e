package service

// TodoInput carries the four mutable todo fields. PUT replaces all of them;
// there is no partial update.
type TodoInput struct {
	Title       string
	Description string
	Priority    int // 1..5
	Complete    bool
}

// RegisterInput carries the registration payload; Password is the plaintext
// and never leaves this layer unhashed.
type RegisterInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
	Role      string
}
