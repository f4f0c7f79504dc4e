package models

// Detail is a validated form submission. Details are immutable once stored;
// the only way to remove them is the bulk clear operation.
type Detail struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// CreateDetailRequest carries the raw submission fields. The binding tags are
// evaluated by gin before any store call; email_shape is a custom rule
// registered in the api package.
type CreateDetailRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=100"`
	Email   string `json:"email" binding:"required,email_shape"`
	Message string `json:"message" binding:"required,min=1,max=500"`
}
