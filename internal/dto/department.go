package dto

// DepartmentForm carries department form fields.
type DepartmentForm struct {
	Name string `json:"name" validate:"required"`
}

// DepartmentPayload is the wire shape for department create/update.
type DepartmentPayload struct {
	Name string `json:"name"`
}

// Payload builds the upstream payload.
func (f DepartmentForm) Payload() (DepartmentPayload, error) {
	return DepartmentPayload{Name: f.Name}, nil
}
