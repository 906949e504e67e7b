package department

type DepartmentInput struct {
	Name        string  `json:"d_name" validate:"required,max=255"`
	Description *string `json:"d_description"`
}
