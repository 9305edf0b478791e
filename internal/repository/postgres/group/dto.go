package group

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Search *string
}

type GetListResponse struct {
	ID            int     `json:"id"`
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	EmployeeCount int     `json:"employee_count"`
	DeviceCount   int     `json:"device_count"`
	AccountCount  int     `json:"account_count"`
}

type CreateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type UpdateRequest struct {
	ID          int     `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
