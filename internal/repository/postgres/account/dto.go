package account

type Filter struct {
	Limit    *int
	Offset   *int
	Page     *int
	Search   *string
	Platform *string
	GroupID  *int
	Status   *string
}

type GetListResponse struct {
	ID          int     `json:"id"`
	Platform    *string `json:"platform"`
	Username    *string `json:"username"`
	Email       *string `json:"email"`
	GroupID     *int    `json:"group_id"`
	Group       *string `json:"group"`
	Status      *string `json:"status"`
	ProfileLink *string `json:"profile_link"`
}

type CreateRequest struct {
	Platform    *string `json:"platform"`
	Username    *string `json:"username"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	GroupID     *int    `json:"group_id"`
	Status      *string `json:"status"`
	ProfileLink *string `json:"profile_link"`
	Notes       *string `json:"notes"`
}

type UpdateRequest struct {
	ID          int     `json:"id"`
	Platform    *string `json:"platform"`
	Username    *string `json:"username"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	GroupID     *int    `json:"group_id"`
	Status      *string `json:"status"`
	ProfileLink *string `json:"profile_link"`
	Notes       *string `json:"notes"`
}
