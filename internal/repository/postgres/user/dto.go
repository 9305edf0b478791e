package user

import "time"

type Filter struct {
	Limit   *int
	Offset  *int
	Page    *int
	Search  *string
	Role    *string
	Status  *string
	GroupID *int
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type GetListResponse struct {
	ID          int     `json:"id"`
	Email       *string `json:"email"`
	FullName    *string `json:"full_name"`
	Role        *string `json:"role"`
	JobPosition *string `json:"job_position"`
	Status      *string `json:"status"`
	GroupID     *int    `json:"group_id"`
	Group       *string `json:"group"`
	PhoneNumber *string `json:"phone_number"`
}

type CreateRequest struct {
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	FullName    *string `json:"full_name"`
	Role        *string `json:"role"`
	JobPosition *string `json:"job_position"`
	GroupID     *int    `json:"group_id"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
}

type CreateResponse struct {
	ID          int       `json:"id"`
	Email       *string   `json:"email"`
	FullName    *string   `json:"full_name"`
	Role        *string   `json:"role"`
	JobPosition *string   `json:"job_position"`
	GroupID     *int      `json:"group_id"`
	CreatedAt   time.Time `json:"-"`
}

type UpdateRequest struct {
	ID          int     `json:"id"`
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	FullName    *string `json:"full_name"`
	Role        *string `json:"role"`
	JobPosition *string `json:"job_position"`
	Status      *string `json:"status"`
	GroupID     *int    `json:"group_id"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
	AvatarUrl   *string `json:"avatar_url"`
}

type ExportRow struct {
	ID          int
	Email       string
	FullName    string
	Role        string
	JobPosition string
	Status      string
	Group       string
	PhoneNumber string
}
