package user

type BaseRequest struct {
	Email    string `json:"email" doc:"User email" example:"user@example.com"`
	Password string `json:"password" doc:"User password" minLength:"8"`
}
