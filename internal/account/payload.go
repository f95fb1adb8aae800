package account

type CreateReq struct {
	Username    string `json:"username" validate:"required,min=3,max=50"`
	DisplayName string `json:"display_name" validate:"required,max=50"`
	Bio         string `json:"bio" validate:"max=255"`
	Location    string `json:"location" validate:"max=50"`
}
