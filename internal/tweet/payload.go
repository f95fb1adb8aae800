package tweet

type CreateReq struct {
	Content string `json:"content" validate:"required,max=280"`
}

type UpdateReq struct {
	Content string `json:"content" validate:"required,max=280"`
}
