package social

type RetweetReq struct {
	Caption string `json:"caption" validate:"max=280"`
}
