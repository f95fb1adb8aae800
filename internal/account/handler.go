package account

import (
	"net/http"

	"github.com/Ripeplantain/Twitter-Backend-Api/internal/shared/httpx"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/shared/validate"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) error {
	in, err := httpx.Decode[CreateReq](r)
	if err != nil {
		return err
	}
	if err := validate.Struct(in); err != nil {
		return err
	}
	a, err := h.svc.Create(in.Username, in.DisplayName, in.Bio, in.Location)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, httpx.Response{Message: "account created", Count: 1, Data: a}, http.StatusCreated)
	return nil
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) error {
	a, err := h.svc.GetByID(r.PathValue("account_id"))
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, httpx.Response{Message: "account fetched", Count: 1, Data: a}, http.StatusOK)
	return nil
}
