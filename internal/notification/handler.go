package notification

import (
	"net/http"

	"github.com/Ripeplantain/Twitter-Backend-Api/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	limit := httpx.QueryInt(r, "limit", 50)
	offset := httpx.QueryInt(r, "offset", 0)
	items, err := h.svc.ListByAccount(uid, limit, offset)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, httpx.Response{Message: "notifications fetched", Count: len(items), Data: items}, http.StatusOK)
	return nil
}
