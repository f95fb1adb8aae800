package feed

import (
	"net/http"

	"github.com/Ripeplantain/Twitter-Backend-Api/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) GetFeed(w http.ResponseWriter, r *http.Request) error {
	page := httpx.QueryInt(r, "page", 0)
	size := httpx.QueryInt(r, "page_size", 25)
	items, err := h.svc.GetFeed(r.Context(), page, size)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, httpx.Response{Message: "feed fetched", Count: len(items), Data: items}, http.StatusOK)
	return nil
}

func (h *Handler) GetUserFeed(w http.ResponseWriter, r *http.Request) error {
	items, err := h.svc.GetUserFeed(r.Context(), r.PathValue("username"))
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, httpx.Response{Message: "user feed fetched", Count: len(items), Data: items}, http.StatusOK)
	return nil
}
