package tweet

import (
	"net/http"
	"strconv"

	"github.com/Ripeplantain/Twitter-Backend-Api/internal/shared/apperr"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/shared/httpx"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/shared/validate"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func tweetID(r *http.Request) (uint, error) {
	n, err := strconv.ParseUint(r.PathValue("tweet_id"), 10, 64)
	if err != nil {
		return 0, apperr.Invalid("invalid tweet id")
	}
	return uint(n), nil
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	in, err := httpx.Decode[CreateReq](r)
	if err != nil {
		return err
	}
	if err := validate.Struct(in); err != nil {
		return err
	}
	t, err := h.svc.Create(uid, in.Content)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, httpx.Response{Message: "tweet created", Count: 1, Data: t}, http.StatusCreated)
	return nil
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) error {
	id, err := tweetID(r)
	if err != nil {
		return err
	}
	t, err := h.svc.GetByID(id)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, httpx.Response{Message: "tweet fetched", Count: 1, Data: t}, http.StatusOK)
	return nil
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	id, err := tweetID(r)
	if err != nil {
		return err
	}
	in, err := httpx.Decode[UpdateReq](r)
	if err != nil {
		return err
	}
	if err := validate.Struct(in); err != nil {
		return err
	}
	t, err := h.svc.Update(id, uid, in.Content)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, httpx.Response{Message: "tweet updated", Count: 1, Data: t}, http.StatusOK)
	return nil
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	id, err := tweetID(r)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(id, uid); err != nil {
		return err
	}
	httpx.WriteJSON(w, httpx.Response{Message: "tweet deleted", Count: 1}, http.StatusOK)
	return nil
}
