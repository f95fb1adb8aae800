package social

import (
	"net/http"
	"strconv"

	"github.com/Ripeplantain/Twitter-Backend-Api/internal/shared/apperr"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/shared/httpx"
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

func (h *Handler) Follow(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	if err := h.svc.Follow(r.Context(), uid, r.PathValue("target_id")); err != nil {
		return err
	}
	httpx.WriteJSON(w, httpx.Response{Message: "followed successfully", Count: 1}, http.StatusCreated)
	return nil
}

func (h *Handler) Unfollow(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	if err := h.svc.Unfollow(r.Context(), uid, r.PathValue("target_id")); err != nil {
		return err
	}
	httpx.WriteJSON(w, httpx.Response{Message: "unfollowed successfully", Count: 1}, http.StatusOK)
	return nil
}

func (h *Handler) Like(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	id, err := tweetID(r)
	if err != nil {
		return err
	}
	if err := h.svc.LikeTweet(r.Context(), uid, id); err != nil {
		return err
	}
	httpx.WriteJSON(w, httpx.Response{Message: "tweet liked", Count: 1}, http.StatusCreated)
	return nil
}

func (h *Handler) Retweet(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	id, err := tweetID(r)
	if err != nil {
		return err
	}
	in, err := httpx.Decode[RetweetReq](r)
	if err != nil {
		// body is optional for retweets
		in = RetweetReq{}
	}
	if err := h.svc.Retweet(r.Context(), uid, id, in.Caption); err != nil {
		return err
	}
	httpx.WriteJSON(w, httpx.Response{Message: "retweeted successfully", Count: 1}, http.StatusCreated)
	return nil
}
