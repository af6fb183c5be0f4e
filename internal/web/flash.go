package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"clubhub-app/internal/form"
	"clubhub-app/internal/store"
)

const (
	noticeNotFound   = "not_found"
	noticeSaveFailed = "save_failed"
	noticeBadRequest = "bad_request"
	noticeInvalid    = "invalid"
	noticeFailed     = "failed"
)

// flashMessage is the user-facing text for a notice code.
func flashMessage(notice, locale string) string {
	ar := locale == "ar"
	switch notice {
	case noticeNotFound:
		if ar {
			return "غير موجود"
		}
		return "not found"
	case noticeSaveFailed:
		if ar {
			return "تعذر الحفظ، يرجى المحاولة مرة أخرى"
		}
		return "Could not save, please try again."
	case noticeBadRequest:
		if ar {
			return "طلب غير صالح"
		}
		return "Invalid request."
	case noticeInvalid:
		if ar {
			return "يرجى تصحيح الحقول المحددة"
		}
		return "Please fix the highlighted fields."
	case noticeFailed:
		if ar {
			return "حدث خطأ، يرجى المحاولة لاحقاً"
		}
		return "Something went wrong, please try again later."
	}
	return ""
}

type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// notFound keeps the static English body the clients match on.
func notFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
}

func (s *Server) badRequest(w http.ResponseWriter, err error) {
	s.log.WithError(err).Debug("bad request")
	writeJSON(w, http.StatusBadRequest, errorBody{Error: flashMessage(noticeBadRequest, s.locale) + " " + err.Error()})
}

// writeSaveError maps a failed save to the error taxonomy: field errors
// are returned, everything else gets a generic alert.
func (s *Server) writeSaveError(w http.ResponseWriter, err error) {
	var verr *form.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: flashMessage(noticeInvalid, s.locale), Fields: verr.Errors})
	case errors.Is(err, store.ErrNotFound):
		notFound(w)
	default:
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: flashMessage(noticeSaveFailed, s.locale)})
	}
}

func (s *Server) writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		notFound(w)
		return
	}
	s.log.WithError(err).Error("store")
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: flashMessage(noticeFailed, s.locale)})
}
