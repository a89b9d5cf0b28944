package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/osphor/internal/logger"
	"github.com/MKhiriev/osphor/internal/service"
	"github.com/MKhiriev/osphor/internal/store"
	"github.com/MKhiriev/osphor/internal/utils"
)

// errorStatusMap is ordered: the first matching sentinel wins.
var errorStatusMap = []struct {
	target error
	status int
}{
	{store.ErrConflict, http.StatusConflict},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{utils.ErrInvalidBearer, http.StatusBadRequest},
	{ErrInvalidJSON, http.StatusBadRequest},
	{service.ErrUnauthorized, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{store.ErrNotFound, http.StatusNotFound},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status. Internal failures
// get the generic status text so store and schema details never leak.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Debug().Err(err).Int("status", status).Msg("request rejected")
	http.Error(w, err.Error(), status)
}
