package http

import (
	"errors"
	"net/http"

	"github.com/pgtools/pg-config-view/internal/report"
	"github.com/pgtools/pg-config-view/internal/store"
)

var errorStatusMap = map[error]int{
	store.ErrEntryNotFound: http.StatusNotFound,

	report.ErrMaterializeNotSupported: http.StatusNotImplemented,

	store.ErrBuildingSQLQuery:      http.StatusInternalServerError,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrBeginningTransaction:  http.StatusInternalServerError,
	store.ErrCommittingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:           http.StatusInternalServerError,
	store.ErrScanningRows:          http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
