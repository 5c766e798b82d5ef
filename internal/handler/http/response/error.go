package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Data-layer failures surface as
// 500 with the error text.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	slog.Error("Request failed", "path", r.URL.Path, "error", err)
	InternalServerError(w, err.Error())
}
