package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/timerecord"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http/response"
)

type TimeRecordHandler interface {
	ListRecent(w http.ResponseWriter, r *http.Request)
}

type timeRecordHandlerImpl struct {
	timeRecordService timerecord.TimeRecordService
}

func NewTimeRecordHandler(timeRecordService timerecord.TimeRecordService) TimeRecordHandler {
	return &timeRecordHandlerImpl{timeRecordService: timeRecordService}
}

// ListRecent implements TimeRecordHandler
func (h *timeRecordHandlerImpl) ListRecent(w http.ResponseWriter, r *http.Request) {
	records, err := h.timeRecordService.ListRecent(r.Context())
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Success(w, records)
}
