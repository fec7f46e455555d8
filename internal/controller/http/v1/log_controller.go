package httpv1

import (
	"fmt"
	"net/http"
	"time"

	logginghelper "github.com/Egor213/LogBoard/internal/controller/common/logging"
	"github.com/Egor213/LogBoard/internal/controller/common/payloads"
	"github.com/Egor213/LogBoard/internal/controller/validators"
	"github.com/Egor213/LogBoard/internal/service"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

type LogController struct {
	logService service.Log
}

func NewLogController(ls service.Log) *LogController {
	return &LogController{
		logService: ls,
	}
}

func (lc *LogController) GetLogs(c echo.Context) error {
	const op = "get_logs"

	q := payloads.NewLogQuery(payloads.DefaultListLimit)
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return badRequest(c, op, err)
	}
	filter, page, err := q.Parse(validators.MaxListLimit)
	if err != nil {
		return badRequest(c, op, err)
	}

	logsPage, err := lc.logService.GetLogs(c.Request().Context(), filter, page)
	if err != nil {
		return serviceError(c, op, err)
	}

	return c.JSON(http.StatusOK, payloads.NewLogsResponse(logsPage))
}

// GetAggregatedLogs validates limit and offset like the other listings, but the counts
// always cover the whole filtered set.
func (lc *LogController) GetAggregatedLogs(c echo.Context) error {
	const op = "aggregate_logs"

	q := payloads.NewLogQuery(payloads.DefaultAggregateLimit)
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return badRequest(c, op, err)
	}
	filter, _, err := q.Parse(validators.MaxAggregateLimit)
	if err != nil {
		return badRequest(c, op, err)
	}

	agg, err := lc.logService.GetAggregatedLogs(c.Request().Context(), filter)
	if err != nil {
		return serviceError(c, op, err)
	}

	return c.JSON(http.StatusOK, payloads.NewAggregatedLogsResponse(agg))
}

func (lc *LogController) DownloadLogs(c echo.Context) error {
	const op = "export_logs"

	q := payloads.NewLogQuery(payloads.DefaultExportLimit)
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return badRequest(c, op, err)
	}
	filter, page, err := q.Parse(validators.MaxListLimit)
	if err != nil {
		return badRequest(c, op, err)
	}

	logs, err := lc.logService.ExportLogs(c.Request().Context(), filter, page)
	if err != nil {
		return serviceError(c, op, err)
	}

	filename := fmt.Sprintf("logs_%s.csv", time.Now().UTC().Format("20060102_150405"))
	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	resp.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	resp.WriteHeader(http.StatusOK)

	if err := writeLogsCSV(resp, logs); err != nil {
		// headers are already sent
		log.WithField("operation", op).Errorf("Failed to write CSV: %v", err)
	}
	return nil
}

func (lc *LogController) GetLog(c echo.Context) error {
	const op = "get_log"

	logObj, err := lc.logService.GetLog(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(c, op, err)
	}

	return c.JSON(http.StatusOK, payloads.NewLogResponse(logObj))
}

func (lc *LogController) CreateLog(c echo.Context) error {
	const op = "create_log"

	var payload payloads.LogPayload
	if err := c.Bind(&payload); err != nil {
		return badRequest(c, op, err)
	}
	entry, err := payload.Entry()
	if err != nil {
		return badRequest(c, op, err)
	}

	created, err := lc.logService.CreateLog(c.Request().Context(), entry)
	if err != nil {
		return serviceError(c, op, err)
	}
	logginghelper.LogSaved(&created, op)

	return c.JSON(http.StatusCreated, payloads.NewLogWithStatusResponse(created, http.StatusCreated))
}

func (lc *LogController) UpdateLog(c echo.Context) error {
	const op = "update_log"

	var payload payloads.LogPayload
	if err := c.Bind(&payload); err != nil {
		return badRequest(c, op, err)
	}
	entry, err := payload.Entry()
	if err != nil {
		return badRequest(c, op, err)
	}
	entry.Id = c.Param("id")

	updated, err := lc.logService.UpdateLog(c.Request().Context(), entry)
	if err != nil {
		return serviceError(c, op, err)
	}
	logginghelper.LogSaved(&updated, op)

	return c.JSON(http.StatusOK, payloads.NewLogWithStatusResponse(updated, http.StatusOK))
}

func (lc *LogController) DeleteLog(c echo.Context) error {
	const op = "delete_log"

	if err := lc.logService.DeleteLog(c.Request().Context(), c.Param("id")); err != nil {
		return serviceError(c, op, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (lc *LogController) GenerateLogs(c echo.Context) error {
	const op = "generate_logs"

	var payload payloads.GeneratePayload
	if err := c.Bind(&payload); err != nil {
		return badRequest(c, op, err)
	}
	if err := payload.Validate(); err != nil {
		return badRequest(c, op, err)
	}

	count, err := lc.logService.GenerateLogs(c.Request().Context(), payload.Count, payload.DaysBack)
	if err != nil {
		return serviceError(c, op, err)
	}

	return c.JSON(http.StatusCreated, payloads.GenerateLogsResponse{Count: count, StatusCode: http.StatusCreated})
}
