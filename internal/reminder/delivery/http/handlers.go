package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-reminders/internal/model"
	"smart-reminders/pkg/log"
	"smart-reminders/pkg/response"
)

func scopeFrom(c *gin.Context) model.Scope {
	return model.Scope{
		RequestID: log.RequestIDFromContext(c.Request.Context()),
		Source:    model.SourceHTTP,
	}
}

// Parse godoc
// @Summary     Parse a reminder
// @Description Turns one free-text phrase into a structured reminder.
// @Tags        Reminders
// @Accept      json
// @Produce     json
// @Param       body body     parseReq  true "Phrase to parse"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/reminders/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Parse(ctx, scopeFrom(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newParseResp(output))
}

// Preview godoc
// @Summary     Preview a reminder while typing
// @Description Same as parse, but rejects input shorter than the configured minimum length.
// @Tags        Reminders
// @Accept      json
// @Produce     json
// @Param       body body     parseReq  true "Phrase typed so far"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "Input too short"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/reminders/preview [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Preview(ctx, scopeFrom(c), req.toInput())
	if err != nil {
		h.l.Debugf(ctx, "uc.Preview: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newParseResp(output))
}

// ParseBulk godoc
// @Summary     Parse several reminders
// @Description Splits the text on commas and parses each phrase independently against the same reference time.
// @Tags        Reminders
// @Accept      json
// @Produce     json
// @Param       body body     parseReq true "Comma-separated phrases"
// @Success     200  {object} bulkResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     413  {object} response.Resp "Too many phrases"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/reminders/bulk [POST]
func (h *handler) ParseBulk(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ParseBulk(ctx, scopeFrom(c), req.toBulkInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ParseBulk: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newBulkResp(output))
}

// Export godoc
// @Summary     Export reminders as a calendar
// @Description Parses comma-separated phrases and returns them as an iCalendar feed (default) or a JSON array.
// @Tags        Reminders
// @Accept      json
// @Produce     text/calendar,json
// @Param       body body     exportReq true "Phrases and export format"
// @Success     200  {string} string "Calendar body"
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     413  {object} response.Resp "Too many phrases"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/reminders/export [POST]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Export(ctx, scopeFrom(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="reminders.`+exportExtension(req.Format)+`"`)
	c.Data(http.StatusOK, output.ContentType, output.Body)
}

func exportExtension(format string) string {
	if format == "json" || format == "JSON" {
		return "json"
	}
	return "ics"
}
