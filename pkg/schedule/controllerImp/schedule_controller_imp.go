package controllerImp

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"irricore/entities"
	"irricore/pkg/calendar"
	"irricore/pkg/export"
	"irricore/pkg/schedule/service"
	"irricore/pkg/window"
)

type SchedCtrl struct{ svc service.ScheduleService }

func New(svc service.ScheduleService) *SchedCtrl { return &SchedCtrl{svc} }

func (h *SchedCtrl) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.ActiveSchedules())
}

func (h *SchedCtrl) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Stats())
}

func (h *SchedCtrl) Day(c echo.Context) error {
	day := c.Param("date")
	if _, err := time.Parse(calendar.DayFormat, day); err != nil {
		return httpError(c, &entities.ValidationError{Msg: "date must be YYYY-MM-DD"})
	}
	return c.JSON(http.StatusOK, h.svc.Bucket(day))
}

func (h *SchedCtrl) SetWindow(c echo.Context) error {
	var body struct {
		Period string `json:"period"`
		Start  string `json:"start"`
		End    string `json:"end"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	p, err := window.ParsePeriod(body.Period)
	if err != nil {
		return httpError(c, err)
	}
	var custom *window.Range
	if p == window.Custom {
		start, err := time.Parse(calendar.DayFormat, body.Start)
		if err != nil {
			return httpError(c, &entities.ValidationError{Msg: "start must be YYYY-MM-DD"})
		}
		end, err := time.Parse(calendar.DayFormat, body.End)
		if err != nil {
			return httpError(c, &entities.ValidationError{Msg: "end must be YYYY-MM-DD"})
		}
		custom = &window.Range{Start: start, End: end}
	}
	if err := h.svc.SetWindow(p, custom); err != nil {
		return httpError(c, err)
	}
	period, rng := h.svc.Window()
	return c.JSON(http.StatusOK, map[string]any{"period": period, "range": rng})
}

func (h *SchedCtrl) Create(c echo.Context) error {
	locID, err := strconv.Atoi(c.Param("id"))
	if err != nil || locID < 0 {
		return httpError(c, &entities.ValidationError{Msg: "bad location id"})
	}
	var body struct {
		Sample entities.SoilMoistureSample `json:"sample"`
		Date   string                      `json:"date"`
		Notes  string                      `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	req := service.CreateRequest{
		LocationID: uint(locID),
		Sample:     body.Sample,
		Notes:      body.Notes,
	}
	if body.Date != "" {
		d, err := time.Parse(calendar.DayFormat, body.Date)
		if err != nil {
			return httpError(c, &entities.ValidationError{Msg: "date must be YYYY-MM-DD"})
		}
		req.ScheduledDate = &d
	}
	out, err := h.svc.Create(req)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *SchedCtrl) Complete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return httpError(c, &entities.ValidationError{Msg: "bad schedule id"})
	}
	var body struct {
		ActualAmount *float64 `json:"actual_amount"`
		Notes        string   `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.svc.Complete(uint(id), body.ActualAmount, body.Notes); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *SchedCtrl) Skip(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return httpError(c, &entities.ValidationError{Msg: "bad schedule id"})
	}
	var body struct {
		Reason string `json:"reason"`
		Text   string `json:"text"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	reason, err := entities.ParseSkipReason(body.Reason, body.Text)
	if err != nil {
		return httpError(c, err)
	}
	if err := h.svc.Skip(uint(id), reason); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *SchedCtrl) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return httpError(c, &entities.ValidationError{Msg: "bad schedule id"})
	}
	if err := h.svc.Delete(uint(id)); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *SchedCtrl) Report(c echo.Context) error {
	var buf bytes.Buffer
	if err := export.WriteReport(&buf, h.svc.ActiveSchedules(), h.svc.Stats()); err != nil {
		return httpError(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="watering-report.xlsx"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// httpError maps the error taxonomy onto status codes.
func httpError(c echo.Context, err error) error {
	var (
		verr     *entities.ValidationError
		invalid  *entities.InvalidInputError
		conflict *entities.StateConflictError
		perr     *entities.PersistenceError
	)
	switch {
	case errors.As(err, &verr), errors.As(err, &invalid):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.As(err, &conflict):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, entities.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.As(err, &perr):
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
