package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"irricore/entities"
	"irricore/pkg/measure/repository"
	"irricore/pkg/recommend"
)

type MeasCtrl struct{ repo repository.MeasureRepository }

func New(repo repository.MeasureRepository) *MeasCtrl { return &MeasCtrl{repo} }

// Create stores a telemetry reading and answers with the water-need estimate
// it implies, so the client can preview before scheduling a task.
func (h *MeasCtrl) Create(c echo.Context) error {
	locID, err := strconv.Atoi(c.Param("id"))
	if err != nil || locID < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad location id"})
	}
	var body struct {
		Sample       entities.SoilMoistureSample `json:"sample"`
		TemperatureC *float64                    `json:"temperature_c"`
		RainfallMM   *float64                    `json:"rainfall_mm"`
		Note         string                      `json:"note"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	est, err := recommend.Estimate(body.Sample)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	reading := &entities.SoilMoistureReading{
		LocationID:   uint(locID),
		Date:         time.Now(),
		Moisture10CM: body.Sample.Moisture10CM,
		Moisture20CM: body.Sample.Moisture20CM,
		Moisture30CM: body.Sample.Moisture30CM,
		TemperatureC: body.TemperatureC,
		RainfallMM:   body.RainfallMM,
		Note:         body.Note,
	}
	if err := h.repo.Create(reading); err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"reading": reading, "estimate": est})
}

func (h *MeasCtrl) List(c echo.Context) error {
	locID, err := strconv.Atoi(c.Param("id"))
	if err != nil || locID < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad location id"})
	}
	days := 7
	if v := c.QueryParam("days"); v != "" {
		if d, err := strconv.Atoi(v); err == nil && d > 0 {
			days = d
		}
	}
	out, err := h.repo.Recent(uint(locID), days)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MeasCtrl) Latest(c echo.Context) error {
	locID, err := strconv.Atoi(c.Param("id"))
	if err != nil || locID < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad location id"})
	}
	reading, err := h.repo.Latest(uint(locID))
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, reading)
}
