package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jwulff/kaza-go/internal/domain"
	"github.com/jwulff/kaza-go/internal/storage"
	"github.com/jwulff/kaza-go/internal/tracker"
	"github.com/jwulff/kaza-go/internal/vakit"
)

type addPrayerRequest struct {
	Type string `json:"type" binding:"required"`
	Date string `json:"date" binding:"required"`
}

type cityRequest struct {
	City string `json:"city" binding:"required"`
}

type themeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

type prayerTypeResponse struct {
	Type domain.PrayerType `json:"type"`
	domain.Display
}

type timesResponse struct {
	City  string       `json:"city"`
	Times []vakit.Time `json:"times"`
}

// Missed prayers

func (s *Server) listPrayers(ctx *gin.Context) (any, *Error) {
	return s.tracker.MissedPrayers(ctx.Request.Context()), nil
}

func (s *Server) addPrayer(ctx *gin.Context) (any, *Error) {
	var req addPrayerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, badRequest("type and date are required")
	}

	id, err := s.tracker.AddMissedPrayer(ctx.Request.Context(), domain.PrayerType(req.Type), req.Date)
	if err != nil {
		if storage.IsValidation(err) {
			return nil, badRequest(err.Error())
		}
		return nil, internalError("could not save missed prayer")
	}
	return gin.H{"id": id}, nil
}

func (s *Server) deletePrayer(ctx *gin.Context) (any, *Error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		s.log.Warn().Str("id", ctx.Param("id")).Msg("invalid id in request")
		return nil, badRequest("invalid id")
	}
	if err := s.tracker.DeleteMissedPrayer(ctx.Request.Context(), id); err != nil {
		return nil, internalError("could not delete missed prayer")
	}
	return gin.H{"deleted": id}, nil
}

func (s *Server) countPrayers(ctx *gin.Context) (any, *Error) {
	return gin.H{"count": s.tracker.TotalCount(ctx.Request.Context())}, nil
}

func (s *Server) listPrayerTypes(*gin.Context) (any, *Error) {
	out := make([]prayerTypeResponse, 0, len(domain.PrayerTypes))
	for _, t := range domain.PrayerTypes {
		out = append(out, prayerTypeResponse{Type: t, Display: t.Display()})
	}
	return out, nil
}

// Settings

func (s *Server) getCity(ctx *gin.Context) (any, *Error) {
	city, ok, err := s.tracker.CityName(ctx.Request.Context())
	if err != nil {
		return nil, internalError("could not read city")
	}
	if !ok {
		return gin.H{"city": nil}, nil
	}
	return gin.H{"city": city}, nil
}

func (s *Server) setCity(ctx *gin.Context) (any, *Error) {
	var req cityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, badRequest("city is required")
	}
	city, ok := vakit.LookupCity(req.City)
	if !ok {
		return nil, badRequest("unknown city")
	}
	if err := s.tracker.SetCityName(ctx.Request.Context(), city); err != nil {
		return nil, internalError("could not save city")
	}
	return gin.H{"city": city}, nil
}

func (s *Server) clearCity(ctx *gin.Context) (any, *Error) {
	if err := s.tracker.ClearCityName(ctx.Request.Context()); err != nil {
		return nil, internalError("could not clear city")
	}
	return gin.H{"city": nil}, nil
}

func (s *Server) getTheme(ctx *gin.Context) (any, *Error) {
	theme, err := s.tracker.Theme(ctx.Request.Context())
	if err != nil {
		return nil, internalError("could not read theme")
	}
	return gin.H{"theme": theme}, nil
}

func (s *Server) setTheme(ctx *gin.Context) (any, *Error) {
	var req themeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return nil, badRequest("theme is required")
	}
	if err := s.tracker.SetTheme(ctx.Request.Context(), tracker.Theme(req.Theme)); err != nil {
		if storage.IsValidation(err) {
			return nil, badRequest(err.Error())
		}
		return nil, internalError("could not save theme")
	}
	return gin.H{"theme": req.Theme}, nil
}

// Prayer times

func (s *Server) listCities(*gin.Context) (any, *Error) {
	return vakit.Cities, nil
}

func (s *Server) prayerTimes(ctx *gin.Context) (any, *Error) {
	city, times, err := s.tracker.PrayerTimes(ctx.Request.Context())
	switch {
	case errors.Is(err, tracker.ErrNoCity):
		return nil, &Error{Code: http.StatusNotFound, Message: "no city selected"}
	case errors.Is(err, storage.ErrNotInitialized):
		return nil, internalError("storage not available")
	case errors.Is(err, vakit.ErrNotConfigured):
		return nil, &Error{Code: http.StatusServiceUnavailable, Message: "prayer time feed not configured"}
	case err != nil:
		return nil, &Error{Code: http.StatusBadGateway, Message: "could not fetch prayer times"}
	}
	return timesResponse{City: city, Times: times}, nil
}
