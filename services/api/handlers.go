package api

import (
	"errors"
	"net/http"
	"strconv"

	"rss-notifier/models/entities"

	"github.com/dustin/go-humanize"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func feedID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid feed id")
	}
	return uint(id), nil
}

func (service *Impl) healthz(c echo.Context) error {
	response := healthResponse{Status: "ok", Started: humanize.Time(service.startedAt)}
	if !service.db.IsConnected() {
		response.Status = "degraded"
		return c.JSON(http.StatusServiceUnavailable, response)
	}
	return c.JSON(http.StatusOK, response)
}

func (service *Impl) listFeeds(c echo.Context) error {
	feedList, err := service.feedRepo.ListFeeds()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, feedList)
}

func (service *Impl) createFeed(c echo.Context) error {
	var request feedRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if request.Name == "" || request.FeedURL == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name and feed_url are required")
	}

	feed := entities.Feed{Name: request.Name, FeedURL: request.FeedURL}
	if err := service.feedRepo.CreateFeed(&feed); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, feed)
}

func (service *Impl) getFeed(c echo.Context) error {
	id, err := feedID(c)
	if err != nil {
		return err
	}

	feed, err := service.feedRepo.GetFeed(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "feed not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, feed)
}

func (service *Impl) updateFeed(c echo.Context) error {
	id, err := feedID(c)
	if err != nil {
		return err
	}

	var request feedRequest
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if request.Name == "" || request.FeedURL == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name and feed_url are required")
	}

	if _, err := service.feedRepo.GetFeed(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "feed not found")
	} else if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := service.feedRepo.UpdateFeed(entities.Feed{ID: id, Name: request.Name, FeedURL: request.FeedURL}); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	feed, err := service.feedRepo.GetFeed(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, feed)
}

func (service *Impl) deleteFeed(c echo.Context) error {
	id, err := feedID(c)
	if err != nil {
		return err
	}

	if err := service.feedRepo.DeleteFeed(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// forceSend runs the same check a scheduled cycle would, out of band. It
// only validates that the feed exists and returns before the check finishes.
func (service *Impl) forceSend(c echo.Context) error {
	id, err := feedID(c)
	if err != nil {
		return err
	}

	if _, err := service.feedRepo.GetFeed(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "feed not found")
	} else if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	service.poller.CheckAsync(id)
	return c.NoContent(http.StatusOK)
}
