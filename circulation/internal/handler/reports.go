package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/mycompany/circulation-service/circulation/internal/model"
)

const (
	topBooksLimit      = 3
	frequentMembersMin = 3
)

func (h *Handler) TopBooks(c echo.Context) error {
	items, err := h.circulationSvc.TopBorrowedBooks(c.Request().Context(), topBooksLimit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) BorrowsPerYear(c echo.Context) error {
	items, err := h.circulationSvc.BorrowsPerYear(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) FrequentMembers(c echo.Context) error {
	items, err := h.circulationSvc.FrequentMembers(c.Request().Context(), frequentMembersMin)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) UnreturnedBooks(c echo.Context) error {
	items, err := h.circulationSvc.UnreturnedBooks(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// ReportSummary fetches the three aggregates concurrently.
func (h *Handler) ReportSummary(c echo.Context) error {
	var summary model.ReportSummary

	gg, ctx := errgroup.WithContext(c.Request().Context())
	gg.Go(func() error {
		items, err := h.circulationSvc.TopBorrowedBooks(ctx, topBooksLimit)
		if err != nil {
			return err
		}
		summary.TopBooks = items
		return nil
	})
	gg.Go(func() error {
		items, err := h.circulationSvc.BorrowsPerYear(ctx)
		if err != nil {
			return err
		}
		summary.BorrowsPerYear = items
		return nil
	})
	gg.Go(func() error {
		items, err := h.circulationSvc.FrequentMembers(ctx, frequentMembersMin)
		if err != nil {
			return err
		}
		summary.FrequentMembers = items
		return nil
	})
	if err := gg.Wait(); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, summary)
}

func (h *Handler) PurgeStale(c echo.Context) error {
	beforeParam := c.QueryParam("before")
	if beforeParam == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "before is required")
	}
	cutoff, err := time.Parse(time.RFC3339, beforeParam)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "before is invalid")
	}

	deleted, err := h.circulationSvc.PurgeReturnedBefore(c.Request().Context(), cutoff)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": deleted})
}
