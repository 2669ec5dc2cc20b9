package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mycompany/circulation-service/circulation/internal/errs"
	"github.com/mycompany/circulation-service/circulation/internal/model"
	md "github.com/mycompany/circulation-service/pkg/middleware"
	"github.com/mycompany/circulation-service/pkg/validate"
)

type Handler struct {
	circulationSvc CirculationService
	log            *zap.Logger
}

func New(circulationSvc CirculationService, log *zap.Logger) *Handler {
	return &Handler{
		circulationSvc: circulationSvc,
		log:            log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/borrows", h.CreateBorrow)
	api.GET("/borrows", h.GetBorrows)
	api.GET("/borrows/stream", h.StreamBorrows)
	api.POST("/borrows/get", h.GetBorrowByID)
	api.PUT("/borrows/:id", h.UpdateBorrow)
	api.PATCH("/borrows/:id", h.PatchBorrow)
	api.DELETE("/borrows/:id", h.DeleteBorrow)
	api.POST("/borrows/:id/return", h.ReturnBorrow)

	api.POST("/books", h.CreateBook)
	api.GET("/books", h.GetBooks)
	api.GET("/books/:id", h.GetBook)
	api.PUT("/books/:id", h.UpdateBook)
	api.DELETE("/books/:id", h.DeleteBook)

	api.POST("/members", h.CreateMember)
	api.GET("/members", h.GetMembers)
	api.GET("/members/:id", h.GetMember)
	api.PUT("/members/:id", h.UpdateMember)
	api.DELETE("/members/:id", h.DeleteMember)

	api.GET("/reports/top-books", h.TopBooks)
	api.GET("/reports/borrows-per-year", h.BorrowsPerYear)
	api.GET("/reports/frequent-members", h.FrequentMembers)
	api.GET("/reports/unreturned", h.UnreturnedBooks)
	api.GET("/reports/summary", h.ReportSummary)
	api.DELETE("/reports/stale", h.PurgeStale)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError translates core error kinds to status codes.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrInvalid), errors.Is(err, errs.ErrIDMismatch):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errs.ErrInvalid
	}
	return id, nil
}

func paging(c echo.Context) (page, size int, err error) {
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if page, err = strconv.Atoi(pageParam); err != nil {
			return 0, 0, errors.New("page is invalid")
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if size, err = strconv.Atoi(sizeParam); err != nil {
			return 0, 0, errors.New("size is invalid")
		}
	}
	return page, size, nil
}

func (h *Handler) CreateBorrow(c echo.Context) error {
	var req model.CreateBorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	borrow, err := h.circulationSvc.BorrowBook(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, borrow)
}

func (h *Handler) ReturnBorrow(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return httpError(err)
	}
	borrow, err := h.circulationSvc.ReturnBook(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, borrow)
}

func (h *Handler) UpdateBorrow(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return httpError(err)
	}
	var req model.UpdateBorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.ID == nil {
		return httpError(errs.ErrInvalid)
	}
	if *req.ID != id {
		return httpError(errs.ErrIDMismatch)
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	borrow, err := h.circulationSvc.UpdateBorrow(c.Request().Context(), model.Borrow{
		ID:         id,
		BorrowDate: req.BorrowDate,
		ReturnDate: req.ReturnDate,
		MemberID:   req.MemberID,
		BookID:     req.BookID,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, borrow)
}

func (h *Handler) PatchBorrow(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return httpError(err)
	}
	var patch model.BorrowPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if patch.ID == nil {
		return httpError(errs.ErrInvalid)
	}
	if *patch.ID != id {
		return httpError(errs.ErrIDMismatch)
	}

	borrow, err := h.circulationSvc.PatchBorrow(c.Request().Context(), patch)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, borrow)
}

// DeleteBorrow is idempotent at the boundary: an already-gone id still
// answers 204.
func (h *Handler) DeleteBorrow(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return httpError(err)
	}
	if err := h.circulationSvc.DeleteBorrow(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) GetBorrowByID(c echo.Context) error {
	type req struct {
		ID *int64 `json:"id"`
	}
	var r req
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if r.ID == nil {
		return httpError(errs.ErrInvalid)
	}

	borrow, err := h.circulationSvc.GetBorrow(c.Request().Context(), *r.ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, borrow)
}

func (h *Handler) GetBorrows(c echo.Context) error {
	page, size, err := paging(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	borrows, err := h.circulationSvc.ListBorrows(c.Request().Context(), page, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, borrows)
}

// StreamBorrows writes newline-delimited JSON record by record; both this
// and GetBorrows reconstruct through the same join path.
func (h *Handler) StreamBorrows(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/x-ndjson")
	c.Response().WriteHeader(http.StatusOK)

	enc := json.NewEncoder(c.Response())
	return h.circulationSvc.StreamBorrows(c.Request().Context(), func(borrow model.Borrow) error {
		if err := enc.Encode(borrow); err != nil {
			return err
		}
		c.Response().Flush()
		return nil
	})
}
