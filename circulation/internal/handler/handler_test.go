package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mycompany/circulation-service/circulation/internal/errs"
	"github.com/mycompany/circulation-service/circulation/internal/handler"
	"github.com/mycompany/circulation-service/circulation/internal/model"
	"github.com/mycompany/circulation-service/pkg/validate"

	service_mocks "github.com/mycompany/circulation-service/circulation/internal/handler/mocks"
)

var (
	borrowDate = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	returnDate = time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
)

func TestHandler_CreateBorrow(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCirculationService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"memberId":1,"bookId":2}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					BorrowBook(context.Background(), model.CreateBorrowRequest{MemberID: 1, BookID: 2}).
					Return(model.Borrow{
						ID:         10,
						BorrowDate: borrowDate,
						MemberID:   ptrInt64(1),
						BookID:     ptrInt64(2),
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":10,"borrowDate":"2024-03-01T00:00:00Z","memberId":1,"bookId":2}`,
			},
		},
		{
			name: "err. book already borrowed",
			body: `{"memberId":1,"bookId":2}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					BorrowBook(context.Background(), model.CreateBorrowRequest{MemberID: 1, BookID: 2}).
					Return(model.Borrow{}, errs.ErrConflict)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"book is already borrowed"}`,
			},
		},
		{
			name: "err. member not found",
			body: `{"memberId":9,"bookId":2}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					BorrowBook(context.Background(), model.CreateBorrowRequest{MemberID: 9, BookID: 2}).
					Return(model.Borrow{}, errors.Wrap(errs.ErrNotFound, "member 9"))
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"member 9: not found"}`,
			},
		},
		{
			name:         "err. bookId required",
			body:         `{"memberId":1}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'CreateBorrowRequest.BookID' Error:Field validation for 'BookID' failed on the 'required' tag"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCirculationService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/borrows", h.CreateBorrow)

			r := httptest.NewRequest(http.MethodPost, "/borrows", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_UpdateBorrow(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCirculationService)

	var tests = []struct {
		name         string
		id           string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			id:   "7",
			body: `{"id":7,"borrowDate":"2024-03-01T00:00:00Z","memberId":1,"bookId":2}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					UpdateBorrow(context.Background(), model.Borrow{
						ID:         7,
						BorrowDate: borrowDate,
						MemberID:   ptrInt64(1),
						BookID:     ptrInt64(2),
					}).
					Return(model.Borrow{
						ID:         7,
						BorrowDate: borrowDate,
						MemberID:   ptrInt64(1),
						BookID:     ptrInt64(2),
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":7,"borrowDate":"2024-03-01T00:00:00Z","memberId":1,"bookId":2}`,
			},
		},
		{
			name:         "err. id missing in body",
			id:           "7",
			body:         `{"borrowDate":"2024-03-01T00:00:00Z"}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid request"}`,
			},
		},
		{
			name:         "err. id mismatch",
			id:           "7",
			body:         `{"id":8,"borrowDate":"2024-03-01T00:00:00Z"}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"id in path and body mismatch"}`,
			},
		},
		{
			name: "err. not found",
			id:   "7",
			body: `{"id":7,"borrowDate":"2024-03-01T00:00:00Z"}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					UpdateBorrow(context.Background(), model.Borrow{ID: 7, BorrowDate: borrowDate}).
					Return(model.Borrow{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCirculationService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.PUT("/borrows/:id", h.UpdateBorrow)

			r := httptest.NewRequest(http.MethodPut, "/borrows/"+tt.id, strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_PatchBorrow(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCirculationService)

	var tests = []struct {
		name         string
		id           string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok. return date only",
			id:   "7",
			body: `{"id":7,"returnDate":"2024-04-01T00:00:00Z"}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					PatchBorrow(context.Background(), model.BorrowPatch{
						ID:         ptrInt64(7),
						ReturnDate: ptrTime(returnDate),
					}).
					Return(model.Borrow{
						ID:         7,
						BorrowDate: borrowDate,
						ReturnDate: ptrTime(returnDate),
						MemberID:   ptrInt64(1),
						BookID:     ptrInt64(2),
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":7,"borrowDate":"2024-03-01T00:00:00Z","returnDate":"2024-04-01T00:00:00Z","memberId":1,"bookId":2}`,
			},
		},
		{
			name:         "err. id mismatch",
			id:           "7",
			body:         `{"id":8}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"id in path and body mismatch"}`,
			},
		},
		{
			name: "err. not found",
			id:   "7",
			body: `{"id":7}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					PatchBorrow(context.Background(), model.BorrowPatch{ID: ptrInt64(7)}).
					Return(model.Borrow{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCirculationService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.PATCH("/borrows/:id", h.PatchBorrow)

			r := httptest.NewRequest(http.MethodPatch, "/borrows/"+tt.id, strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_DeleteBorrow(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCirculationService)

	var tests = []struct {
		name         string
		id           string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			id:   "7",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().DeleteBorrow(context.Background(), int64(7)).Return(nil)
			},
			response: response{expectedCode: http.StatusNoContent, expectedBody: ``},
		},
		{
			// an id that never existed still answers no content
			name: "ok. already gone",
			id:   "404",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().DeleteBorrow(context.Background(), int64(404)).Return(nil)
			},
			response: response{expectedCode: http.StatusNoContent, expectedBody: ``},
		},
		{
			name:         "err. bad id",
			id:           "abc",
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid request"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCirculationService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := echo.New()
			e.DELETE("/borrows/:id", h.DeleteBorrow)

			r := httptest.NewRequest(http.MethodDelete, "/borrows/"+tt.id, http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_GetBorrowByID(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCirculationService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"id":5}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					GetBorrow(context.Background(), int64(5)).
					Return(model.Borrow{
						ID:         5,
						BorrowDate: borrowDate,
						MemberID:   ptrInt64(1),
						BookID:     ptrInt64(2),
						Member: &model.Member{
							ID:       1,
							Name:     "Ann",
							Email:    "ann@example.com",
							JoinDate: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
						},
						Book: &model.Book{
							ID:        2,
							Title:     "Dune",
							Author:    "Frank Herbert",
							Available: ptrBool(false),
						},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":5,"borrowDate":"2024-03-01T00:00:00Z","memberId":1,"bookId":2,"member":{"id":1,"name":"Ann","email":"ann@example.com","joinDate":"2023-01-02T00:00:00Z"},"book":{"id":2,"title":"Dune","author":"Frank Herbert","available":false}}`,
			},
		},
		{
			name:         "err. id required",
			body:         `{}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid request"}`,
			},
		},
		{
			name: "err. not found",
			body: `{"id":5}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					GetBorrow(context.Background(), int64(5)).
					Return(model.Borrow{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCirculationService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := echo.New()
			e.POST("/borrows/get", h.GetBorrowByID)

			r := httptest.NewRequest(http.MethodPost, "/borrows/get", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_GetBorrows(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCirculationService)

	var tests = []struct {
		name         string
		query        string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:  "ok",
			query: "page=1&size=10",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					ListBorrows(context.Background(), 1, 10).
					Return(model.ListBorrows{
						Paging: model.Paging{Page: 1, PageSize: 10, TotalElements: 1},
						Items: []model.Borrow{
							{
								ID:         10,
								BorrowDate: borrowDate,
								MemberID:   ptrInt64(1),
								BookID:     ptrInt64(2),
							},
						},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"page":1,"pageSize":10,"totalElements":1,"items":[{"id":10,"borrowDate":"2024-03-01T00:00:00Z","memberId":1,"bookId":2}]}`,
			},
		},
		{
			name:         "err. bad page",
			query:        "page=x",
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"page is invalid"}`,
			},
		},
		{
			name:  "err. internal",
			query: "",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					ListBorrows(context.Background(), 0, 0).
					Return(model.ListBorrows{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCirculationService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := echo.New()
			e.GET("/borrows", h.GetBorrows)

			r := httptest.NewRequest(http.MethodGet, "/borrows?"+tt.query, http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_StreamBorrows(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCirculationService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	svc.EXPECT().
		StreamBorrows(context.Background(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(model.Borrow) error) error {
			for id := int64(1); id <= 2; id++ {
				if err := fn(model.Borrow{ID: id, BorrowDate: borrowDate}); err != nil {
					return err
				}
			}
			return nil
		})

	e := echo.New()
	e.GET("/borrows/stream", h.StreamBorrows)

	r := httptest.NewRequest(http.MethodGet, "/borrows/stream", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/x-ndjson", w.Header().Get(echo.HeaderContentType))
	want := `{"id":1,"borrowDate":"2024-03-01T00:00:00Z"}` + "\n" +
		`{"id":2,"borrowDate":"2024-03-01T00:00:00Z"}` + "\n"
	require.Equal(t, want, w.Body.String())
}

func TestHandler_BorrowsPerYear(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCirculationService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					BorrowsPerYear(context.Background()).
					Return([]model.YearBorrowCount{
						{Year: 2021, Total: 2},
						{Year: 2022, Total: 1},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[{"year":2021,"total":2},{"year":2022,"total":1}]`,
			},
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					BorrowsPerYear(context.Background()).
					Return(nil, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCirculationService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := echo.New()
			e.GET("/reports/borrows-per-year", h.BorrowsPerYear)

			r := httptest.NewRequest(http.MethodGet, "/reports/borrows-per-year", http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ReportSummary(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCirculationService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	svc.EXPECT().
		TopBorrowedBooks(gomock.Any(), 3).
		Return([]model.BookBorrowCount{
			{BookID: 2, Title: "Dune", Author: "Frank Herbert", TotalBorrowed: 4},
		}, nil)
	svc.EXPECT().
		BorrowsPerYear(gomock.Any()).
		Return([]model.YearBorrowCount{{Year: 2024, Total: 4}}, nil)
	svc.EXPECT().
		FrequentMembers(gomock.Any(), 3).
		Return([]model.MemberBorrowCount{
			{MemberID: 1, Name: "Ann", TotalBorrowed: 4},
		}, nil)

	e := echo.New()
	e.GET("/reports/summary", h.ReportSummary)

	r := httptest.NewRequest(http.MethodGet, "/reports/summary", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`{"topBooks":[{"bookId":2,"title":"Dune","author":"Frank Herbert","totalBorrowed":4}],"borrowsPerYear":[{"year":2024,"total":4}],"frequentMembers":[{"memberId":1,"name":"Ann","totalBorrowed":4}]}`,
		strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_PurgeStale(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCirculationService)

	var tests = []struct {
		name         string
		query        string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:  "ok",
			query: "before=2024-01-01T00:00:00Z",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					PurgeReturnedBefore(context.Background(), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).
					Return(int64(3), nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"deleted":3}`,
			},
		},
		{
			name:         "err. before required",
			query:        "",
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"before is required"}`,
			},
		},
		{
			name:         "err. before invalid",
			query:        "before=yesterday",
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"before is invalid"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCirculationService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := echo.New()
			e.DELETE("/reports/stale", h.PurgeStale)

			r := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/reports/stale?%s", tt.query), http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func ptrInt64(v int64) *int64 { return &v }

func ptrBool(v bool) *bool { return &v }

func ptrTime(v time.Time) *time.Time { return &v }
