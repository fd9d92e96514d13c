package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ghayaruae/crm-server/internal/http/middleware"
	"github.com/ghayaruae/crm-server/internal/model"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/query"
	"github.com/ghayaruae/crm-server/internal/repository"
	"github.com/ghayaruae/crm-server/internal/service"
	serviceMocks "github.com/ghayaruae/crm-server/internal/service/mocks"
)

const caller int64 = 7

// newApp returns an app whose requests are already authenticated as caller.
func newApp() *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(middleware.SalesmanIDLocalKey, caller)
		return c.Next()
	})
	return app
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func postJSON(path string, body io.Reader) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

var firstPage = pagination.Params{Page: 1, Limit: 20}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Code)
		assert.False(t, body.Success)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	mockSvc := new(serviceMocks.MockUserService)
	app := fiber.New()
	app.Post("/Users/Login", Login(mockSvc))

	in := model.LoginInput{LoginID: "sam", Password: "secret"}

	t.Run("success", func(t *testing.T) {
		res := &model.LoginResult{Salesman: model.Salesman{SalesmanID: caller, Name: "Sam"}, Token: "jwt"}
		mockSvc.On("Login", mock.Anything, in).Return(res, nil).Once()

		resp, _ := app.Test(postJSON("/Users/Login", jsonBody(t, in)))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body struct {
			Success bool              `json:"success"`
			Message string            `json:"message"`
			Data    model.LoginResult `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.True(t, body.Success)
		assert.Equal(t, "Login successful", body.Message)
		assert.Equal(t, "jwt", body.Data.Token)
		assert.Equal(t, caller, body.Data.SalesmanID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockSvc.On("Login", mock.Anything, in).Return(nil, service.ErrInvalidCredentials).Once()

		resp, _ := app.Test(postJSON("/Users/Login", jsonBody(t, in)))

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, resp).Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, _ := app.Test(postJSON("/Users/Login", strings.NewReader("{")))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_INPUT", decodeError(t, resp).Code)
	})
}

func TestListTargets(t *testing.T) {
	mockSvc := new(serviceMocks.MockMasterService)
	app := newApp()
	app.Get("/Masters/GetTargets", ListTargets(mockSvc, pagination.DefaultConfig()))

	t.Run("success", func(t *testing.T) {
		salesmanID := int64(3)
		page := pagination.NewPage(45, pagination.Params{Page: 2, Limit: 20}, []model.Target{{TargetID: 25, Amount: 1000}})
		mockSvc.On("ListTargets", mock.Anything, &salesmanID, query.Asc, pagination.Params{Page: 2, Limit: 20}).Return(page, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/Masters/GetTargets?page=2&limit=20&sort_order=asc&business_salesman_id=3", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var got pagination.Page[model.Target]
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.True(t, got.Success)
		assert.Equal(t, int64(45), got.TotalRecords)
		assert.Equal(t, 3, got.TotalPages)
		assert.True(t, got.Next)
		assert.True(t, got.Prev)
		assert.Len(t, got.Data, 1)
		mockSvc.AssertExpectations(t)
	})

	t.Run("limit above max", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/Masters/GetTargets?limit=101", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_PAGINATION", decodeError(t, resp).Code)
	})

	t.Run("bad salesman id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/Masters/GetTargets?business_salesman_id=abc", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, decodeError(t, resp).Message, "business_salesman_id")
	})

	t.Run("store failure is not leaked", func(t *testing.T) {
		mockSvc.On("ListTargets", mock.Anything, (*int64)(nil), query.Desc, firstPage).
			Return(nil, errors.New("pagination query failed: Unknown column 'x'")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/Masters/GetTargets", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "INTERNAL_ERROR", body.Code)
		assert.NotContains(t, body.Message, "Unknown column")
		mockSvc.AssertExpectations(t)
	})

	t.Run("circuit open", func(t *testing.T) {
		mockSvc.On("ListTargets", mock.Anything, (*int64)(nil), query.Desc, firstPage).
			Return(nil, fmt.Errorf("pagination query failed: %w", gobreaker.ErrOpenState)).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/Masters/GetTargets", nil))

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestSaveTarget(t *testing.T) {
	mockSvc := new(serviceMocks.MockMasterService)
	app := newApp()
	app.Post("/Masters/CreateTarget", SaveTarget(mockSvc))

	in := model.TargetInput{SalesmanID: 3, From: "2025-06-01", To: "2025-06-30", Amount: 1000}

	t.Run("caller is the assigner", func(t *testing.T) {
		mockSvc.On("SaveTarget", mock.Anything, caller, in).Return(int64(41), nil).Once()

		resp, _ := app.Test(postJSON("/Masters/CreateTarget", jsonBody(t, in)))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body struct {
			Data map[string]int64 `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, int64(41), body.Data["business_salesman_target_id"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("validation error", func(t *testing.T) {
		mockSvc.On("SaveTarget", mock.Anything, caller, in).
			Return(int64(0), &service.InputError{Field: "business_salesman_target_to", Message: "must not be before business_salesman_target_from"}).Once()

		resp, _ := app.Test(postJSON("/Masters/CreateTarget", jsonBody(t, in)))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "business_salesman_target_to: must not be before business_salesman_target_from", decodeError(t, resp).Message)
	})
}

func TestGetAndDeleteTarget(t *testing.T) {
	mockSvc := new(serviceMocks.MockMasterService)
	app := newApp()
	app.Get("/Masters/GetTargetInfo", GetTarget(mockSvc))
	app.Post("/Masters/DeleteTarget", DeleteTarget(mockSvc))

	t.Run("info", func(t *testing.T) {
		mockSvc.On("GetTarget", mock.Anything, int64(9)).Return(&model.Target{TargetID: 9}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/Masters/GetTargetInfo?business_salesman_target_id=9", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("info without id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/Masters/GetTargetInfo", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("info not found", func(t *testing.T) {
		mockSvc.On("GetTarget", mock.Anything, int64(10)).Return(nil, fmt.Errorf("target 10: %w", service.ErrNotFound)).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/Masters/GetTargetInfo?business_salesman_target_id=10", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Code)
	})

	t.Run("delete", func(t *testing.T) {
		mockSvc.On("DeleteTarget", mock.Anything, int64(9)).Return(nil).Once()

		resp, _ := app.Test(postJSON("/Masters/DeleteTarget", strings.NewReader(`{"business_salesman_target_id":9}`)))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("delete missing row", func(t *testing.T) {
		mockSvc.On("DeleteTarget", mock.Anything, int64(11)).Return(fmt.Errorf("target 11: %w", service.ErrNotFound)).Once()

		resp, _ := app.Test(postJSON("/Masters/DeleteTarget", strings.NewReader(`{"business_salesman_target_id":"11"}`)))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("delete without id", func(t *testing.T) {
		resp, _ := app.Test(postJSON("/Masters/DeleteTarget", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestBusinessOrders(t *testing.T) {
	mockSvc := new(serviceMocks.MockBusinessService)
	app := newApp()
	app.Get("/Business/GetBusinessOrders", BusinessOrders(mockSvc, pagination.DefaultConfig()))

	want := repository.OrderFilter{
		BusinessName: "Gulf",
		Keyword:      "SO-1",
		Status:       "4",
		FromDate:     "2025-06-01",
		ToDate:       "2025-06-30",
		Sort:         query.Desc,
	}
	page := pagination.NewPage[model.Order](0, firstPage, nil)
	mockSvc.On("Orders", mock.Anything, caller, want, firstPage).Return(page, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet,
		"/Business/GetBusinessOrders?business_name=Gulf&keyword=SO-1&status=4&from_date=2025-06-01&to_date=2025-06-30", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var got map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, []any{}, got["data"])
	assert.Equal(t, float64(0), got["total_pages"])
	mockSvc.AssertExpectations(t)
}

func TestOrderInfo(t *testing.T) {
	mockSvc := new(serviceMocks.MockBusinessService)
	app := newApp()
	app.Get("/Business/GetOrderInfo", OrderInfo(mockSvc))

	t.Run("success", func(t *testing.T) {
		info := &model.OrderInfo{
			Order: &model.OrderDetail{Order: model.Order{BusinessOrderID: 5}},
			Items: []model.OrderItem{{ItemID: 1, OrderID: 5}},
		}
		mockSvc.On("OrderInfo", mock.Anything, caller, int64(5)).Return(info, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/Business/GetOrderInfo?business_order_id=5", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var got map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, true, got["success"])
		assert.Contains(t, got, "data")
		assert.Len(t, got["items"], 1)
		assert.Nil(t, got["order_address"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("another salesman's order", func(t *testing.T) {
		mockSvc.On("OrderInfo", mock.Anything, caller, int64(6)).Return(nil, fmt.Errorf("order 6: %w", service.ErrNotFound)).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/Business/GetOrderInfo?business_order_id=6", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestUploadDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := newApp()
	app.Post("/Business/UploadBusinessDocument", UploadDocument(mockSvc))

	form := func(t *testing.T, businessID string, withFile bool) (*bytes.Buffer, string) {
		t.Helper()
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		if businessID != "" {
			require.NoError(t, writer.WriteField("business_id", businessID))
		}
		if withFile {
			part, err := writer.CreateFormFile("file", "trade-license.pdf")
			require.NoError(t, err)
			part.Write([]byte("%PDF-1.4"))
		}
		require.NoError(t, writer.Close())
		return body, writer.FormDataContentType()
	}

	t.Run("success", func(t *testing.T) {
		body, ct := form(t, "12", true)
		doc := &model.BusinessDocument{DocumentID: "3f9a", BusinessID: 12, Filename: "trade-license.pdf"}
		mockSvc.On("Upload", mock.Anything, caller, mock.MatchedBy(func(up service.Upload) bool {
			return up.BusinessID == 12 && up.Filename == "trade-license.pdf" && up.Size == 8 && up.Body != nil
		})).Return(doc, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/Business/UploadBusinessDocument", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var got struct {
			Data model.BusinessDocument `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "3f9a", got.Data.DocumentID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no file", func(t *testing.T) {
		body, ct := form(t, "12", false)
		req := httptest.NewRequest(http.MethodPost, "/Business/UploadBusinessDocument", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "FILE_REQUIRED", decodeError(t, resp).Code)
	})

	t.Run("no business", func(t *testing.T) {
		body, ct := form(t, "", true)
		req := httptest.NewRequest(http.MethodPost, "/Business/UploadBusinessDocument", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_INPUT", decodeError(t, resp).Code)
	})

	t.Run("storage failure", func(t *testing.T) {
		body, ct := form(t, "12", true)
		mockSvc.On("Upload", mock.Anything, caller, mock.Anything).Return(nil, errors.New("storage put failed")).Once()

		req := httptest.NewRequest(http.MethodPost, "/Business/UploadBusinessDocument", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestDownloadDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := newApp()
	app.Get("/Business/DownloadBusinessDocument", DownloadDocument(mockSvc))

	t.Run("streams the object", func(t *testing.T) {
		doc := &model.BusinessDocument{DocumentID: "3f9a", Filename: "license.pdf", ContentType: "application/pdf", Size: 8}
		mockSvc.On("Open", mock.Anything, caller, "3f9a").Return(doc, io.NopCloser(strings.NewReader("%PDF-1.4")), nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/Business/DownloadBusinessDocument?document_id=3f9a", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
		assert.Contains(t, resp.Header.Get("Content-Disposition"), "license.pdf")
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "%PDF-1.4", string(body))
		mockSvc.AssertExpectations(t)
	})

	t.Run("not owned", func(t *testing.T) {
		mockSvc.On("Open", mock.Anything, caller, "other").Return(nil, nil, fmt.Errorf("business 2: %w", service.ErrNotFound)).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/Business/DownloadBusinessDocument?document_id=other", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestDailySales(t *testing.T) {
	mockSvc := new(serviceMocks.MockDashboardService)
	app := newApp()
	app.Get("/Dashboard/GetSalesmanDailySales", DailySales(mockSvc))

	sales := &model.DailySales{SaleDate: "2025-06-10", TotalOrders: 2, TotalSales: 150}
	mockSvc.On("DailySales", mock.Anything, caller, "").Return("2025-06-10", sales, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/Dashboard/GetSalesmanDailySales", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var got struct {
		Date string           `json:"date"`
		Data model.DailySales `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "2025-06-10", got.Date)
	assert.Equal(t, *sales, got.Data)
	mockSvc.AssertExpectations(t)
}

func TestSalesmanOrderReport(t *testing.T) {
	mockSvc := new(serviceMocks.MockReportService)
	app := newApp()
	app.Get("/Reports/AllSalesmanOrderReport", SalesmanOrderReport(mockSvc, pagination.DefaultConfig()))

	t.Run("passes filters through", func(t *testing.T) {
		want := repository.SalesmanOrderFilter{
			SalesmanName: "Sam",
			Statuses:     "0,4",
			FromDate:     "2025-06-01",
			Sort:         query.Desc,
		}
		page := pagination.NewPage[model.SalesmanOrder](0, firstPage, nil)
		mockSvc.On("SalesmanOrders", mock.Anything, want, firstPage).Return(page, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/Reports/AllSalesmanOrderReport?salesman_name=Sam&status=0,4&from_date=2025-06-01", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unknown status", func(t *testing.T) {
		want := repository.SalesmanOrderFilter{Statuses: "12", Sort: query.Desc}
		mockSvc.On("SalesmanOrders", mock.Anything, want, firstPage).
			Return(nil, &service.InputError{Field: "status", Message: "unknown status 12"}).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/Reports/AllSalesmanOrderReport?status=12", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

type fakeTokens map[string]int64

func (f fakeTokens) Verify(token string) (int64, error) {
	if id, ok := f[token]; ok {
		return id, nil
	}
	return 0, errors.New("bad token")
}

type fakeSalesmen struct{}

func (fakeSalesmen) Exists(_ context.Context, id int64) (bool, error) { return id == caller, nil }

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})

	masters := new(serviceMocks.MockMasterService)
	users := new(serviceMocks.MockUserService)
	RegisterRoutes(app, Deps{
		Tokens:             fakeTokens{"good": caller},
		Salesmen:           fakeSalesmen{},
		Users:              users,
		Masters:            masters,
		Pagination:         pagination.DefaultConfig(),
		LoginRatePerMinute: 10,
	})

	t.Run("not found route", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/non-existent", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/healthz", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, resp).Code)
	})

	t.Run("token required", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/Masters/GetSalesmanList", nil))

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "UNAUTHORIZED", decodeError(t, resp).Code)
	})

	t.Run("tenant header mismatch", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/Masters/GetSalesmanList", nil)
		req.Header.Set("Authorization", "Bearer good")
		req.Header.Set(middleware.SalesmanHeader, "8")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "FORBIDDEN", decodeError(t, resp).Code)
	})

	t.Run("authenticated", func(t *testing.T) {
		masters.On("SalesmanOptions", mock.Anything).Return([]model.SalesmanOption{{SalesmanID: caller, Name: "Sam"}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/Masters/GetSalesmanList", nil)
		req.Header.Set("Authorization", "Bearer good")
		req.Header.Set(middleware.SalesmanHeader, "7")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		masters.AssertExpectations(t)
	})

	t.Run("login is public", func(t *testing.T) {
		users.On("Login", mock.Anything, model.LoginInput{LoginID: "sam", Password: "x"}).Return(nil, service.ErrInvalidCredentials).Once()

		resp, _ := app.Test(postJSON("/Users/Login", strings.NewReader(`{"business_salesman_login_id":"sam","business_salesman_login_password":"x"}`)))

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, resp).Code)
		users.AssertExpectations(t)
	})
}
