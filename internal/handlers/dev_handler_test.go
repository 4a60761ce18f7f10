package handlers

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-view/internal/dto"
	"finance-view/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type DevHandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *service_mocks.MockDemoDataServiceInterface
	handler *DevHandler
	echo    *echo.Echo
}

func TestDevHandlerSuite(t *testing.T) {
	suite.Run(t, new(DevHandlerSuite))
}

func (s *DevHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = service_mocks.NewMockDemoDataServiceInterface(s.ctrl)
	s.handler = NewDevHandler(s.service, nil)
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

func (s *DevHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DevHandlerSuite) serve(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, nil)
	rec := httptest.NewRecorder()
	s.Require().NoError(s.handler.GenerateDemoData(s.echo.NewContext(req, rec)))
	return rec
}

func (s *DevHandlerSuite) errorResponse(rec *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func (s *DevHandlerSuite) TestGenerateDemoData() {
	s.service.EXPECT().GenerateDemoData(dto.DemoDataRequest{Days: 30, Seed: 9}).Return(&dto.DemoDataResponse{
		TransactionsCreated: 64,
		Accounts:            []string{"Everyday Checking ••0042"},
		StartDate:           "05/17/2024",
		EndDate:             "06/15/2024",
	}, nil)

	rec := s.serve("/api/v1/dev/demo-data?days=30&seed=9")

	s.Equal(http.StatusCreated, rec.Code)
	var resp dto.DemoDataResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(64, resp.TransactionsCreated)
	s.Equal("05/17/2024", resp.StartDate)
}

func (s *DevHandlerSuite) TestGenerateDemoData_Defaults() {
	s.service.EXPECT().GenerateDemoData(dto.DemoDataRequest{}).Return(&dto.DemoDataResponse{}, nil)

	rec := s.serve("/api/v1/dev/demo-data")
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *DevHandlerSuite) TestGenerateDemoData_NotANumber() {
	rec := s.serve("/api/v1/dev/demo-data?days=lots")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", s.errorResponse(rec).Error.Code)
}

func (s *DevHandlerSuite) TestGenerateDemoData_OutOfRange() {
	rec := s.serve("/api/v1/dev/demo-data?days=9999")

	s.Equal(http.StatusBadRequest, rec.Code)
	resp := s.errorResponse(rec)
	s.Equal("VALIDATION_001", resp.Error.Code)
	s.Contains(resp.Error.Details, "days: must be at most 730")
}

func (s *DevHandlerSuite) TestGenerateDemoData_ServiceError() {
	s.service.EXPECT().GenerateDemoData(gomock.Any()).Return(nil, stderrors.New("database error"))

	rec := s.serve("/api/v1/dev/demo-data?days=10")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", s.errorResponse(rec).Error.Code)
}

func (s *DevHandlerSuite) TestRegisterDevRoutes() {
	e := echo.New()
	RegisterDevRoutes(e, s.handler)

	found := false
	for _, route := range e.Routes() {
		if route.Method == http.MethodPost && route.Path == "/api/v1/dev/demo-data" {
			found = true
		}
	}
	s.True(found)
}
