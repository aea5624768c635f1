package services

import (
	"github.com/gin-gonic/gin"

	"webcabinet/internal/models"
)

// fakeGateway реализует Gateway для юнит-тестов сервисов: канённые ответы
// плюс счётчики и последние аргументы для проверок.
type fakeGateway struct {
	countriesRet   []models.Country
	countriesErr   error
	countriesCalls int
	countriesCreds *models.Credentials

	checkResp  *models.APIResponse
	checkErr   error
	checkCalls int
	lastCheck  models.RegistrationCheckRequest

	regResp  *models.APIResponse
	regErr   error
	regCalls int
	lastReg  models.RegistrationRequest

	loginResp  *models.APIResponse
	loginErr   error
	loginCalls int
	lastLogin  models.LoginRequest
}

func (f *fakeGateway) Countries(creds *models.Credentials) ([]models.Country, error) {
	f.countriesCalls++
	f.countriesCreds = creds
	return f.countriesRet, f.countriesErr
}

func (f *fakeGateway) RegistrationCheck(req models.RegistrationCheckRequest) (*models.APIResponse, error) {
	f.checkCalls++
	f.lastCheck = req
	return f.checkResp, f.checkErr
}

func (f *fakeGateway) Registration(req models.RegistrationRequest) (*models.APIResponse, error) {
	f.regCalls++
	f.lastReg = req
	return f.regResp, f.regErr
}

func (f *fakeGateway) Login(req models.LoginRequest) (*models.APIResponse, error) {
	f.loginCalls++
	f.lastLogin = req
	return f.loginResp, f.loginErr
}

func okResponse() *models.APIResponse {
	return &models.APIResponse{Output: models.Output{Result: true}}
}

func rejectedResponse(msg string) *models.APIResponse {
	return &models.APIResponse{Output: models.Output{Result: false, MessageRU: msg}}
}

// fakeSessionRepo — зеркало сессий в памяти.
type fakeSessionRepo struct {
	saved   map[string]models.Credentials
	saveErr error
	getErr  error
	deleted []string
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{saved: make(map[string]models.Credentials)}
}

func (f *fakeSessionRepo) Save(viewID string, creds *models.Credentials) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved[viewID] = *creds
	return nil
}

func (f *fakeSessionRepo) Get(viewID string) (*models.Credentials, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	c, ok := f.saved[viewID]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeSessionRepo) Delete(viewID string) error {
	f.deleted = append(f.deleted, viewID)
	delete(f.saved, viewID)
	return nil
}

// fakeSessions — SessionService для тестов AuthService.
type fakeSessions struct {
	established    []models.Credentials
	establishErr   error
	logoutCalls    int
	ensuredViewID  string
	mirror         *models.Credentials
	fromCookiesRet models.Credentials
	fromCookiesOK  bool
}

func (f *fakeSessions) Establish(c *gin.Context, creds models.Credentials) error {
	if f.establishErr != nil {
		return f.establishErr
	}
	f.established = append(f.established, creds)
	return nil
}

func (f *fakeSessions) FromCookies(c *gin.Context) (models.Credentials, bool) {
	return f.fromCookiesRet, f.fromCookiesOK
}

func (f *fakeSessions) Mirror(viewID string) (*models.Credentials, error) {
	return f.mirror, nil
}

func (f *fakeSessions) Logout(c *gin.Context) error {
	f.logoutCalls++
	return nil
}

func (f *fakeSessions) EnsureViewID(c *gin.Context) string {
	if f.ensuredViewID == "" {
		return "view-test"
	}
	return f.ensuredViewID
}
