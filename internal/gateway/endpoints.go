package gateway

import (
	"net/http"

	"webcabinet/internal/models"
)

// Типизированные обёртки над эндпоинтами платформы. Вызовы рукопожатий идут
// без сессионных заголовков — гард не пускает на эти поверхности с сессией,
// так что пары в хранилище на этих шагах нет по построению. Справочник
// доступен и до, и после входа, поэтому принимает пару из хранилища.

// Countries загружает справочник стран; creds — пара из хранилища, nil до входа.
func (c *Client) Countries(creds *models.Credentials) ([]models.Country, error) {
	var out models.CountriesResponse
	if err := c.Do(http.MethodGet, "/v1/countries", creds, nil, &out); err != nil {
		return nil, err
	}
	// Маркер успеха — наличие массива countries, а не конверт output.
	if out.Countries == nil {
		return nil, &APIError{Status: http.StatusOK, Message: "countries payload missing"}
	}
	return out.Countries, nil
}

func (c *Client) RegistrationCheck(req models.RegistrationCheckRequest) (*models.APIResponse, error) {
	var out models.APIResponse
	if err := c.Do(http.MethodPost, "/v1/registration/check", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Registration обслуживает оба шага: отправку кода и финальное подтверждение.
// Сервер различает их по наличию code/install_url в теле.
func (c *Client) Registration(req models.RegistrationRequest) (*models.APIResponse, error) {
	var out models.APIResponse
	if err := c.Do(http.MethodPost, "/v1/registration", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(req models.LoginRequest) (*models.APIResponse, error) {
	var out models.APIResponse
	if err := c.Do(http.MethodPost, "/v1/login", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
