package services

import "webcabinet/internal/models"

// Gateway — то, что сервисам нужно от клиента платформенного API.
// Реализуется *gateway.Client, в тестах — фейком.
type Gateway interface {
	Countries(creds *models.Credentials) ([]models.Country, error)
	RegistrationCheck(req models.RegistrationCheckRequest) (*models.APIResponse, error)
	Registration(req models.RegistrationRequest) (*models.APIResponse, error)
	Login(req models.LoginRequest) (*models.APIResponse, error)
}
