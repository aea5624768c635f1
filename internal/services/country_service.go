package services

import (
	"sync"

	"webcabinet/internal/models"
)

// CountryService — телефонный справочник стран. Справочник неизменяемый,
// поэтому после первой удачной загрузки отдаём кэш; неудачная загрузка
// кэш не отравляет.
type CountryService interface {
	// List отдаёт справочник; creds — пара из хранилища для сессионных
	// заголовков исходящего вызова, nil до входа.
	List(creds *models.Credentials) ([]models.Country, error)
}

type countryService struct {
	gw Gateway

	mu     sync.Mutex
	cached []models.Country
}

func NewCountryService(gw Gateway) CountryService {
	return &countryService{gw: gw}
}

func (s *countryService) List(creds *models.Credentials) ([]models.Country, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached != nil {
		return s.cached, nil
	}
	list, err := s.gw.Countries(creds)
	if err != nil {
		return nil, err
	}
	s.cached = list
	return list, nil
}
