package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"webcabinet/internal/models"
)

func TestCountryListCachedAfterFirstFetch(t *testing.T) {
	gw := &fakeGateway{countriesRet: []models.Country{
		{CodeID: 1, NameRU: "Казахстан", Code: "+7", Length: 10},
	}}
	svc := NewCountryService(gw)

	first, err := svc.List(nil)
	require.NoError(t, err)
	second, err := svc.List(nil)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, 1, gw.countriesCalls)
}

func TestCountryListErrorDoesNotPoisonCache(t *testing.T) {
	gw := &fakeGateway{countriesErr: &fakeTransportError{}}
	svc := NewCountryService(gw)

	_, err := svc.List(nil)
	require.Error(t, err)

	// после восстановления связи загрузка повторяется
	gw.countriesErr = nil
	gw.countriesRet = []models.Country{{CodeID: 1, NameRU: "Казахстан", Code: "+7"}}

	list, err := svc.List(nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, 2, gw.countriesCalls)
}

func TestCountryListForwardsStoredCredentials(t *testing.T) {
	gw := &fakeGateway{countriesRet: []models.Country{{CodeID: 1, NameRU: "Казахстан", Code: "+7"}}}
	svc := NewCountryService(gw)

	creds := &models.Credentials{SessionID: "S1", UserID: "42"}
	_, err := svc.List(creds)
	require.NoError(t, err)
	require.Equal(t, creds, gw.countriesCreds)
}
