package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"webcabinet/internal/models"
)

func testDraft() models.RegistrationDraft {
	return models.RegistrationDraft{
		Name: "Иван", Phone: "7010000000", DialCode: "+7", CodeID: 1,
		Email: "ivan@example.com", Accept: true,
	}
}

func TestCheckEligibilityWithoutAcceptanceSkipsNetwork(t *testing.T) {
	gw := &fakeGateway{checkResp: okResponse()}
	svc := NewRegistrationService(gw, "https://cabinet.example.com")

	draft := testDraft()
	draft.Accept = false

	err := svc.CheckEligibility(draft)
	require.ErrorIs(t, err, ErrAgreementNotAccepted)
	require.Zero(t, gw.checkCalls) // до сети не дошли
}

func TestCheckEligibilitySendsDraftFields(t *testing.T) {
	gw := &fakeGateway{checkResp: okResponse()}
	svc := NewRegistrationService(gw, "https://cabinet.example.com")

	require.NoError(t, svc.CheckEligibility(testDraft()))
	require.Equal(t, 1, gw.checkCalls)
	require.True(t, gw.lastCheck.Accept)
	require.Equal(t, "Иван", gw.lastCheck.Name)
	require.Equal(t, "7010000000", gw.lastCheck.Phone)
	require.Equal(t, 1, gw.lastCheck.CodeID)
	require.Equal(t, "ivan@example.com", gw.lastCheck.Email)
}

func TestCheckEligibilityRejected(t *testing.T) {
	gw := &fakeGateway{checkResp: rejectedResponse("Номер уже зарегистрирован")}
	svc := NewRegistrationService(gw, "https://cabinet.example.com")

	err := svc.CheckEligibility(testDraft())
	var rej *RegistrationRejectedError
	require.ErrorAs(t, err, &rej)
	require.Equal(t, "Номер уже зарегистрирован", rej.Message)
}

func TestInitiatePasswordMismatchSkipsNetwork(t *testing.T) {
	gw := &fakeGateway{regResp: okResponse()}
	svc := NewRegistrationService(gw, "https://cabinet.example.com")

	err := svc.InitiateVerification("user", "pw1", "pw2", testDraft())
	require.ErrorIs(t, err, ErrPasswordMismatch)
	require.Zero(t, gw.regCalls)
}

func TestInitiateSendsFixedPhoneCodeID(t *testing.T) {
	gw := &fakeGateway{regResp: okResponse()}
	svc := NewRegistrationService(gw, "https://cabinet.example.com")

	require.NoError(t, svc.InitiateVerification("user", "pw", "pw", testDraft()))
	require.Equal(t, 1, gw.regCalls)
	require.Equal(t, 1, gw.lastReg.PhoneCodeID)
	require.Equal(t, "user", gw.lastReg.Login)
	require.True(t, gw.lastReg.Accept)
	// на этапе отправки кода финальных полей нет
	require.Empty(t, gw.lastReg.Code)
	require.Empty(t, gw.lastReg.InstallURL)
}

func TestCompletePasswordMismatchSkipsNetwork(t *testing.T) {
	gw := &fakeGateway{regResp: okResponse()}
	svc := NewRegistrationService(gw, "https://cabinet.example.com")

	err := svc.CompleteRegistration("user", "pw1", "pw2", "123456", testDraft())
	require.ErrorIs(t, err, ErrPasswordMismatch)
	require.Zero(t, gw.regCalls)
}

func TestCompleteSendsCodeAndInstallURL(t *testing.T) {
	gw := &fakeGateway{regResp: okResponse()}
	svc := NewRegistrationService(gw, "https://cabinet.example.com")

	require.NoError(t, svc.CompleteRegistration("user", "pw", "pw", "123456", testDraft()))
	require.Equal(t, "123456", gw.lastReg.Code)
	require.Equal(t, "https://cabinet.example.com", gw.lastReg.InstallURL)
}

func TestCompleteRejectedUsesFallbackMessage(t *testing.T) {
	gw := &fakeGateway{regResp: rejectedResponse("")}
	svc := NewRegistrationService(gw, "https://cabinet.example.com")

	err := svc.CompleteRegistration("user", "pw", "pw", "000000", testDraft())
	var rej *RegistrationRejectedError
	require.ErrorAs(t, err, &rej)
	require.Equal(t, fallbackRegistrationMessage, rej.Error())
}

func TestRegistrationTransportErrorPassesThrough(t *testing.T) {
	wantErr := &fakeTransportError{}
	gw := &fakeGateway{regErr: wantErr}
	svc := NewRegistrationService(gw, "https://cabinet.example.com")

	err := svc.InitiateVerification("user", "pw", "pw", testDraft())
	require.ErrorIs(t, err, wantErr)
}

type fakeTransportError struct{}

func (e *fakeTransportError) Error() string { return "connection refused" }
