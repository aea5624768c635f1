package services

import (
	"log"

	"webcabinet/internal/models"
)

// Код страны телефона у веб-регистрации зафиксирован протоколом.
const phoneCodeID = 1

// StepTag — метка состояния рукопожатия регистрации, хранится в подписанном
// черновике между шагами. Drafting метки не имеет: черновика ещё нет;
// завершение тоже — черновик при нём стирается.
type StepTag string

const (
	StepEligible StepTag = "eligible"  // проверка пройдена, собираем логин/пароль
	StepCodeSent StepTag = "code_sent" // код отправлен на почту, ждём ввода
)

// RegistrationService — трёхшаговое рукопожатие регистрации:
// Drafting → Eligible → CodeSent → Completed. Каждый шаг — отдельный
// идемпотентный вызов; любой отказ оставляет состояние как было, пользователь
// может повторить тот же шаг. Повторная отправка кода — это повтор
// InitiateVerification по инициативе пользователя, никаких таймеров.
type RegistrationService interface {
	// CheckEligibility — серверная проверка, что регистрация возможна.
	CheckEligibility(draft models.RegistrationDraft) error
	// InitiateVerification просит сервер отправить код подтверждения на почту.
	InitiateVerification(login, password, passwordConfirm string, draft models.RegistrationDraft) error
	// CompleteRegistration завершает регистрацию кодом из письма.
	CompleteRegistration(login, password, passwordConfirm, code string, draft models.RegistrationDraft) error
}

type registrationService struct {
	gw         Gateway
	installURL string // фиксированная метка источника установки
}

func NewRegistrationService(gw Gateway, installURL string) RegistrationService {
	return &registrationService{gw: gw, installURL: installURL}
}

func (s *registrationService) CheckEligibility(draft models.RegistrationDraft) error {
	if !draft.Accept {
		return ErrAgreementNotAccepted
	}

	resp, err := s.gw.RegistrationCheck(models.RegistrationCheckRequest{
		Accept: draft.Accept,
		Name:   draft.Name,
		Phone:  draft.Phone,
		CodeID: draft.CodeID,
		Email:  draft.Email,
	})
	if err != nil {
		return err
	}
	if !resp.Output.Result {
		log.Printf("[registration][check] rejected email=%q", draft.Email)
		return &RegistrationRejectedError{Message: resp.Output.MessageRU}
	}
	return nil
}

func (s *registrationService) InitiateVerification(login, password, passwordConfirm string, draft models.RegistrationDraft) error {
	if password != passwordConfirm {
		return ErrPasswordMismatch
	}

	resp, err := s.gw.Registration(s.baseRequest(login, password, draft))
	if err != nil {
		return err
	}
	if !resp.Output.Result {
		log.Printf("[registration][initiate] rejected login=%q", login)
		return &RegistrationRejectedError{Message: resp.Output.MessageRU}
	}
	log.Printf("[registration][initiate] код отправлен email=%q", draft.Email)
	return nil
}

func (s *registrationService) CompleteRegistration(login, password, passwordConfirm, code string, draft models.RegistrationDraft) error {
	if password != passwordConfirm {
		return ErrPasswordMismatch
	}

	req := s.baseRequest(login, password, draft)
	req.Code = code
	req.InstallURL = s.installURL

	resp, err := s.gw.Registration(req)
	if err != nil {
		return err
	}
	if !resp.Output.Result {
		log.Printf("[registration][complete] rejected login=%q", login)
		return &RegistrationRejectedError{Message: resp.Output.MessageRU}
	}
	log.Printf("[registration][complete] success login=%q", login)
	return nil
}

func (s *registrationService) baseRequest(login, password string, draft models.RegistrationDraft) models.RegistrationRequest {
	return models.RegistrationRequest{
		Login:       login,
		Password:    password,
		Email:       draft.Email,
		Phone:       draft.Phone,
		PhoneCodeID: phoneCodeID,
		Name:        draft.Name,
		Accept:      draft.Accept,
	}
}
