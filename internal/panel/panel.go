// Package panel держит состояние вспомогательных панелей кабинета:
// какая панель открыта в правой части двухпанельной раскладки и на каком
// шаге находятся многошаговые панели. Состояние чисто клиентское,
// серверных вызовов открытие/закрытие панели не делает.
package panel

import "fmt"

// Panel — закрытый набор панелей. Неизвестная панель непредставима:
// строка с границы HTTP проходит через Parse.
type Panel int

const (
	None Panel = iota
	BalanceTopUp
	BalanceHistory
	BonusExchange
	Tariff
	DeviceList
	AccountDeletion
	FAQ
	Complaint
	Feedback
	Archive
	Analysis
	Description
	Partner
	PromoCode
	Notifications
	Support
	Profile
	Security
	Payments
	Referral
	News
)

var panelNames = map[Panel]string{
	None:            "none",
	BalanceTopUp:    "balance-topup",
	BalanceHistory:  "balance-history",
	BonusExchange:   "bonus-exchange",
	Tariff:          "tariff",
	DeviceList:      "device-list",
	AccountDeletion: "account-deletion",
	FAQ:             "faq",
	Complaint:       "complaint",
	Feedback:        "feedback",
	Archive:         "archive",
	Analysis:        "analysis",
	Description:     "description",
	Partner:         "partner",
	PromoCode:       "promo-code",
	Notifications:   "notifications",
	Support:         "support",
	Profile:         "profile",
	Security:        "security",
	Payments:        "payments",
	Referral:        "referral",
	News:            "news",
}

func (p Panel) String() string {
	if s, ok := panelNames[p]; ok {
		return s
	}
	return "none"
}

// Parse — обратное отображение для HTTP-границы. "none" не принимаем:
// закрытие делается отдельной операцией Close.
func Parse(s string) (Panel, error) {
	for p, name := range panelNames {
		if p != None && name == s {
			return p, nil
		}
	}
	return None, fmt.Errorf("unknown panel %q", s)
}

// Step — шаг внутри многошаговой панели.
type Step int

const (
	StepForm Step = iota
	StepDetails
	StepModal
	StepResults
	StepProcessing
)

var stepNames = map[Step]string{
	StepForm:       "form",
	StepDetails:    "details",
	StepModal:      "modal",
	StepResults:    "results",
	StepProcessing: "processing",
}

func (s Step) String() string { return stepNames[s] }

// Последовательности шагов двух многошаговых панелей. У остальных панелей
// шагов нет, их Step всегда StepForm.
var stepSequences = map[Panel][]Step{
	Analysis:    {StepForm, StepDetails, StepModal, StepResults},
	Description: {StepForm, StepDetails, StepModal, StepProcessing},
}

// HasSteps — у панели есть последовательность шагов.
func HasSteps(p Panel) bool {
	_, ok := stepSequences[p]
	return ok
}
