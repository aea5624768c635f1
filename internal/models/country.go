package models

// Country — запись телефонного справочника /v1/countries. Только чтение.
type Country struct {
	CodeID int    `json:"code_id"`
	NameRU string `json:"name_ru"`
	Code   string `json:"code"`           // телефонный код, например "+7"
	Flag   string `json:"flag,omitempty"` // emoji-флаг, может отсутствовать
	Length int    `json:"length,omitempty"`
}

type CountriesResponse struct {
	Countries []Country `json:"countries"`
}
