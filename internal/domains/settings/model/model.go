package model

import "tripdesk/shared/model"

const (
	TableName  = "app_settings"
	EntityName = "app_setting"

	FieldKey   = "key"
	FieldValue = "value"
)

const (
	KeyExchangeRates   = "exchange_rates"
	KeyDisplayCurrency = "display_currency"
	KeyCompanyProfile  = "company_profile"
	KeyTheme           = "theme"
	KeyLanguage        = "language"
)

// Setting is one key-value configuration row. Values are JSON documents with
// last-write-wins semantics and no schema versioning.
type Setting struct {
	Key   string `db:"key"`
	Value string `db:"value"`
	model.Metadata
}
