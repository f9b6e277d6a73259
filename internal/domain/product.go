package domain

type Product struct {
	SKU               string  `json:"sku"`
	Name              string  `json:"name"`
	GTIN              string  `json:"gtin"`
	Brand             string  `json:"brand"`
	Category          string  `json:"category"`
	NetUnitPriceInEur Amount  `json:"netUnitPriceInEur"`
	Vat               VatRate `json:"vat"`
}
