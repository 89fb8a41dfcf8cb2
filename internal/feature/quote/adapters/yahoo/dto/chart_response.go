// Package dto defines data transfer objects for the Yahoo Finance chart API.
package dto

// ChartMeta is the meta block of a single chart result. The price is a
// pointer so a missing field is distinguishable from a zero price.
type ChartMeta struct {
	Currency             string   `json:"currency"`
	Symbol               string   `json:"symbol"`
	RegularMarketPrice   *float64 `json:"regularMarketPrice"`
	PreviousClose        float64  `json:"previousClose"`
	ChartPreviousClose   float64  `json:"chartPreviousClose"`
	RegularMarketDayHigh float64  `json:"regularMarketDayHigh"`
	RegularMarketDayLow  float64  `json:"regularMarketDayLow"`
	RegularMarketVolume  int64    `json:"regularMarketVolume"`
}

// ChartResponse represents the JSON response from the v8 finance chart
// endpoint. Only the meta block is consumed.
type ChartResponse struct {
	Chart struct {
		Result []struct {
			Meta ChartMeta `json:"meta"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}
