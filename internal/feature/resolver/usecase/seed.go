package usecase

import "finos_backend/internal/feature/resolver/domain/entity"

// seedEntries is the static alias map seeded into every directory build,
// before any downloaded listing. It covers the well-known shorthand the
// exchange listing never carries (crypto pairs, US tickers, common Indian
// company names), so those resolve even when the listing fetch fails.
//
// Seeding order fixes the alias index order for these entries, which makes
// the prefix/fuzzy tie-breaks deterministic.
var seedEntries = []entity.Entry{
	// US tech
	{Alias: "APPLE", Symbol: "AAPL"},
	{Alias: "MICROSOFT", Symbol: "MSFT"},
	{Alias: "GOOGLE", Symbol: "GOOGL"},
	{Alias: "AMAZON", Symbol: "AMZN"},
	{Alias: "TESLA", Symbol: "TSLA"},
	{Alias: "META", Symbol: "META"},
	{Alias: "NETFLIX", Symbol: "NFLX"},
	{Alias: "NVIDIA", Symbol: "NVDA"},
	{Alias: "AMD", Symbol: "AMD"},
	{Alias: "INTEL", Symbol: "INTC"},
	{Alias: "COINBASE", Symbol: "COIN"},

	// Crypto
	{Alias: "BITCOIN", Symbol: "BTC-USD"},
	{Alias: "BTC", Symbol: "BTC-USD"},
	{Alias: "ETHEREUM", Symbol: "ETH-USD"},
	{Alias: "ETH", Symbol: "ETH-USD"},
	{Alias: "SOLANA", Symbol: "SOL-USD"},
	{Alias: "SOL", Symbol: "SOL-USD"},
	{Alias: "DOGECOIN", Symbol: "DOGE-USD"},
	{Alias: "DOGE", Symbol: "DOGE-USD"},
	{Alias: "RIPPLE", Symbol: "XRP-USD"},
	{Alias: "XRP", Symbol: "XRP-USD"},
	{Alias: "CARDANO", Symbol: "ADA-USD"},
	{Alias: "ADA", Symbol: "ADA-USD"},
	{Alias: "SHIBA", Symbol: "SHIB-USD"},
	{Alias: "SHIB", Symbol: "SHIB-USD"},
	{Alias: "MATIC", Symbol: "MATIC-USD"},
	{Alias: "POLYGON", Symbol: "MATIC-USD"},

	// NSE large caps by common name
	{Alias: "RELIANCE", Symbol: "RELIANCE.NS"},
	{Alias: "RIL", Symbol: "RELIANCE.NS"},
	{Alias: "TCS", Symbol: "TCS.NS"},
	{Alias: "TATA CONSULTANCY", Symbol: "TCS.NS"},
	{Alias: "HDFC BANK", Symbol: "HDFCBANK.NS"},
	{Alias: "HDFC", Symbol: "HDFCBANK.NS"},
	{Alias: "INFOSYS", Symbol: "INFY.NS"},
	{Alias: "INFY", Symbol: "INFY.NS"},
	{Alias: "ICICI", Symbol: "ICICIBANK.NS"},
	{Alias: "ICICI BANK", Symbol: "ICICIBANK.NS"},
	{Alias: "SBI", Symbol: "SBIN.NS"},
	{Alias: "STATE BANK", Symbol: "SBIN.NS"},
	{Alias: "BHARTI AIRTEL", Symbol: "BHARTIARTL.NS"},
	{Alias: "AIRTEL", Symbol: "BHARTIARTL.NS"},
	{Alias: "ITC", Symbol: "ITC.NS"},
	{Alias: "KOTAK", Symbol: "KOTAKBANK.NS"},
	{Alias: "KOTAK BANK", Symbol: "KOTAKBANK.NS"},
	{Alias: "L&T", Symbol: "LT.NS"},
	{Alias: "LARSEN", Symbol: "LT.NS"},
	{Alias: "AXIS BANK", Symbol: "AXISBANK.NS"},
	{Alias: "AXIS", Symbol: "AXISBANK.NS"},
	{Alias: "HUL", Symbol: "HINDUNILVR.NS"},
	{Alias: "HINDUSTAN UNILEVER", Symbol: "HINDUNILVR.NS"},
	{Alias: "TATA MOTORS", Symbol: "TATAMOTORS.NS"},
	{Alias: "MARUTI", Symbol: "MARUTI.NS"},
	{Alias: "SUN PHARMA", Symbol: "SUNPHARMA.NS"},
	{Alias: "ASIAN PAINTS", Symbol: "ASIANPAINT.NS"},
	{Alias: "TITAN", Symbol: "TITAN.NS"},
	{Alias: "BAJAJ FINANCE", Symbol: "BAJFINANCE.NS"},
	{Alias: "ULTRATECH", Symbol: "ULTRACEMCO.NS"},
	{Alias: "WIPRO", Symbol: "WIPRO.NS"},
	{Alias: "NESTLE", Symbol: "NESTLEIND.NS"},
	{Alias: "ZOMATO", Symbol: "ZOMATO.NS"},
	{Alias: "PAYTM", Symbol: "PAYTM.NS"},
	{Alias: "JIO", Symbol: "JIOFIN.NS"},
	{Alias: "JIO FINANCIAL", Symbol: "JIOFIN.NS"},
	{Alias: "OLA", Symbol: "OLAELEC.NS"},
	{Alias: "OLA ELECTRIC", Symbol: "OLAELEC.NS"},
}

// SeedEntries returns a copy of the static seed map, mainly for tests and
// for building a directory when no listing source is configured.
func SeedEntries() []entity.Entry {
	out := make([]entity.Entry, len(seedEntries))
	copy(out, seedEntries)
	return out
}
