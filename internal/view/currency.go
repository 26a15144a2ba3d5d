package view

import (
	"strconv"
	"strings"

	"github.com/restomenu/restomenu/internal/domain"
)

// Symbol lookup by currency code, with an Arabic-specific table for locales
// that render their own glyphs. Unknown codes fall back to the code itself.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"SAR": "SAR",
	"AED": "AED",
	"KWD": "KWD",
	"QAR": "QAR",
	"BHD": "BHD",
	"OMR": "OMR",
	"EGP": "EGP",
	"JOD": "JOD",
	"TRY": "₺",
}

var currencySymbolsAr = map[string]string{
	"SAR": "ر.س",
	"AED": "د.إ",
	"KWD": "د.ك",
	"QAR": "ر.ق",
	"BHD": "د.ب",
	"OMR": "ر.ع",
	"EGP": "ج.م",
	"JOD": "د.أ",
}

// CurrencySymbol resolves the display symbol for a currency code.
func CurrencySymbol(code, locale string) string {
	code = strings.ToUpper(code)

	if locale == domain.LocaleAR {
		if sym, ok := currencySymbolsAr[code]; ok {
			return sym
		}
	}

	if sym, ok := currencySymbols[code]; ok {
		return sym
	}

	return code
}

// FormatPrice renders "{price} {symbol}".
func FormatPrice(price float64, code, locale string) string {
	return strconv.FormatFloat(price, 'f', -1, 64) + " " + CurrencySymbol(code, locale)
}
