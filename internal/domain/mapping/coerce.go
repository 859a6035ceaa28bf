package mapping

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// affirmativeTokens are the case-insensitive inputs accepted as boolean true.
// The Persian tokens match the language the source spreadsheets arrive in.
var affirmativeTokens = map[string]bool{
	"true": true,
	"yes":  true,
	"y":    true,
	"1":    true,
	"بله":  true,
	"آری":  true,
}

// dateLayouts are the textual date formats accepted by DATE coercion, tried in
// order. Spreadsheet exports are inconsistent about separators and time parts.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"02-01-2006",
	"1/2/2006",
}

// digitFolds maps Persian and Arabic-Indic digits (and the momayez decimal
// separator) to their ASCII equivalents.
var digitFolds = map[rune]rune{
	'۰': '0', '۱': '1', '۲': '2', '۳': '3', '۴': '4',
	'۵': '5', '۶': '6', '۷': '7', '۸': '8', '۹': '9',
	'٠': '0', '١': '1', '٢': '2', '٣': '3', '٤': '4',
	'٥': '5', '٦': '6', '٧': '7', '٨': '8', '٩': '9',
	'٫': '.', '٬': ',',
}

// Coerce converts one raw cell value to the declared data type.
//
// Empty input (after trimming) resolves to the default value when one is
// declared, otherwise to Null. A required field that still resolves to
// empty/null fails with MissingRequiredFieldError naming the source column.
// Non-empty input that cannot be parsed fails with CoercionError.
func Coerce(raw string, dataType DataType, defaultValue string, required bool, column string) (RawValue, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		value = strings.TrimSpace(defaultValue)
	}
	if value == "" {
		if required {
			return Null(), NewMissingRequiredFieldError(column, "")
		}
		if dataType == DataTypeText {
			return Text(""), nil
		}
		return Null(), nil
	}

	switch dataType {
	case DataTypeText:
		return Text(value), nil

	case DataTypeDecimal:
		d, err := parseDecimal(value)
		if err != nil {
			return Null(), NewCoercionError(column, raw, dataType, "not a number")
		}
		return Decimal(d), nil

	case DataTypeInteger:
		d, err := parseDecimal(value)
		if err != nil {
			return Null(), NewCoercionError(column, raw, dataType, "not a number")
		}
		return Decimal(d.Truncate(0)), nil

	case DataTypeDate:
		t, ok := parseDate(value)
		if !ok {
			return Null(), NewCoercionError(column, raw, dataType, "unrecognized date format")
		}
		return Date(t), nil

	case DataTypeBoolean:
		return Bool(affirmativeTokens[strings.ToLower(value)]), nil

	default:
		return Null(), NewCoercionError(column, raw, dataType, "unknown data type")
	}
}

// parseDecimal cleans locale noise out of a numeric string and parses it.
// Thousands separators and spaces are stripped; "/" is a common stand-in for
// the decimal separator in Persian spreadsheets and is mapped to ".".
func parseDecimal(s string) (decimal.Decimal, error) {
	cleaned := foldDigits(s)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "/", ".")
	return decimal.NewFromString(cleaned)
}

// parseDate tries the accepted textual layouts in order.
func parseDate(s string) (time.Time, bool) {
	folded := foldDigits(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, folded); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// foldDigits rewrites Persian/Arabic-Indic digits to ASCII.
func foldDigits(s string) string {
	var needsFold bool
	for _, r := range s {
		if _, ok := digitFolds[r]; ok {
			needsFold = true
			break
		}
	}
	if !needsFold {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if folded, ok := digitFolds[r]; ok {
			sb.WriteRune(folded)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
