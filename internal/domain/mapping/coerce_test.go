package mapping

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerce_DecimalCleansing(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "1250.75", "1250.75"},
		{"thousands separators", "1,250,000", "1250000"},
		{"slash decimal point", "1250/75", "1250.75"},
		{"persian digits", "۱۲۵۰", "1250"},
		{"persian digits with separator", "۱٬۲۵۰٫۵", "1250.5"},
		{"arabic indic digits", "٣٤٥", "345"},
		{"surrounding whitespace", "  42.5  ", "42.5"},
		{"internal spaces", "1 250", "1250"},
		{"negative", "-12.5", "-12.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Coerce(tt.input, DataTypeDecimal, "", false, "amount")
			require.NoError(t, err)
			require.Equal(t, KindDecimal, got.Kind())
			assert.True(t, got.AsDecimal().Equal(decimal.RequireFromString(tt.want)),
				"got %s want %s", got.AsDecimal(), tt.want)
		})
	}
}

func TestCoerce_DecimalInvalid(t *testing.T) {
	_, err := Coerce("abc", DataTypeDecimal, "", false, "amount")
	require.Error(t, err)
	var cerr *CoercionError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "amount", cerr.Column)
	assert.Equal(t, DataTypeDecimal, cerr.Type)
}

func TestCoerce_IntegerTruncates(t *testing.T) {
	got, err := Coerce("12.9", DataTypeInteger, "", false, "qty")
	require.NoError(t, err)
	assert.True(t, got.AsDecimal().Equal(decimal.NewFromInt(12)))
}

func TestCoerce_Dates(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"iso date", "2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"iso datetime", "2024-03-15 10:30:00", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"slash date", "2024/03/15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"day first", "15/03/2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"persian digits", "۲۰۲۴-۰۳-۱۵", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Coerce(tt.input, DataTypeDate, "", false, "date")
			require.NoError(t, err)
			require.Equal(t, KindDate, got.Kind())
			assert.True(t, got.AsDate().Equal(tt.want), "got %s want %s", got.AsDate(), tt.want)
		})
	}

	_, err := Coerce("not a date", DataTypeDate, "", false, "date")
	var cerr *CoercionError
	require.ErrorAs(t, err, &cerr)
}

func TestCoerce_Booleans(t *testing.T) {
	affirmative := []string{"true", "TRUE", "yes", "Y", "1", "بله", "آری"}
	for _, in := range affirmative {
		got, err := Coerce(in, DataTypeBoolean, "", false, "flag")
		require.NoError(t, err, in)
		assert.True(t, got.AsBool(), in)
	}

	negative := []string{"false", "no", "0", "خیر", "anything else"}
	for _, in := range negative {
		got, err := Coerce(in, DataTypeBoolean, "", false, "flag")
		require.NoError(t, err, in)
		assert.False(t, got.AsBool(), in)
	}
}

func TestCoerce_EmptyAndDefaults(t *testing.T) {
	t.Run("optional empty yields null", func(t *testing.T) {
		got, err := Coerce("", DataTypeDecimal, "", false, "amount")
		require.NoError(t, err)
		assert.True(t, got.IsNull())
	})

	t.Run("optional empty text yields empty text", func(t *testing.T) {
		got, err := Coerce("", DataTypeText, "", false, "note")
		require.NoError(t, err)
		assert.Equal(t, KindText, got.Kind())
		assert.Equal(t, "", got.AsText())
	})

	t.Run("default fills empty", func(t *testing.T) {
		got, err := Coerce("", DataTypeDecimal, "0", false, "amount")
		require.NoError(t, err)
		assert.True(t, got.AsDecimal().IsZero())
	})

	t.Run("required empty fails", func(t *testing.T) {
		_, err := Coerce("", DataTypeText, "", true, "label")
		var merr *MissingRequiredFieldError
		require.ErrorAs(t, err, &merr)
		assert.Equal(t, "label", merr.Column)
	})

	t.Run("required with default passes", func(t *testing.T) {
		got, err := Coerce("", DataTypeText, "fallback", true, "label")
		require.NoError(t, err)
		assert.Equal(t, "fallback", got.AsText())
	})
}

func TestCoerce_TextTrims(t *testing.T) {
	got, err := Coerce("  hello  ", DataTypeText, "", false, "note")
	require.NoError(t, err)
	assert.Equal(t, "hello", got.AsText())
}
