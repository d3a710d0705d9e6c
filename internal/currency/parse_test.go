package currency

import (
	"testing"

	"coffee-fund-bot/internal/models"
)

func TestParse(t *testing.T) {
	cases := []struct {
		input    string
		expected models.Rappen
	}{
		{"2", 200},
		{"2.-", 200},
		{"2.0", 200},
		{"2.00", 200},
		{"-.05", 5},
		{"1,20", 120},
		{"1,2", 120},
		{"-2.5", -250},
		{"- 1.-", -100},
		{"--.05", -5},
		{"0.-", 0},
		{"0", 0},
		{"1200.50", 120050},
	}

	for _, tc := range cases {
		actual, err := Parse(tc.input)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tc.input, err)
			continue
		}
		if actual != tc.expected {
			t.Errorf("Parse(%q) = %d, expected %d", tc.input, actual, tc.expected)
		}
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	inputs := []string{
		"",
		"-",
		"- ",
		"2.005",
		"2.",
		"2,",
		".5",
		"- .05",
		"abc",
		"2 coffees",
		"1.2.3",
		"2.0x",
		" 2",
		"2 ",
		"-.{}",
		"-.-",
	}

	for _, input := range inputs {
		if amount, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) = %d, expected an error", input, amount)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for amount := models.Rappen(-25000); amount <= 25000; amount++ {
		formatted := Format(amount)

		parsed, err := Parse(formatted)
		if err != nil {
			t.Fatalf("Parse(Format(%d)) = Parse(%q) failed: %v", amount, formatted, err)
		}
		if parsed != amount {
			t.Fatalf("Parse(Format(%d)) = Parse(%q) = %d", amount, formatted, parsed)
		}
	}
}
