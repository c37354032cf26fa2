package fixed

import "github.com/rshade/streamfmt/internal/sink"

// FormatFixed returns the Fixed rendering of value / 10^digits.
func FormatFixed(value int64, digits int) (string, error) {
	var b sink.Buffer
	if err := Fixed(&b, value, digits); err != nil {
		return "", err
	}
	return b.String(), nil
}

// FormatDynamic returns the Dynamic rendering of value / 10^digits.
func FormatDynamic(value int64, digits, budget int) (string, error) {
	var b sink.Buffer
	if err := Dynamic(&b, value, digits, budget); err != nil {
		return "", err
	}
	return b.String(), nil
}

// FormatLeading0 returns the Leading0 rendering of value / 10^digits.
func FormatLeading0(value int64, digits, width int) (string, error) {
	var b sink.Buffer
	if err := Leading0(&b, value, digits, width); err != nil {
		return "", err
	}
	return b.String(), nil
}
