package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/orderdesk/pkg/validate"
)

type orderInput struct {
	Description string `json:"orderDescription" validate:"required,max=100"`
	Note        string `json:"note" validate:"nullable,max=10"`
	Quantity    int    `json:"quantity" validate:"nullable,min=1"`
}

func TestRequiredField(t *testing.T) {
	errs := validate.Struct(&orderInput{})
	assert.True(t, validate.HasErrors(errs))
	assert.Contains(t, errs, "orderDescription")
}

func TestRequiredRejectsWhitespace(t *testing.T) {
	errs := validate.Struct(&orderInput{Description: "   "})
	assert.Contains(t, errs, "orderDescription")
}

func TestMaxLength(t *testing.T) {
	errs := validate.Struct(&orderInput{Description: strings.Repeat("x", 101)})
	assert.Contains(t, errs, "orderDescription")

	errs = validate.Struct(&orderInput{Description: strings.Repeat("x", 100)})
	assert.NotContains(t, errs, "orderDescription")
}

func TestNullableSkipsEmptyField(t *testing.T) {
	errs := validate.Struct(&orderInput{Description: "ok"})
	assert.False(t, validate.HasErrors(errs))
}

func TestNullableStillValidatesWhenSet(t *testing.T) {
	errs := validate.Struct(&orderInput{Description: "ok", Note: "way too long note"})
	assert.Contains(t, errs, "note")
}

func TestMinOnNumbers(t *testing.T) {
	errs := validate.Struct(&orderInput{Description: "ok", Quantity: -1})
	assert.Contains(t, errs, "quantity")

	errs = validate.Struct(&orderInput{Description: "ok", Quantity: 3})
	assert.NotContains(t, errs, "quantity")
}

func TestPointerFields(t *testing.T) {
	type input struct {
		Description *string `json:"orderDescription" validate:"nullable,max=5"`
	}

	errs := validate.Struct(&input{})
	assert.False(t, validate.HasErrors(errs))

	long := "too long for five"
	errs = validate.Struct(&input{Description: &long})
	assert.Contains(t, errs, "orderDescription")
}

func TestFirstFailingRuleWins(t *testing.T) {
	errs := validate.Struct(&orderInput{})
	assert.Equal(t, "The orderDescription field is required.", errs["orderDescription"])
}
