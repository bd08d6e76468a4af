package validation

import "github.com/KeisukeTTTT/estate-management/internal/models"

type PropertyInput struct {
	Name    string              `form:"name" validate:"required"`
	Address string              `form:"address" validate:"required"`
	Type    models.PropertyType `form:"type" validate:"enum"`
}

var propertyMessages = messages{
	"name":    "Property name is required.",
	"address": "Address is required.",
	"type":    "Select a property type.",
}

func ValidateProperty(raw Raw) (PropertyInput, FieldErrors) {
	p := newParser(raw, propertyMessages)
	in := PropertyInput{
		Name:    p.text("name"),
		Address: p.text("address"),
		Type:    models.PropertyType(p.text("type")),
	}
	p.check(in)
	return in, p.errs
}
