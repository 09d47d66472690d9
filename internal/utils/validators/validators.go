package validators

import (
	"github.com/go-playground/validator/v10"

	"trufapro/internal/domain/entity"
)

// Channel accepts only the two sales channels.
func Channel(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return val == entity.ChannelRua || val == entity.ChannelPDV
}
