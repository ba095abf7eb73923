package validator

import (
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *gpvalidator.Validate
)

// Get returns the shared struct validator.
func Get() *gpvalidator.Validate {
	once.Do(func() {
		validate = gpvalidator.New()
	})

	return validate
}
