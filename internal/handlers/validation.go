package handlers

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/justsurfingit/job-portal-search/internal/models"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags used by the request DTOs.
// Safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
			return
		}
		err = v.RegisterValidation("filter", validFilter)
	})
	return err
}

// validFilter accepts "all" or any category id, case-insensitively.
func validFilter(fl validator.FieldLevel) bool {
	_, ok := models.ParseFilter(fl.Field().String())
	return ok
}
