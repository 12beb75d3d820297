package api

import (
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/guttosm/tradelens/internal/domain/dto"
)

var registerOnce sync.Once

// registerValidators adds the custom binding tags used by the request DTOs:
//
//	formdate: a date accepted by dto.ParseDate; empty passes.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("formdate", validFormDate)
	})
}

func validFormDate(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	if s == "" {
		return true
	}
	_, err := dto.ParseDate(s, time.UTC)
	return err == nil
}
