// SPDX-License-Identifier: MIT
package handlers

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/thatcatcamp/huekit/internal/contrast"
	"github.com/thatcatcamp/huekit/internal/harmony"
	"github.com/thatcatcamp/huekit/internal/oklch"
	"github.com/thatcatcamp/huekit/internal/tokens"
)

var registerOnce sync.Once

// RegisterValidators adds the color and theme-name tags to gin's validator
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterValidation("csscolor", func(fl validator.FieldLevel) bool {
			_, err := oklch.Parse(fl.Field().String())
			return err == nil
		})
		v.RegisterValidation("harmony", func(fl validator.FieldLevel) bool {
			_, err := harmony.Parse(fl.Field().String())
			return err == nil
		})
		v.RegisterValidation("bgstrategy", func(fl validator.FieldLevel) bool {
			_, err := tokens.ParseBackgroundStrategy(fl.Field().String())
			return err == nil
		})
		v.RegisterValidation("gamut", func(fl validator.FieldLevel) bool {
			_, err := oklch.ParseGamut(fl.Field().String())
			return err == nil
		})
		v.RegisterValidation("contrastmodel", func(fl validator.FieldLevel) bool {
			_, err := contrast.ParseModel(fl.Field().String())
			return err == nil
		})
	})
}
