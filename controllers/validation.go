// Package controllers file: controllers/validation.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"ycfl-league/logger"
)

// RegisterValidation makes gin's validator report fields by their json
// or form names instead of Go field names.
func RegisterValidation() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		logger.Warn.Println("RegisterValidation: gin validator engine is not go-playground/validator")
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
}

// ParseError turns binding errors into a field -> message map.
func ParseError(err error) map[string]string {
	fields := make(map[string]string)
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = fmt.Sprintf("failed on the '%s' rule", fe.Tag())
		}
	} else if err != nil {
		fields["body"] = err.Error()
	}
	return fields
}

func respondValidation(c *gin.Context, handler string, err error) {
	logger.Warn.Printf("%s: invalid request: %v", handler, err)
	c.JSON(http.StatusBadRequest, gin.H{"error": "validation_failed", "fields": ParseError(err)})
}
