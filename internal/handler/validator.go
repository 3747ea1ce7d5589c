package handler

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	pt_BR_translations "github.com/go-playground/validator/v10/translations/pt_BR"
)

// Trans translator used by HandleParamError
var Trans ut.Translator

// InitTrans sets up validator messages for locale ("pt_BR" or "en").
// Field names in messages are the json names.
func InitTrans(locale string) (err error) {
	// gin v1.9+ may leave binding.Validator nil
	if binding.Validator == nil {
		binding.Validator = &defaultValidator{validator: validator.New()}
	}

	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			// query structs only carry a form tag
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	ptT := pt_BR.New()
	enT := en.New()
	// en is the fallback
	uni := ut.New(enT, ptT, enT)

	Trans, ok = uni.GetTranslator(locale)
	if !ok {
		return fmt.Errorf("uni.GetTranslator(%s) failed", locale)
	}

	switch locale {
	case "pt_BR":
		err = pt_BR_translations.RegisterDefaultTranslations(v, Trans)
	default:
		err = en_translations.RegisterDefaultTranslations(v, Trans)
	}
	return
}

// RemoveTopStruct drops the struct name prefix, "CadastroRequest.nome" -> "nome"
func RemoveTopStruct(fields map[string]string) map[string]string {
	res := make(map[string]string, len(fields))
	for field, err := range fields {
		res[field[strings.Index(field, ".")+1:]] = err
	}
	return res
}

// defaultValidator binding.StructValidator over validator.Validate
type defaultValidator struct {
	validator *validator.Validate
}

func (v *defaultValidator) ValidateStruct(obj any) error {
	return v.validator.Struct(obj)
}

func (v *defaultValidator) Engine() any {
	return v.validator
}
