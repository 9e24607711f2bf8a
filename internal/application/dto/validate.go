package dto

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate instancia única del validador. Los nombres de campo reportados
// salen de la etiqueta json para que coincidan con el cuerpo de la petición.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("emoji", validarEmoji)
	return v
}

// Validate aplica las reglas declaradas en las etiquetas validate del DTO y
// devuelve los errores por campo (nil si todo es válido).
func Validate(in interface{}) []FieldError {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: "cuerpo inválido"}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: mensaje(fe)})
	}
	return out
}

func mensaje(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es requerido", fe.Field())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s debe tener al menos %s caracteres", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s debe ser mayor o igual a %s", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s debe tener como máximo %s caracteres", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s debe ser menor o igual a %s", fe.Field(), fe.Param())
	case "uuid":
		return fmt.Sprintf("%s debe ser un UUID válido", fe.Field())
	case "emoji":
		return fmt.Sprintf("%s debe ser un único glifo emoji", fe.Field())
	default:
		return fmt.Sprintf("%s no es válido", fe.Field())
	}
}

// validarEmoji acepta exactamente un glifo emoji, incluyendo secuencias con
// selector de variante, tonos de piel y combinaciones ZWJ.
func validarEmoji(fl validator.FieldLevel) bool {
	return EsEmoji(fl.Field().String())
}

// EsEmoji informa si s es un único glifo emoji.
func EsEmoji(s string) bool {
	if s == "" {
		return false
	}
	base := 0
	regional := 0
	zwj := false
	keycap := false
	digitBase := false
	for _, r := range s {
		switch {
		case r == 0xFE0F: // selector de variante (presentación emoji)
			continue
		case r == 0x200D: // zero-width joiner: une la secuencia en un glifo
			zwj = true
			continue
		case r >= 0x1F3FB && r <= 0x1F3FF: // modificadores de tono de piel
			continue
		case r == 0x20E3: // combinador de tecla (keycap)
			keycap = true
			continue
		}
		if !rangoEmoji(r) {
			return false
		}
		if r >= '0' && r <= '9' || r == '#' || r == '*' {
			digitBase = true
		}
		if r >= 0x1F1E6 && r <= 0x1F1FF {
			regional++
		}
		base++
	}
	if base == 0 {
		return false
	}
	// Un dígito, # o * solo cuenta como emoji dentro de una secuencia keycap.
	if digitBase && !keycap {
		return false
	}
	// Una bandera son exactamente dos indicadores regionales.
	if regional > 0 {
		return regional == 2 && base == 2
	}
	// Sin ZWJ solo se admite un punto de código base; con ZWJ la secuencia
	// completa renderiza como un único glifo.
	return base == 1 || zwj
}

func rangoEmoji(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1FAFF: // símbolos y pictogramas
		return true
	case r >= 0x1F1E6 && r <= 0x1F1FF: // indicadores regionales (banderas)
		return true
	case r >= 0x2600 && r <= 0x27BF: // símbolos misceláneos y dingbats
		return true
	case r >= 0x2B00 && r <= 0x2BFF: // flechas y estrellas
		return true
	case r >= 0x2190 && r <= 0x21FF: // flechas
		return true
	case r == 0x00A9 || r == 0x00AE || r == 0x2122: // ©, ®, ™
		return true
	case r >= '0' && r <= '9' || r == '#' || r == '*': // bases de keycap
		return true
	}
	return false
}
