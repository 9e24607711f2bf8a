package dto

// Response envolvente uniforme de la API:
// {success, data?, message?, errors?}.
type Response struct {
	Success bool         `json:"success"`
	Data    interface{}  `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError error de validación por campo.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ListResponse envolvente para listados paginados de ítems.
type ListResponse struct {
	Success    bool        `json:"success"`
	Count      int         `json:"count"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	TotalPages int         `json:"totalPages"`
	Data       interface{} `json:"data"`
}

// OK construye una respuesta exitosa con datos.
func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// Fail construye una respuesta de error con mensaje y errores de campo opcionales.
func Fail(message string, errs ...FieldError) Response {
	return Response{Success: false, Message: message, Errors: errs}
}
