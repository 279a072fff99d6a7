package dto

import "encoding/json"

// SuccessResponse envelope uniforme de éxito: { success: true, data, message? }.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Message string      `json:"message,omitempty"`
}

// ErrorResponse envelope uniforme de error: { success: false, message, errors? }.
// Errors trae el detalle por campo cuando la falla es de validación.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// OK construye el envelope de éxito.
func OK(data interface{}, message string) SuccessResponse {
	return SuccessResponse{Success: true, Data: data, Message: message}
}

// Fail construye el envelope de error sin detalle por campo.
func Fail(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}

// FailFields construye el envelope de error de validación con detalle por campo.
func FailFields(message string, errors map[string]string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message, Errors: errors}
}

// StringList acepta en JSON tanto un string suelto como un arreglo de strings.
// El dashboard envía los workers de un evento de ambas formas; un valor singular
// se normaliza a conjunto de un elemento.
type StringList []string

// UnmarshalJSON implementa la coerción string | []string.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*l = StringList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = StringList(many)
	return nil
}
