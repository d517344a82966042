package dto

// ErrorResponse cuerpo de error HTTP. Message es siempre un mensaje de
// taxonomía, nunca el error crudo de infraestructura.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo de confirmación simple (deletes).
type MessageResponse struct {
	Message string `json:"message"`
}
