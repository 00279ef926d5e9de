package requestresponse

// RegisterRequest : тело запроса регистрации сотрудника
type RegisterRequest struct {
	Token    string `json:"token" example:"fixed_admin_token"`
	Email    string `json:"email" example:"staff@example.com"`
	Password string `json:"password" example:"P@ssw0rd!"`
}

// RegisterResponse : успешный ответ
type RegisterResponse struct {
	Response RegisterData `json:"response"`
}

type RegisterData struct {
	Email string `json:"email"`
}

// ErrorDetail : детальная информация об ошибке
type ErrorDetail struct {
	Code int    `json:"code" example:"400"`
	Text string `json:"text" example:"for example: invalid email or password"`
}

// ErrorResponse : стандартная структура ошибки
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
