package auth

type RegisterRequest struct {
	Name     string `json:"name"`     // Отображаемое имя
	Login    string `json:"login"`    // Логин (уникальный)
	Password string `json:"password"` // Пароль в открытом виде, хэшируется на сервере
}

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
