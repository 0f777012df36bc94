package user

// Request - тело POST/PUT. Отсутствующее поле записывается в БД как NULL
type Request struct {
	Name  *string `json:"name,omitempty" doc:"Имя пользователя"`
	Email *string `json:"email,omitempty" doc:"Почта пользователя"`
}
