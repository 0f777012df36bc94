package user

// User - запись таблицы users. Имя и почта могут отсутствовать (NULL)
type User struct {
	ID    int     `json:"id" example:"1" doc:"ID пользователя"`
	Name  *string `json:"name" example:"Ana" doc:"Имя пользователя, может быть null"`
	Email *string `json:"email" example:"ana@x.com" doc:"Почта пользователя, может быть null"`
}
