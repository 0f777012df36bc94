package user

import (
	"encoding/json"

	"usersapi/internal/domain/user"
)

type listOutput struct {
	Body []user.User
}

type findInput struct {
	ID string `path:"id" example:"1" doc:"ID пользователя"`
}

type createInput struct {
	Body *user.Request `required:"false"`
}

type createOutput struct {
	Body user.User
}

type updateInput struct {
	ID   string        `path:"id" example:"1" doc:"ID пользователя"`
	Body *user.Request `required:"false"`
}

// optionalOutput - пользователь или null, если строка не найдена
type optionalOutput struct {
	Body optionalUser
}

type deleteOutput struct {
	Body deleteResponse
}

type deleteResponse struct {
	Message string `json:"message" example:"Usuario eliminado"`
}

type optionalUser struct {
	*user.User
}

func (o optionalUser) MarshalJSON() ([]byte, error) {
	if o.User == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.User)
}

func requestOrEmpty(r *user.Request) user.Request {
	if r == nil {
		return user.Request{}
	}
	return *r
}
