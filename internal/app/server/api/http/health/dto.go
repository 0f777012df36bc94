package health

type Input struct{}

type Output struct {
	Body Response
}

// Response - состояние сервиса и результат ping к Postgres.
// При недоступной БД ответ 503 в формате {"error": "..."}
type Response struct {
	Status   string `json:"status" example:"OK" doc:"Состояние сервиса"`
	Database string `json:"database" example:"up" doc:"Результат ping пула соединений"`
}

const (
	statusOK   = "OK"
	databaseUp = "up"
)
