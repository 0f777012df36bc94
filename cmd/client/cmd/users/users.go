package users

import (
	"fmt"

	"usersapi/internal/app/client"
	"usersapi/internal/domain/user"

	"github.com/spf13/cobra"
)

// UsersCmd - родительская команда для всех операций с пользователями
var UsersCmd = &cobra.Command{
	Use:     "users",
	Aliases: []string{"user", "u"},
	Short:   "Управление пользователями",
	Long:    `Просмотр, создание, обновление и удаление пользователей.`,
}

func init() {
	UsersCmd.AddCommand(ListCmd, GetCmd, CreateCmd, UpdateCmd, DeleteCmd)
}

func appClient(cmd *cobra.Command) (*client.HTTPClient, error) {
	c, ok := client.FromContext(cmd.Context())
	if !ok {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return c, nil
}

func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

// requestFromFlags - неуказанный флаг не попадает в тело, сервер сохранит null
func requestFromFlags(cmd *cobra.Command) user.Request {
	var req user.Request
	if cmd.Flags().Changed("name") {
		name, _ := cmd.Flags().GetString("name")
		req.Name = &name
	}
	if cmd.Flags().Changed("email") {
		email, _ := cmd.Flags().GetString("email")
		req.Email = &email
	}
	return req
}

func addFieldFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("name", "n", "", "имя пользователя")
	cmd.Flags().StringP("email", "e", "", "почта пользователя")
}
