package users

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать пользователя",
	Long: `Создает пользователя. Поля, не указанные флагами, сохраняются как null.

Пример:
  usersctl users create --name Ana --email ana@x.com`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := appClient(cmd)
		if err != nil {
			return err
		}

		u, err := c.CreateUser(cmd.Context(), requestFromFlags(cmd))
		if err != nil {
			return fmt.Errorf("ошибка создания пользователя: %w", err)
		}

		if jsonOutput(cmd) {
			return printJSON(cmd.OutOrStdout(), u)
		}
		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ Пользователь создан"))
		printUser(cmd.OutOrStdout(), &u)
		return nil
	},
}

func init() {
	addFieldFlags(CreateCmd)
}
