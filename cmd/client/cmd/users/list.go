package users

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список пользователей",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := appClient(cmd)
		if err != nil {
			return err
		}

		users, err := c.ListUsers(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка получения списка пользователей: %w", err)
		}

		if jsonOutput(cmd) {
			return printJSON(cmd.OutOrStdout(), users)
		}
		return printTable(cmd.OutOrStdout(), users)
	},
}
