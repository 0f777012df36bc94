package users

import (
	"fmt"

	"github.com/spf13/cobra"
)

var GetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Показать пользователя",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := appClient(cmd)
		if err != nil {
			return err
		}

		u, err := c.GetUser(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("ошибка получения пользователя: %w", err)
		}

		if jsonOutput(cmd) {
			return printJSON(cmd.OutOrStdout(), u)
		}
		printUser(cmd.OutOrStdout(), u)
		return nil
	},
}
