package users

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Удалить пользователя",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := appClient(cmd)
		if err != nil {
			return err
		}

		msg, err := c.DeleteUser(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("ошибка удаления пользователя: %w", err)
		}

		if jsonOutput(cmd) {
			return printJSON(cmd.OutOrStdout(), map[string]string{"message": msg})
		}
		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ "+msg))
		return nil
	},
}
