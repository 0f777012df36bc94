package users

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var UpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Обновить пользователя",
	Long:  `Перезаписывает имя и почту. Неуказанное поле станет null.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := appClient(cmd)
		if err != nil {
			return err
		}

		u, err := c.UpdateUser(cmd.Context(), args[0], requestFromFlags(cmd))
		if err != nil {
			return fmt.Errorf("ошибка обновления пользователя: %w", err)
		}

		if jsonOutput(cmd) {
			return printJSON(cmd.OutOrStdout(), u)
		}
		if u != nil {
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ Пользователь обновлен"))
		}
		printUser(cmd.OutOrStdout(), u)
		return nil
	},
}

func init() {
	addFieldFlags(UpdateCmd)
}
