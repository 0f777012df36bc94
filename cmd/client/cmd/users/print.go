package users

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"usersapi/internal/domain/user"

	"github.com/fatih/color"
)

const nullText = "—"

func printJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func printTable(w io.Writer, users []user.User) error {
	if len(users) == 0 {
		fmt.Fprintln(w, color.YellowString("Пользователи не найдены"))
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tИмя\tПочта\t\n")
	fmt.Fprintf(tw, "---\t---\t---\t\n")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t\n", u.ID, orNull(u.Name), orNull(u.Email))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nВсего пользователей: %d\n", len(users))
	return nil
}

func printUser(w io.Writer, u *user.User) {
	if u == nil {
		fmt.Fprintln(w, color.YellowString("Пользователь не найден"))
		return
	}

	fmt.Fprintf(w, "%s %d\n", color.CyanString("ID:   "), u.ID)
	fmt.Fprintf(w, "%s %s\n", color.CyanString("Имя:  "), orNull(u.Name))
	fmt.Fprintf(w, "%s %s\n", color.CyanString("Почта:"), orNull(u.Email))
}

func orNull(s *string) string {
	if s == nil {
		return nullText
	}
	return *s
}
