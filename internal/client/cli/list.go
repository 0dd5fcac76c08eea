package cli

import (
	"context"
	"fmt"
)

func (a *App) List(ctx context.Context) error {
	creds, err := a.client.ListPasswords(ctx)
	if err != nil {
		return err
	}

	if len(creds) == 0 {
		fmt.Println("No entries")
		return nil
	}

	for _, c := range creds {
		fmt.Printf("%s\t%s\t%s", c.AccountName, c.Username, c.Password)
		if c.Extra != "" {
			fmt.Printf("\t%s", c.Extra)
		}
		fmt.Println()
	}
	return nil
}
