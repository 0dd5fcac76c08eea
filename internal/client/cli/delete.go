package cli

import (
	"context"
	"fmt"
	"os"
)

// Delete removes the vault entry with the given account name.
func (a *App) Delete(ctx context.Context) error {
	accountName, err := getSimpleText(a.reader, "Enter account name to delete", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.client.DeletePassword(ctx, accountName); err != nil {
		return err
	}

	fmt.Println("Success!")
	return nil
}
