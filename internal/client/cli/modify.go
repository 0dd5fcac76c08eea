package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/soteriapass/pswmgr/internal/common"
)

// Modify replaces the stored password of an existing vault entry.
func (a *App) Modify(ctx context.Context) error {
	accountName, err := getSimpleText(a.reader, "Enter account name to modify", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.client.ModifyPassword(ctx, accountName, string(password)); err != nil {
		return err
	}

	fmt.Println("Success!")
	return nil
}
