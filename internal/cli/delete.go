package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/acrispim/vidaplan/internal/storage"
)

type DeleteCmd struct {
	Date  string `arg:"" help:"Date to remove (YYYY-MM-DD)."`
	Force bool   `help:"Skip confirmation."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}

	if !c.Force {
		fmt.Printf("Remove the schedule for %s, including its tracking state? [y/N]: ", date)
		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := ctx.Store.DeleteSchedule(date); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no schedule for %s", date)
		}
		return err
	}

	fmt.Printf("Removed schedule for %s\n", date)
	return nil
}
