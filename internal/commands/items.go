package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/maynagashev/go-rangerand/pkg/random"
)

func choiceAction(w io.Writer) cli.ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		item, err := random.Choice(cmd.Args().Slice())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, item)
		return err
	}
}

func shuffleAction(w io.Writer) cli.ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		for _, item := range random.Shuffle(cmd.Args().Slice()) {
			if _, err := fmt.Fprintln(w, item); err != nil {
				return err
			}
		}
		return nil
	}
}
