// Утилита командной строки для генерации случайных значений из диапазонов.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/maynagashev/go-rangerand/internal/commands"
)

func main() {
	if err := commands.New(os.Stdout).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
