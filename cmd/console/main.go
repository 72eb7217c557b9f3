package main

import (
	"context"
	"fmt"
	"os"

	"github.com/NazifToure01/AlloColis-admin/internal/cli"
)

func main() {
	c := cli.New()
	if err := c.Command().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
