//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of d1ca requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/d1ca` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a terminal rendition use `go run ./cmd/d1ca-term`.")
	os.Exit(2)
}
